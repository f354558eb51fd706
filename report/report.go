// Package report prints the outcome of a run and reports errors to the user
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/srmtimer/srm/internal/config"
	"github.com/srmtimer/srm/internal/models"
	"github.com/srmtimer/srm/internal/osutil"
	"github.com/srmtimer/srm/internal/timeutil"
	"github.com/srmtimer/srm/internal/ui"
	"github.com/srmtimer/srm/stats"
)

const noRecordsMsg = "No practice sessions were logged"

// Records writes the logged records to w in the given output format.
func Records(w io.Writer, records []models.Record, format string) error {
	if format == config.OutputJSON {
		return writeJSON(w, records)
	}

	if len(records) == 0 {
		pterm.Info.WithWriter(w).Println(noRecordsMsg)
		return nil
	}

	printRecordsTable(w, records)
	printSummary(w, stats.Summarize(records))

	return nil
}

func writeJSON(w io.Writer, records []models.Record) error {
	if records == nil {
		records = []models.Record{}
	}

	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// printRecordsTable prints a record table to the command-line.
func printRecordsTable(w io.Writer, records []models.Record) {
	tableBody := make([][]string, len(records))

	for i := range records {
		r := records[i]

		tableBody[i] = []string{
			strconv.Itoa(i + 1),
			r.Name,
			models.DivisionLabel(r.Division),
			r.Language,
			timeutil.FormatDuration(r.Time),
		}
	}

	tableBody = append([][]string{
		{"#", "PROBLEM", "DIVISION", "LANGUAGE", "TIME"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

func printSummary(w io.Writer, s stats.Summary) {
	fmt.Fprintf(
		w,
		"%s practiced over %s sessions (average %s)\n",
		ui.Green(s.Total()),
		ui.Highlight(s.Count),
		s.Average(),
	)

	for _, lt := range s.Languages {
		fmt.Fprintf(
			w,
			"  %s: %s\n",
			ui.Magenta(lt.Language),
			timeutil.FormatDuration(lt.Seconds),
		)
	}

	for _, d := range slices.Sorted(maps.Keys(s.Divisions)) {
		fmt.Fprintf(
			w,
			"  %s: %d sessions\n",
			ui.Magenta(models.DivisionLabel(d)),
			s.Divisions[d],
		)
	}

	if len(s.Problems) > 0 {
		fmt.Fprintf(w, "Problems: %s\n", strings.Join(s.Problems, ", "))
	}
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
