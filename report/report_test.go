package report

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/srmtimer/srm/internal/config"
	"github.com/srmtimer/srm/internal/models"
	"github.com/srmtimer/srm/internal/testutil"
)

type TestCase struct {
	Name       string
	GoldenFile string
	Records    []models.Record
	Snapshot   []byte
}

func (t TestCase) Output() (out []byte, name string) {
	return t.Snapshot, t.GoldenFile
}

func TestMain(m *testing.M) {
	pterm.DisableColor()

	os.Exit(m.Run())
}

var loggedAt = time.Date(2014, time.August, 21, 10, 0, 0, 0, time.UTC)

func sampleRecords() []models.Record {
	return []models.Record{
		{
			Name:     "BinaryCode",
			Division: 1,
			Language: "Swift",
			Time:     65,
			LoggedAt: loggedAt,
		},
		{
			Name:     "",
			Division: 2,
			Language: "C++",
			Time:     3661,
			LoggedAt: loggedAt.Add(2 * time.Hour),
		},
	}
}

func TestRecordsJSON(t *testing.T) {
	cases := []TestCase{
		{
			Name:       "two records",
			GoldenFile: "records_json",
			Records:    sampleRecords(),
		},
		{
			Name:       "no records",
			GoldenFile: "records_json_empty",
			Records:    nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			var buf bytes.Buffer

			err := Records(&buf, tc.Records, config.OutputJSON)
			if err != nil {
				t.Fatal(err)
			}

			tc.Snapshot = buf.Bytes()

			testutil.CompareGoldenFile(t, tc)
		})
	}
}

func TestRecordsTable(t *testing.T) {
	var buf bytes.Buffer

	err := Records(&buf, sampleRecords(), config.OutputTable)
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()

	assert.Contains(t, out, "PROBLEM")
	assert.Contains(t, out, "BinaryCode")
	assert.Contains(t, out, "Division II")
	assert.Contains(t, out, "00h 01m 05s")
	assert.Contains(t, out, "01h 01m 01s")
	assert.Contains(t, out, "01h 02m 06s practiced over 2 sessions")
	assert.Contains(t, out, "C++: 01h 01m 01s")
}

func TestRecordsTableEmpty(t *testing.T) {
	var buf bytes.Buffer

	err := Records(&buf, nil, config.OutputTable)
	if err != nil {
		t.Fatal(err)
	}

	assert.Contains(t, buf.String(), noRecordsMsg)
}

func TestRecordsTableSummary(t *testing.T) {
	testCases := []struct {
		name    string
		records []models.Record
		want    []string
		absent  []string
	}{
		{
			name:    "division counts",
			records: sampleRecords(),
			want: []string{
				"Division I: 1 sessions",
				"Division II: 1 sessions",
				"Problems: BinaryCode\n",
			},
		},
		{
			name: "problem names in natural order",
			records: []models.Record{
				{Name: "Level10", Division: 2, Language: "Java", Time: 30},
				{Name: "Level2", Division: 2, Language: "Java", Time: 20},
				{Name: "BinaryCode", Division: 2, Language: "Java", Time: 10},
				{Name: "Level2", Division: 2, Language: "Java", Time: 5},
			},
			want: []string{
				"Division II: 4 sessions",
				"Problems: BinaryCode, Level2, Level10\n",
			},
			absent: []string{"Division I:"},
		},
		{
			name: "unnamed problems only",
			records: []models.Record{
				{Division: 1, Language: "Swift", Time: 30},
			},
			want:   []string{"Division I: 1 sessions"},
			absent: []string{"Problems:"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer

			err := Records(&buf, tc.records, config.OutputTable)
			if err != nil {
				t.Fatal(err)
			}

			out := buf.String()

			for _, s := range tc.want {
				assert.Contains(t, out, s)
			}

			for _, s := range tc.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}
