package main

import (
	"os"

	"github.com/srmtimer/srm/app"
	"github.com/srmtimer/srm/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	if err := run(os.Args); err != nil {
		report.Quit(err)
	}
}
