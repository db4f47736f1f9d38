package config

import (
	"flag"
	"os"

	"github.com/clinicops/timekeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the SQLite attendance database (default from Config)
//	-o string   default export file for the hours report (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with the -c/-config flags
// handled by the JSON stage.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the attendance database")
	fs.StringVar(&cfg.ExportPath, "o", cfg.ExportPath, "default export file for the hours report")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
