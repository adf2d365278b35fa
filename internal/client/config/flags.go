package config

import (
	"flag"
	"os"
	"time"

	"github.com/imarchenko/stockroom/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   base URL of the inventory backend (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-d string   path of the local state database (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.PanicOnError)

	fs.StringVar(&cfg.BackendBaseURL, "b", cfg.BackendBaseURL, "base URL of the inventory backend")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local state database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
