package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/youquote/internal/flagx"
)

// parseFlags populates Config from command-line flags. Only the flags
// listed in doc.go are looked at; everything else in os.Args is ignored.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.APIBaseURL, "a", config.APIBaseURL, "base URL of the remote store")
	fs.StringVar(&config.SessionDBPath, "d", config.SessionDBPath, "session database path")
	timeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&config.PostRegistration, "r", config.PostRegistration, "post-registration behavior: verify-email or alert")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t is whole seconds; leave a finer JSON value alone unless it was given.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
