package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/pawsome/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-k string   database driver: pgx or sqlite
//	-d string   database DSN
//	-b int      bcrypt cost
//	-s int      session lifetime, minutes
//	-r int      remember_token cookie lifetime, days
//	-o string   comma separated CORS origins
//	-l string   log level
//
// The function first filters os.Args to the flags it recognizes, so the
// -c/-config flag handled by parseJson does not collide with these.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-d", "-b", "-s", "-r", "-o", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "k", config.DatabaseDriver, "database driver (pgx, sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")

	sessionTTL := fs.Int("s", int(config.SessionTTL.Minutes()), "session lifetime (in minutes)")
	rememberTTL := fs.Int("r", int(config.RememberTokenTTL.Hours()/24), "remember_token lifetime (in days)")
	origins := fs.String("o", strings.Join(config.CORSAllowedOrigins, ","), "allowed CORS origins, comma separated")

	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
	config.RememberTokenTTL = time.Duration(*rememberTTL) * 24 * time.Hour
	config.CORSAllowedOrigins = splitList(*origins)
}
