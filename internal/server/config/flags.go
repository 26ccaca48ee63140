package config

import (
	"flag"
	"os"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string        bind address for the HTTP API
//	-d string        PostgreSQL DSN
//	-k string        JWT signing secret
//	-c/-config path  JSON config file (handled by parseJson)
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("talentdesk-server", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "bind address for the HTTP API")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "JWT signing secret")
	configFile := fs.String("config", "", "path to JSON config file")
	fs.StringVar(configFile, "c", *configFile, "path to JSON config file (shorthand)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		panic(err)
	}
}
