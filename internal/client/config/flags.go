package config

import (
	"flag"
	"os"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string        base URL of the sync service
//	-db string       path of the local database file
//	-c/-config path  JSON config file (handled by parseJson)
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("talentdesk", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the sync service")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "path of the local database file")
	configFile := fs.String("config", "", "path to JSON config file")
	fs.StringVar(configFile, "c", *configFile, "path to JSON config file (shorthand)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		panic(err)
	}
}
