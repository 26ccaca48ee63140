package config

import (
	"encoding/json"
	"os"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
	DatabasePath       string `json:"database_path"`
}

// jsonConfigPath resolves the config file path from -c/-config or the
// TALENTDESK_CONFIG environment variable. Empty means "no JSON overlay".
func jsonConfigPath(args []string) string {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-c", "-config", "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		}
	}
	return os.Getenv("TALENTDESK_CONFIG")
}

// parseJson overlays cfg with values loaded from a JSON file, when one is
// configured. Empty JSON fields leave the current value in place.
func parseJson(cfg *Config) {
	path := jsonConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
