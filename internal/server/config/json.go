package config

import (
	"encoding/json"
	"os"

	"github.com/azarovs/forumd/internal/flagx"
)

// JsonConfig mirrors Config for JSON unmarshalling. It is an intermediate
// DTO used only for reading configuration files; after unmarshalling, the
// non-empty fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr string `json:"endpoint_addr"`
	UsersFile    string `json:"users_file"`
	PostsFile    string `json:"posts_file"`
	FrontendDir  string `json:"frontend_dir"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics: the server must not start
// with a half-applied configuration.
//
// Only fields present and non-empty in the file override the current
// values, so the JSON overlay can be partial.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.UsersFile != "" {
		config.UsersFile = c.UsersFile
	}
	if c.PostsFile != "" {
		config.PostsFile = c.PostsFile
	}
	if c.FrontendDir != "" {
		config.FrontendDir = c.FrontendDir
	}
}
