// Package config handles configuration for the forum server,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the forumd server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - UsersFile: path to the user-record file (username -> password hash).
//   - PostsFile: path to the post-collection file (JSON array).
//   - FrontendDir: directory holding the static frontend pages.
type Config struct {
	EndpointAddr string
	UsersFile    string
	PostsFile    string
	FrontendDir  string
}

// LoadDefaults populates Config with development defaults matching the
// layout the frontend expects.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = "127.0.0.1:8080"
	c.UsersFile = "users.json"
	c.PostsFile = "posts.json"
	c.FrontendDir = "../frontend"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
