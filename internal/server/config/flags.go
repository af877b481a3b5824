package config

import (
	"flag"
	"os"

	"github.com/azarovs/forumd/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., "127.0.0.1:8080")
//	-u string   users file path
//	-p string   posts file path
//	-f string   frontend directory
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-p", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.UsersFile, "u", config.UsersFile, "users file path")
	fs.StringVar(&config.PostsFile, "p", config.PostsFile, "posts file path")
	fs.StringVar(&config.FrontendDir, "f", config.FrontendDir, "frontend directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
