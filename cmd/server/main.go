package main

import (
	"context"
	"log"

	"github.com/azarovs/forumd/internal/server"
	"github.com/azarovs/forumd/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
