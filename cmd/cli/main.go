package main

import (
	"context"
	"log"
	"os"

	"github.com/clinicops/timekeeper/internal/buildinfo"
	"github.com/clinicops/timekeeper/internal/cli"
	"github.com/clinicops/timekeeper/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
