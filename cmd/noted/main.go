package main

import (
	"Noted/config"
	"Noted/pkg/log"
	"Noted/pkg/server"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.L.Warn("load .env", zap.Error(err))
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.Setup(cfg.Log)

	cliApp := &cli.App{
		Name:  "noted",
		Usage: "note taking api server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "install",
				Usage: "create schema, admin user and default notes",
				Action: func(ctx *cli.Context) error {
					if err := InitInstaller(cfg).Run(ctx.Context); err != nil {
						return err
					}
					log.L.Info("installation completed")
					return nil
				},
			},
			{
				Name:  "session-debug",
				Usage: "start a standalone server that counts visits per session",
				Action: func(ctx *cli.Context) error {
					return server.RunProbe(ctx, InitProbe(cfg))
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("command failed", zap.Error(err))
	}
}
