package main

import (
	"fmt"
	"memareh/config"
	"memareh/pkg/database"
	"memareh/pkg/log"
	"memareh/pkg/server"
	"memareh/service"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Maintenance 运维命令依赖
type Maintenance struct {
	Comments service.ICommentsService
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "article comments service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   fmt.Sprintf("configs/config.%s.yaml", env),
				Usage:   "path to the yaml config",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					cfg := config.New(ctx.String("config"))
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update tables",
				Action: func(ctx *cli.Context) error {
					cfg := config.New(ctx.String("config"))
					if err := database.Migrate(database.NewDB(cfg)); err != nil {
						return fmt.Errorf("migrate: %w", err)
					}
					log.L.Info("migrate done")
					return nil
				},
			},
			{
				Name:  "recount-likes",
				Usage: "recompute like_count of every comment from the like table",
				Action: func(ctx *cli.Context) error {
					cfg := config.New(ctx.String("config"))
					m := InitMaintenance(cfg)
					_, err := m.Comments.RecountAllLikes(ctx.Context)
					return err
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("api-server failed", zap.Error(err))
	}
}
