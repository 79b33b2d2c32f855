package main

import (
	"flag"
	"os"

	"github.com/kudosboard/kudos-board/internal/config"
	"github.com/kudosboard/kudos-board/internal/database"
	"github.com/kudosboard/kudos-board/internal/migration"
	pkglogger "github.com/kudosboard/kudos-board/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "config file path (default: configs/config.$APP_ENV.yaml)")
	seed := flag.Bool("seed", false, "replace all data with the sample boards after migrating")
	verbose := flag.Bool("verbose", false, "verbose SQL logging")
	flag.Parse()

	config.LoadDotEnv()
	env := os.Getenv("APP_ENV")
	pkglogger.InitStructured(env, "kudos-migrate")
	log := pkglogger.GetLogger()

	path := *configPath
	if path == "" {
		path = config.PathForEnv(env)
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to load config")
	}
	if *verbose {
		cfg.Database.LogSQL = true
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() { _ = database.Close(db) }()

	if err := migration.Run(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("schema migrated")

	if !*seed {
		return
	}
	res, err := migration.Seed(db)
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Int("boards", res.Boards).Int("cards", res.Cards).Msg("seeding completed")
}
