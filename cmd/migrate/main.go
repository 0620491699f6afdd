// Migration runner: applies or rolls back SQL migrations without starting
// the API server.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"artha/internal/database"
	"artha/internal/logger"
)

func main() {
	down := flag.Bool("down", false, "roll back one migration instead of applying all")
	flag.Parse()

	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()
	log := logger.Get()

	cfg, err := database.NewConfig()
	if err != nil {
		log.Fatalw("failed to load database configuration", "error", err)
	}

	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode)
	mig, err := migrate.New("file://migrations", url)
	if err != nil {
		log.Fatalw("failed to create migrate instance", "error", err)
	}
	defer mig.Close()

	if *down {
		err = mig.Steps(-1)
	} else {
		err = mig.Up()
	}
	if err != nil && err != migrate.ErrNoChange {
		log.Fatalw("migration failed", "error", err)
	}
	log.Info("migrations complete")
}
