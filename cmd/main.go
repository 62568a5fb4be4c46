package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ColdMacaroni/KaiUI-DTC/config"
	"github.com/ColdMacaroni/KaiUI-DTC/database"
	"github.com/ColdMacaroni/KaiUI-DTC/database/dbhelper"
	"github.com/ColdMacaroni/KaiUI-DTC/handlers"
	"github.com/ColdMacaroni/KaiUI-DTC/menu"
	"github.com/ColdMacaroni/KaiUI-DTC/models"
	"github.com/ColdMacaroni/KaiUI-DTC/server"
)

const shutdownTimeOut = 10 * time.Second

func main() {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	config.Init()

	byCategory, err := loadMenu()
	if err != nil {
		logrus.Panicf("failed to load menu, error: %v", err)
	}
	catalog, err := models.BuildCatalog(byCategory)
	if err != nil {
		logrus.Panicf("failed to build catalog, error: %v", err)
	}

	day, err := models.ParseWeekday(config.DefaultDay)
	if err != nil {
		logrus.Panicf("invalid DEFAULT_DAY, error: %v", err)
	}
	handlers.Init(catalog, day)

	svr := server.SetupRoutes()
	go func() {
		if err := svr.Run(config.Port); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Panic("server stopped unexpectedly")
		}
	}()
	logrus.Infof("ordering service listening on %s (default day %s)", config.Port, day)

	<-done

	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeOut); err != nil {
		logrus.WithError(err).Error("failed to shut down server cleanly")
	}
	if config.MenuSource == config.MenuSourcePostgres {
		if err := database.ShutdownDatabase(); err != nil {
			logrus.WithError(err).Error("failed to close database connection")
		}
	}
}

// loadMenu picks the configured menu source: the built-in menu, or the
// seeded Postgres tables for deployments that edit the menu in the database.
func loadMenu() (map[models.Category][]*models.Product, error) {
	if config.MenuSource == config.MenuSourcePostgres {
		if err := database.ConnectAndMigrate(
			config.DBHost, config.DBPort, config.DBName,
			config.DBUser, config.DBPassword, config.DBSSLMode); err != nil {
			return nil, err
		}
		logrus.Println("migration is successful")
		return dbhelper.LoadMenu()
	}
	return menu.Default()
}
