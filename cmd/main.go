package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipebox/internal/handlers"
	"recipebox/internal/logger"
	"recipebox/internal/repository"
	repodb "recipebox/internal/repository/db"
	"recipebox/internal/server"
	"recipebox/internal/service"
	"recipebox/internal/session"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/spf13/viper"
)

const defaultSessionSecret = "dev-only-not-a-secret"

func main() {
	// load config.yml first so the log level is configurable
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(logLevel())

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(db)
	services := service.NewService(repos)
	apiHandler := handlers.NewHandler(services, session.NewCookieManager(), log)

	// session cookie store; the secret signs the cookie so tampered sessions
	// fail to decode
	store := cookie.NewStore([]byte(sessionSecret(log)))

	// start HTTP server
	srv := &server.Server{}
	router := apiHandler.InitRoutes(store, corsOrigins())
	runHTTPServer(srv, viper.GetString("port"), router, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

func logLevel() string {
	if lvl := viper.GetString("log.level"); lvl != "" {
		return lvl
	}
	return logger.InfoLevel
}

func sessionSecret(log *logger.Logger) string {
	secret := viper.GetString("session.secret")
	if secret == "" {
		log.Infow("session.secret not set in config; using insecure default")
		secret = defaultSessionSecret
	}
	return secret
}

func corsOrigins() []string {
	origins := viper.GetStringSlice("cors.origins")
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	return origins
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "app.db")
		dbPath = "app.db"
	}
	return repodb.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler http.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
