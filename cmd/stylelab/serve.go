// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/stylelab/internal/config"
	"github.com/thatcatcamp/stylelab/internal/db"
	"github.com/thatcatcamp/stylelab/internal/handlers"
	"github.com/thatcatcamp/stylelab/internal/logging"
	"github.com/thatcatcamp/stylelab/internal/middleware"
	"github.com/thatcatcamp/stylelab/internal/prefs"
	"github.com/thatcatcamp/stylelab/internal/session"
	"github.com/thatcatcamp/stylelab/internal/sink"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the preview server",
	Long:  "Serve the token preview page and the JSON API for one local session",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail("%v", err)
		}
		log := newLogger()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store := openPrefs(log)
		sheet := sink.NewStylesheet()
		initial := config.DefaultSelection()
		sess, err := session.New(session.Options{
			Sink:    sheet,
			Prefs:   store,
			Logger:  log,
			Initial: &initial,
		})
		if err != nil {
			fail("invalid default selection: %v", err)
		}

		r := gin.New()
		r.Use(gin.Recovery())
		r.Use(middleware.IPFilterMiddleware(
			config.GetStringSlice("server.blocked_ips"),
			config.GetStringSlice("server.allowed_ips"),
		))
		r.Use(middleware.SecurityHeadersMiddleware())
		r.Use(middleware.RateLimitMiddleware(
			middleware.NewRateLimiter(ctx, config.GetInt("server.rate_limit"), time.Minute),
		))

		handlers.New(handlers.Deps{
			Session:    sess,
			Stylesheet: sheet,
			Logger:     log,
			PublicURL:  config.GetString("server.public_url"),
			ExportTTL:  config.GetDuration("export.cache_ttl"),
		}).Register(r)

		addr := net.JoinHostPort(config.GetString("server.bind"), config.GetString("server.http_port"))
		server := &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Create listener first to catch binding errors immediately
		listener, err := net.Listen("tcp", addr)
		if err != nil {
			fail("failed to bind HTTP server to %s: %v", addr, err)
		}
		fmt.Printf("Preview at http://%s/\n", addr)

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Serve(listener)
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				fail("server error: %v", err)
			}
		case <-ctx.Done():
			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Error(err, "graceful shutdown failed")
			}
		}
	},
}

// openPrefs opens the preference database. Without one the dark-mode
// preference lasts only for this run.
func openPrefs(log *logging.Logger) prefs.Store {
	dbType := config.GetString("database.type")
	dbPath := config.GetString("database.path")
	if err := db.InitDB(dbType, dbPath); err != nil {
		log.WithFields(map[string]any{"type": dbType, "path": dbPath}).
			Warn(err, "preferences will not persist")
		return prefs.NewMemoryStore()
	}
	return prefs.NewGormStore(db.GetDB())
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
