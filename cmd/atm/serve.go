package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/atm-teller/internal/interfaces/rest"
	"github.com/DanielPopoola/atm-teller/internal/interfaces/rest/middleware"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the teller over an HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := buildTeller(cmd)
		if err != nil {
			return err
		}
		logger := t.logger

		h := rest.NewHandlers(t.machine, t.registry, t.journal, logger)

		handler := http.Handler(h.Routes())
		handler = middleware.Recovery(logger)(handler)
		handler = middleware.Logging(logger)(handler)
		handler = middleware.Timeout(t.cfg.Server.ReadTimeout)(handler)

		server := &http.Server{
			Addr:         "0.0.0.0:" + t.cfg.Server.Port,
			Handler:      handler,
			ReadTimeout:  t.cfg.Server.ReadTimeout,
			WriteTimeout: t.cfg.Server.WriteTimeout,
			IdleTimeout:  t.cfg.Server.IdleTimeout,
		}

		go func() {
			logger.Info("server starting", "addr", server.Addr)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("server error", "error", err)
				os.Exit(1)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}

		logger.Info("server exited")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
