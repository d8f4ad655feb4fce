package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/slidecraft/slidecraft/internal/config"
	"github.com/slidecraft/slidecraft/internal/deck"
	"github.com/slidecraft/slidecraft/internal/gemini"
	"github.com/slidecraft/slidecraft/internal/handlers"
	"github.com/slidecraft/slidecraft/internal/outline"
	"github.com/slidecraft/slidecraft/internal/render"
)

func newServeCmd() *cobra.Command {
	var port string
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the generation API server",
		Long: `Starts the Slidecraft API on the specified port.

The API accepts source uploads, runs the generation pipeline, and serves
PNG/PDF/PPTX exports of the assembled decks. The web chrome is a separate
frontend that talks to this API.`,
		Example: `  # Start server on default port 8888
  slidecraft serve

  # Start server on custom port
  slidecraft serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if port == "" {
				port = cfg.Port
			}

			handler := handlers.New(newPipeline(cfg))

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/upload", handler.HandleUpload)
			mux.HandleFunc("/api/generate", handler.HandleGenerate)
			mux.HandleFunc("/api/credential", handler.HandleCredential)
			mux.HandleFunc("/api/presentations", handler.HandlePresentations)
			mux.HandleFunc("/api/presentations/", handler.HandlePresentationDetail)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Slidecraft API available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "slidecraft.yaml", "Path to config file")

	return cmd
}

// newPipeline wires the generation service from one Gemini client, which
// doubles as the credential gate.
func newPipeline(cfg config.Config) (*deck.Service, deck.CredentialGate) {
	client := gemini.NewClient(os.Getenv("GEMINI_API_KEY"), cfg.TextModel, cfg.ImageModel)

	outliner := outline.NewSynthesizer(client)
	outliner.Threshold = cfg.ArticleThreshold
	outliner.MaxArticleChars = cfg.MaxArticleChars

	return deck.NewService(outliner, render.NewRenderer(client), client), client
}
