package cmd

import (
	"context"
	"os"

	"github.com/renato0307/gitdash/internal/logging"
	"github.com/renato0307/gitdash/internal/server"
	"github.com/renato0307/gitdash/internal/version"
)

const (
	defaultListenAddress = "127.0.0.1"
	defaultPort          = 4173
)

// ServeCmd serves the JSON API
type ServeCmd struct {
	AssetDir      string `help:"Built frontend directory; its newest mtime is reported by /api/version"`
	ListenAddress string `help:"Address to listen on" default:"127.0.0.1"`
	Port          int    `help:"Port to listen on" env:"PORT" default:"4173"`
}

// Run starts the HTTP server and blocks until shutdown
func (s *ServeCmd) Run(cli *CLI) error {
	// Apply ServeCmd-specific settings with proper precedence
	if cli.settings != nil {
		if s.ListenAddress == defaultListenAddress && cli.settings.ListenAddress != "" {
			s.ListenAddress = cli.settings.ListenAddress
		}
		if s.Port == defaultPort {
			if _, hasEnv := os.LookupEnv("PORT"); !hasEnv && cli.settings.Port != nil {
				s.Port = *cli.settings.Port
			}
		}
		if s.AssetDir == "" {
			s.AssetDir = cli.settings.AssetDir
		}
	}

	logging.Logger.Info("Starting gitdash server",
		"repo", cli.Repo,
		"address", s.ListenAddress,
		"port", s.Port,
		"asset_dir", s.AssetDir)

	handler := server.NewHandler(
		cli.Container.SnapshotService,
		cli.Container.MutationService,
		cli.Repo,
		server.AssetVersion(s.AssetDir, version.Version),
	)

	return server.NewServer(s.ListenAddress, s.Port, handler).Start(context.Background())
}
