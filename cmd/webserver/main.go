package main

import (
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/Brownie44l1/webserver/internal/handlers"
	"github.com/Brownie44l1/webserver/internal/server"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run serves until SIGINT or SIGTERM and returns the exit status: 0 after
// a shutdown, 1 when the port cannot be bound.
func run(args []string, logOut io.Writer) int {
	config := server.ParseArgs(args)
	logger := server.NewLogger(logOut, zerolog.InfoLevel)

	r := handlers.Routes(config.StaticDir, config.ConfineStatic)

	srv := server.New(config, r.ServeHTTP)
	srv.Logger = logger
	srv.UseDefaults()

	if err := srv.Listen(); err != nil {
		logger.Error().Err(err).Msg("bind failed")
		return 1
	}
	logger.Info().Msgf("Server listening on port %d...", srv.Addr().(*net.TCPAddr).Port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		sig := <-sigChan
		logger.Info().Stringer("signal", sig).Msg("shutting down")
		srv.Close()
	}()

	if err := srv.Serve(); err != nil {
		logger.Error().Err(err).Msg("server error")
		return 1
	}

	stats := srv.Stats()
	logger.Info().
		Int64("connections", stats.ConnectionsTotal).
		Int64("requests", stats.RequestsTotal).
		Int64("not_found", stats.NotFoundTotal).
		Int64("panics", stats.PanicsTotal).
		Int64("active_connections", stats.ActiveConnections).
		Dur("avg_latency", stats.AverageLatency).
		Msg("server stopped")
	return 0
}
