package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jroosing/fqdn"
	"github.com/jroosing/fqdn/internal/api"
	"github.com/jroosing/fqdn/internal/logging"
)

func main() {
	var (
		host     = flag.String("host", "127.0.0.1", "Bind host")
		port     = flag.Int("port", 8053, "Bind port")
		apiKey   = flag.String("api-key", "", "Require X-API-Key on mutating endpoints (or set FQDND_API_KEY)")
		strict   = flag.Bool("strict", false, "Validate under the full RFC rule bundle")
		jsonLogs = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug    = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	key := *apiKey
	if key == "" {
		key = os.Getenv("FQDND_API_KEY")
	}

	rules := fqdn.Default
	if *strict {
		rules = fqdn.Strict
	}

	level := "INFO"
	if *debug {
		level = "DEBUG"
	}
	logger := logging.Configure(logging.Config{Level: level, JSON: *jsonLogs})

	srv := api.New(api.Config{Host: *host, Port: *port, APIKey: key, Rules: rules}, logger)
	logger.Info("fqdnd starting", "addr", srv.Addr(), "strict", *strict, "api_key", key != "")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("fqdnd shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
			os.Exit(1)
		}
	}
}
