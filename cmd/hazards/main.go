// Command hazards prints the meteorological safety hazards for a location,
// using the current conditions and today's forecast from wttr.in.
//
// Usage:
//
//	hazards [location]
//
// Without a location the weather service resolves one from the caller's IP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	kafkaadapter "github.com/couchcryptid/weather-hazards/internal/adapter/kafka"
	"github.com/couchcryptid/weather-hazards/internal/adapter/wttr"
	"github.com/couchcryptid/weather-hazards/internal/config"
	"github.com/couchcryptid/weather-hazards/internal/domain"
	"github.com/couchcryptid/weather-hazards/internal/observability"
	"github.com/couchcryptid/weather-hazards/internal/pipeline"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	exitOK      = 0
	exitFailure = 1
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hazards", flag.ContinueOnError)
	fs.SetOutput(stderr)
	showVersion := fs.Bool("version", false, "print the version and exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: hazards [flags] [location]")
		fmt.Fprintln(fs.Output(), "\nPrints the meteorological safety hazards for a location.")
		fmt.Fprintln(fs.Output(), "\nFlags:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitFailure
	}

	if *showVersion {
		fmt.Fprintf(stdout, "hazards %s\n", version)
		return exitOK
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "hazards: %v\n", err)
		return exitFailure
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	client := wttr.NewClient(cfg.WttrBaseURL, cfg.WttrTimeout, metrics, logger)

	// Assigned only when enabled so the pipeline sees a nil interface otherwise.
	var publisher pipeline.Publisher
	if cfg.KafkaEnabled {
		writer := kafkaadapter.NewWriter(cfg, logger)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Warn("kafka writer close error", "error", err)
			}
		}()
		publisher = writer
		logger.Debug("kafka report sink enabled", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	}

	p := pipeline.New(client, publisher, logger, metrics)

	location := strings.TrimSpace(strings.Join(fs.Args(), " "))
	report, runErr := p.Run(ctx, location)

	if cfg.PushgatewayURL != "" {
		pushMetrics(cfg, metrics, logger)
	}

	if runErr != nil {
		logger.Debug("lookup failed", "location", location, "error", runErr)
		fmt.Fprintln(stderr, userMessage(runErr))
		return exitFailure
	}

	fmt.Fprint(stdout, report.Result.Render())
	return exitOK
}

// pushMetrics runs on its own deadline so an interrupted lookup still reports.
func pushMetrics(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := metrics.Push(ctx, cfg.PushgatewayURL, cfg.PushgatewayJob); err != nil {
		logger.Warn("metrics push failed", "url", cfg.PushgatewayURL, "error", err)
	}
}

// userMessage renders a lookup error as the single line shown on stderr.
func userMessage(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "Interrupted"
	case errors.Is(err, domain.ErrLocationNotFound):
		return "Location not found"
	case errors.Is(err, domain.ErrUpstream):
		return "Request to weather service returned unsuccessful"
	case errors.Is(err, domain.ErrUnreachable):
		return "Weather service unreachable; check your network connection"
	default:
		// Malformed responses carry the missing or bad field in the chain.
		return "Error: " + err.Error()
	}
}
