// Command btcanalyser explores recent Bitcoin activity through the
// blockchain.info API: the unconfirmed transaction feed, a single
// transaction, or a single address.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/btcanalyser/internal/config"
	"github.com/gabapcia/btcanalyser/internal/explorer"
	"github.com/gabapcia/btcanalyser/internal/handlers/cli"
	"github.com/gabapcia/btcanalyser/internal/infra/blockchain/blockchaininfo"
	"github.com/gabapcia/btcanalyser/internal/pkg/logger"
	"github.com/gabapcia/btcanalyser/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/btcanalyser/internal/pkg/transport/http"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

const shutdownTimeout = 3 * time.Second

func main() {
	stop := cli.TrapInterrupt(color.Output, os.Exit)
	code := run(context.Background())
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	cfg, err := config.Load()
	if err != nil {
		color.New(color.FgRed).Fprintf(color.Error, "[!] invalid configuration: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(color.Error, "[!] logger: %v\n", err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	ctx = logger.Derive(ctx, "run_id", uuid.NewString())

	shutdown, err := telemetry.Init(ctx, telemetry.Settings{
		Enabled:        cfg.TelemetryEnabled,
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cli.Version,
	})
	if err != nil {
		logger.Warn(ctx, "telemetry disabled", "error", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			logger.Warn(ctx, "telemetry shutdown failed", "error", err)
		}
	}()

	fetcher := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.HTTPTimeout),
		transporthttp.WithRetryMax(cfg.HTTPRetryMax),
		transporthttp.WithRetryWaitMin(cfg.HTTPRetryWaitMin),
		transporthttp.WithRetryWaitMax(cfg.HTTPRetryWaitMax),
	)
	svc := explorer.New(blockchaininfo.NewClient(fetcher, cfg.APIURL, cfg.StatsURL))

	if err := cli.Run(ctx, svc, os.Args, color.Output); err != nil {
		return 1
	}
	return 0
}
