package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabapcia/btcanalyser/internal/explorer"
	"github.com/gabapcia/btcanalyser/internal/pkg/logger"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

// Version is reported by --version. It is set at build time with
// -ldflags "-X github.com/gabapcia/btcanalyser/internal/handlers/cli.Version=<v>".
var Version = "dev"

// ErrUsage is returned when the command line is incomplete or invalid. The
// help panel has already been printed when it is returned.
var ErrUsage = errors.New("invalid usage")

const appName = "btcanalyser"

// Exploration modes accepted by --exploration-mode.
const (
	modeUnconfirmed = "unconfirmed_transactions"
	modeInspect     = "inspect"
	modeAddress     = "address"
)

// Flag names.
const (
	flagMode        = "exploration-mode"
	flagLimit       = "number-outputs"
	flagTransaction = "inspect-transaction"
	flagAddress     = "inspect-address"
	flagNoColor     = "no-color"
)

// Run parses args, runs the selected exploration mode against svc and
// writes the result to out.
//
// Supported modes:
//
//   - `unconfirmed_transactions`: lists the latest unconfirmed transactions.
//   - `inspect`: shows the inputs and outputs of a transaction.
//   - `address`: shows the activity of an address.
//
// It returns ErrUsage when the arguments are missing or invalid, and the
// explorer error when a lookup fails. In both cases a message has already
// been written to out.
func Run(ctx context.Context, svc explorer.Service, args []string, out io.Writer) error {
	app := &cli.Command{
		Name:        appName,
		Version:     Version,
		Usage:       "Analyse recent Bitcoin transactions from the blockchain.info API.",
		Description: "View the last unconfirmed transactions, inspect a transaction by hash, or inspect an address.",
		Writer:      out,
		ErrWriter:   out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagMode,
				Aliases: []string{"e"},
				Usage:   "Exploration mode (unconfirmed_transactions, inspect, address)",
			},
			&cli.UintFlag{
				Name:    flagLimit,
				Aliases: []string{"n"},
				Usage:   "Number of unconfirmed transactions to show",
				Value:   uint64(explorer.DefaultLimit),
			},
			&cli.StringFlag{
				Name:    flagTransaction,
				Aliases: []string{"i"},
				Usage:   "Hash of the transaction to inspect",
			},
			&cli.StringFlag{
				Name:    flagAddress,
				Aliases: []string{"a"},
				Usage:   "Bitcoin address to inspect",
			},
			&cli.BoolFlag{
				Name:  flagNoColor,
				Usage: "Disable colored output",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			applyNoColor(c)
			return ctx, nil
		},
		OnUsageError: func(ctx context.Context, c *cli.Command, err error, isSubcommand bool) error {
			applyNoColor(c)
			printError(out, "[!] "+err.Error())
			printHelp(out)
			return fmt.Errorf("%w: %w", ErrUsage, err)
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return dispatch(ctx, c, svc, out)
		},
	}

	return app.Run(ctx, args)
}

// applyNoColor turns colors off for the rest of the process when
// --no-color was given. Flags parsed before a usage error are honored too.
func applyNoColor(c *cli.Command) {
	if c.Bool(flagNoColor) {
		color.NoColor = true
	}
}

// dispatch runs the flow selected by --exploration-mode.
func dispatch(ctx context.Context, c *cli.Command, svc explorer.Service, out io.Writer) error {
	mode := c.String(flagMode)
	ctx = logger.Derive(ctx, "mode", mode)

	switch mode {
	case modeUnconfirmed:
		return showUnconfirmed(ctx, svc, out, uint(c.Uint(flagLimit)))
	case modeInspect:
		return showTransaction(ctx, svc, out, c.String(flagTransaction))
	case modeAddress:
		return showAddress(ctx, svc, out, c.String(flagAddress))
	default:
		if mode != "" {
			printError(out, fmt.Sprintf("[!] Unknown exploration mode %q", mode))
		}
		printHelp(out)
		return ErrUsage
	}
}

func showUnconfirmed(ctx context.Context, svc explorer.Service, out io.Writer, limit uint) error {
	logger.Info(ctx, "listing unconfirmed transactions", "limit", limit)

	report, err := svc.UnconfirmedTransactions(ctx, limit)
	if err != nil {
		return fail(ctx, out, err, "")
	}

	renderUnconfirmed(out, report)
	return nil
}

func showTransaction(ctx context.Context, svc explorer.Service, out io.Writer, hash string) error {
	if hash == "" {
		printHint(out, hintTransaction)
		printHelp(out)
		return ErrUsage
	}

	logger.Info(ctx, "inspecting transaction", "hash", hash)

	report, err := svc.InspectTransaction(ctx, hash)
	if errors.Is(err, explorer.ErrInvalidInput) {
		printHint(out, hintTransaction)
		printHelp(out)
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if err != nil {
		return fail(ctx, out, err, msgTransactionNotFound)
	}

	renderTransaction(out, report)
	return nil
}

func showAddress(ctx context.Context, svc explorer.Service, out io.Writer, address string) error {
	if address == "" {
		printHint(out, hintAddress)
		printHelp(out)
		return ErrUsage
	}

	logger.Info(ctx, "inspecting address", "address", address)

	report, err := svc.InspectAddress(ctx, address)
	if errors.Is(err, explorer.ErrInvalidInput) {
		printHint(out, hintAddress)
		printHelp(out)
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if err != nil {
		return fail(ctx, out, err, msgAddressNotFound)
	}

	renderAddress(out, report)
	return nil
}
