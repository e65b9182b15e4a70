package cli

import (
	"context"
	"errors"
	"io"

	"github.com/gabapcia/btcanalyser/internal/explorer"
	"github.com/gabapcia/btcanalyser/internal/pkg/logger"
)

const (
	msgTransactionNotFound = "[!] There is no transaction with the hash received"
	msgAddressNotFound     = "[!] There is no address with the value received"
	msgTimeout             = "[!] blockchain.info did not answer in time, try again later"
	msgUnavailable         = "[!] blockchain.info could not be reached, try again later"
	msgDecode              = "[!] blockchain.info answered with an unexpected response"
)

// fail logs err, prints the message for its kind and returns it unchanged.
// notFound is used for explorer.ErrNotFound; when empty the service is
// reported as unavailable. A lookup miss is logged as a warning only.
func fail(ctx context.Context, w io.Writer, err error, notFound string) error {
	if notFound != "" && errors.Is(err, explorer.ErrNotFound) {
		logger.Warn(ctx, "lookup returned no result", "error", err)
	} else {
		logger.Error(ctx, "exploration failed", "error", err)
	}

	printError(w, failureMessage(err, notFound))
	return err
}

func failureMessage(err error, notFound string) string {
	switch {
	case errors.Is(err, explorer.ErrNotFound) && notFound != "":
		return notFound
	case errors.Is(err, explorer.ErrTimeout):
		return msgTimeout
	case errors.Is(err, explorer.ErrDecode):
		return msgDecode
	case errors.Is(err, explorer.ErrNotFound), errors.Is(err, explorer.ErrUnavailable):
		return msgUnavailable
	default:
		return "[!] " + err.Error()
	}
}
