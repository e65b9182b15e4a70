// Package blockchaininfo provides an implementation of the explorer.Blockchain
// interface backed by the public blockchain.info REST API.
//
// Endpoints used:
//
//	GET {api}/unconfirmed-transactions?format=json
//	GET {api}/rawtx/{hash}
//	GET {api}/rawaddr/{address}?limit=0
//	GET {stats}
package blockchaininfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gabapcia/btcanalyser/internal/explorer"
	transporthttp "github.com/gabapcia/btcanalyser/internal/pkg/transport/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/btcanalyser/internal/infra/blockchain/blockchaininfo"

// client implements the explorer.Blockchain interface on top of blockchain.info.
type client struct {
	fetcher  transporthttp.Fetcher // Underlying HTTP client used to reach the API
	baseURL  string                // Explorer API root, e.g. https://blockchain.info
	statsURL string                // Market statistics endpoint

	tracer   trace.Tracer
	requests metric.Int64Counter
}

// Ensure client implements the explorer.Blockchain interface at compile time.
var _ explorer.Blockchain = (*client)(nil)

// NewClient creates a blockchain.info client that issues its requests through
// fetcher. baseURL is the explorer API root and statsURL the endpoint serving
// market_price_usd.
func NewClient(fetcher transporthttp.Fetcher, baseURL, statsURL string) *client {
	requests, err := otel.Meter(instrumentationName).Int64Counter(
		"blockchaininfo.requests",
		metric.WithDescription("Requests issued to the blockchain.info API by operation and outcome."),
	)
	if err != nil {
		requests = noop.Int64Counter{}
	}

	return &client{
		fetcher:  fetcher,
		baseURL:  baseURL,
		statsURL: statsURL,
		tracer:   otel.Tracer(instrumentationName),
		requests: requests,
	}
}

// observe starts a span for operation op. The returned function ends it,
// recording err and counting the request.
func (c *client) observe(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(err error)) {
	ctx, span := c.tracer.Start(ctx, "blockchaininfo."+op, trace.WithAttributes(attrs...))

	return ctx, func(err error) {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		c.requests.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", op),
			attribute.String("outcome", outcome),
		))
		span.End()
	}
}

// endpoint joins elems under the API root and appends query, if any.
func (c *client) endpoint(query string, elems ...string) (string, error) {
	u, err := url.JoinPath(c.baseURL, elems...)
	if err != nil {
		return "", err
	}

	if query != "" {
		u += "?" + query
	}

	return u, nil
}

// fetch retrieves rawURL and maps transport failures to explorer errors.
func (c *client) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	body, err := c.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, mapError(err)
	}

	return body, nil
}

// getJSON retrieves rawURL and decodes its body into v.
func (c *client) getJSON(ctx context.Context, rawURL string, v any) error {
	body, err := c.fetch(ctx, rawURL)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", explorer.ErrDecode, err)
	}

	return nil
}

// mapError classifies a transport error into one of the explorer error kinds.
// blockchain.info answers 404 for unknown hashes and 400 for addresses or
// hashes it cannot resolve, both reported as not found.
func mapError(err error) error {
	var statusErr *transporthttp.StatusError
	switch {
	case errors.As(err, &statusErr):
		switch statusErr.StatusCode {
		case http.StatusNotFound, http.StatusBadRequest:
			return fmt.Errorf("%w: %w", explorer.ErrNotFound, err)
		default:
			return fmt.Errorf("%w: %w", explorer.ErrUnavailable, err)
		}
	case errors.Is(err, transporthttp.ErrTimeout):
		return fmt.Errorf("%w: %w", explorer.ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %w", explorer.ErrUnavailable, err)
	}
}
