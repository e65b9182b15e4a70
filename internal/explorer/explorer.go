// Package explorer implements the three ways btcanalyser looks at the Bitcoin
// network: the most recent unconfirmed transactions, a single transaction
// looked up by hash, and the activity of a single address.
//
// The package only holds business rules (truncation, summation, unit
// conversion). Talking to an actual block explorer is delegated to a
// Blockchain implementation.
package explorer

import (
	"context"
	"time"
)

// Service defines the read-only operations offered to the command line.
type Service interface {
	// UnconfirmedTransactions returns up to limit of the most recent
	// unconfirmed transactions, in the order the explorer returned them,
	// each valued in BTC and USD.
	UnconfirmedTransactions(ctx context.Context, limit uint) (UnconfirmedReport, error)

	// InspectTransaction returns the inputs, outputs and totals of the
	// transaction identified by hash.
	InspectTransaction(ctx context.Context, hash string) (TransactionReport, error)

	// InspectAddress returns the activity summary of address valued in BTC
	// and USD.
	InspectAddress(ctx context.Context, address string) (AddressReport, error)
}

// config holds optional settings of the service.
type config struct {
	now func() time.Time // clock used to stamp unconfirmed transactions
}

// Option customizes the service.
type Option func(*config)

// WithClock overrides the clock used to stamp observed transactions.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// service is the concrete implementation of the Service interface.
type service struct {
	blockchain Blockchain
	now        func() time.Time
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a new explorer service backed by the given Blockchain.
func New(bc Blockchain, opts ...Option) *service {
	cfg := config{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		blockchain: bc,
		now:        cfg.now,
	}
}
