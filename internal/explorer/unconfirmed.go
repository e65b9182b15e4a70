package explorer

import (
	"context"
	"time"

	"github.com/gabapcia/btcanalyser/internal/pkg/btcunit"
	"github.com/gabapcia/btcanalyser/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultLimit is the number of unconfirmed transactions shown when the
// caller does not ask for a specific amount.
const DefaultLimit uint = 100

// UnconfirmedTransaction is one row of the unconfirmed transactions listing.
type UnconfirmedTransaction struct {
	Hash       string
	AmountBTC  decimal.Decimal // sum of every readable output
	AmountUSD  decimal.Decimal
	ObservedAt time.Time // same for every row of a report
}

// UnconfirmedReport is the result of UnconfirmedTransactions.
type UnconfirmedReport struct {
	Transactions []UnconfirmedTransaction
	MarketPrice  decimal.Decimal
	TotalUSD     decimal.Decimal
}

// UnconfirmedTransactions fetches the unconfirmed transaction list and the
// market price concurrently, keeps the first limit transactions and values
// each of them.
func (s *service) UnconfirmedTransactions(ctx context.Context, limit uint) (UnconfirmedReport, error) {
	var (
		pending []PendingTransaction
		price   decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		pending, err = s.blockchain.UnconfirmedTransactions(gctx)
		return err
	})
	g.Go(func() (err error) {
		price, err = s.blockchain.MarketPrice(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return UnconfirmedReport{}, err
	}

	observedAt := s.now()

	if uint(len(pending)) > limit {
		pending = pending[:limit]
	}

	report := UnconfirmedReport{
		Transactions: make([]UnconfirmedTransaction, 0, len(pending)),
		MarketPrice:  price,
		TotalUSD:     decimal.Zero,
	}
	for _, tx := range pending {
		btc := btcunit.ToBTC(btcunit.Sum(tx.OutputValues...))
		usd := btcunit.ToUSD(btc, price)

		report.Transactions = append(report.Transactions, UnconfirmedTransaction{
			Hash:       tx.Hash,
			AmountBTC:  btc,
			AmountUSD:  usd,
			ObservedAt: observedAt,
		})
		report.TotalUSD = report.TotalUSD.Add(usd)
	}

	logger.Debug(ctx, "unconfirmed transactions valued",
		"requested", limit,
		"returned", len(report.Transactions),
		"market_price_usd", price.String(),
	)

	return report, nil
}
