package explorer

import (
	"context"
	"fmt"

	"github.com/gabapcia/btcanalyser/internal/pkg/btcunit"
	"github.com/gabapcia/btcanalyser/internal/pkg/logger"
	"github.com/gabapcia/btcanalyser/internal/pkg/validator"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Amounts is a value expressed both in bitcoins and in US dollars.
type Amounts struct {
	BTC decimal.Decimal
	USD decimal.Decimal
}

// AddressReport is the result of InspectAddress.
type AddressReport struct {
	Address          string
	TransactionCount uint64
	Received         Amounts
	Sent             Amounts
	Balance          Amounts
	MarketPrice      decimal.Decimal
}

// addressQuery is the validated input of InspectAddress.
type addressQuery struct {
	Address string `validate:"required,btc_address"`
}

// InspectAddress validates address, then fetches its summary and the market
// price concurrently and values every total.
func (s *service) InspectAddress(ctx context.Context, address string) (AddressReport, error) {
	if err := validator.Validate(addressQuery{Address: address}); err != nil {
		return AddressReport{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var (
		summary AddressSummary
		price   decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		summary, err = s.blockchain.AddressSummary(gctx, address)
		return err
	})
	g.Go(func() (err error) {
		price, err = s.blockchain.MarketPrice(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return AddressReport{}, err
	}

	logger.Debug(ctx, "address inspected",
		"address", address,
		"transactions", summary.TransactionCount,
	)

	return AddressReport{
		Address:          address,
		TransactionCount: summary.TransactionCount,
		Received:         valueOf(summary.TotalReceived, price),
		Sent:             valueOf(summary.TotalSent, price),
		Balance:          valueOf(summary.FinalBalance, price),
		MarketPrice:      price,
	}, nil
}

func valueOf(a btcutil.Amount, price decimal.Decimal) Amounts {
	btc := btcunit.ToBTC(a)
	return Amounts{BTC: btc, USD: btcunit.ToUSD(btc, price)}
}
