package blockchaininfo

import (
	"context"
	"fmt"

	"github.com/gabapcia/btcanalyser/internal/explorer"

	"github.com/shopspring/decimal"
)

// rawStats is the subset of the stats endpoint used by the explorer.
type rawStats struct {
	MarketPriceUSD *decimal.Decimal `json:"market_price_usd"`
}

// MarketPrice returns the current USD price of one bitcoin.
func (c *client) MarketPrice(ctx context.Context) (_ decimal.Decimal, err error) {
	ctx, end := c.observe(ctx, "MarketPrice")
	defer func() { end(err) }()

	var raw rawStats
	if err := c.getJSON(ctx, c.statsURL, &raw); err != nil {
		return decimal.Zero, err
	}

	if raw.MarketPriceUSD == nil {
		return decimal.Zero, fmt.Errorf("%w: market_price_usd is missing", explorer.ErrDecode)
	}

	return *raw.MarketPriceUSD, nil
}
