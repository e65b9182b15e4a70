package blockchaininfo

import (
	"context"

	"github.com/gabapcia/btcanalyser/internal/explorer"

	"github.com/btcsuite/btcd/btcutil"
	"go.opentelemetry.io/otel/attribute"
)

// rawAddress is the subset of GET /rawaddr/{address} used by the explorer.
type rawAddress struct {
	NTx           uint64 `json:"n_tx"`
	TotalReceived int64  `json:"total_received"`
	TotalSent     int64  `json:"total_sent"`
	FinalBalance  int64  `json:"final_balance"`
}

// AddressSummary looks up the totals of an address. The transaction list is
// not requested (limit=0).
func (c *client) AddressSummary(ctx context.Context, address string) (_ explorer.AddressSummary, err error) {
	ctx, end := c.observe(ctx, "AddressSummary", attribute.String("btc.address", address))
	defer func() { end(err) }()

	endpoint, err := c.endpoint("limit=0", "rawaddr", address)
	if err != nil {
		return explorer.AddressSummary{}, err
	}

	var raw rawAddress
	if err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return explorer.AddressSummary{}, err
	}

	return explorer.AddressSummary{
		TransactionCount: raw.NTx,
		TotalReceived:    btcutil.Amount(raw.TotalReceived),
		TotalSent:        btcutil.Amount(raw.TotalSent),
		FinalBalance:     btcutil.Amount(raw.FinalBalance),
	}, nil
}
