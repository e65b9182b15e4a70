package blockchaininfo

import (
	"context"

	"github.com/gabapcia/btcanalyser/internal/explorer"

	"github.com/btcsuite/btcd/btcutil"
	"go.opentelemetry.io/otel/attribute"
)

// rawTransaction is the subset of GET /rawtx/{hash} used by the explorer.
type rawTransaction struct {
	Hash   string `json:"hash"`
	Inputs []struct {
		PrevOut *rawOutput `json:"prev_out"` // nil for coinbase inputs
	} `json:"inputs"`
	Out []rawOutput `json:"out"`
}

type rawOutput struct {
	Addr  string `json:"addr"` // absent for non standard scripts
	Value int64  `json:"value"`
}

func (o rawOutput) toOutput() explorer.Output {
	return explorer.Output{
		Address: o.Addr,
		Value:   btcutil.Amount(o.Value),
	}
}

// Transaction looks a transaction up by hash.
func (c *client) Transaction(ctx context.Context, hash string) (_ explorer.TransactionDetail, err error) {
	ctx, end := c.observe(ctx, "Transaction", attribute.String("btc.tx.hash", hash))
	defer func() { end(err) }()

	endpoint, err := c.endpoint("", "rawtx", hash)
	if err != nil {
		return explorer.TransactionDetail{}, err
	}

	var raw rawTransaction
	if err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return explorer.TransactionDetail{}, err
	}

	detail := explorer.TransactionDetail{
		Hash:    raw.Hash,
		Inputs:  make([]explorer.Input, 0, len(raw.Inputs)),
		Outputs: make([]explorer.Output, 0, len(raw.Out)),
	}
	for _, in := range raw.Inputs {
		var input explorer.Input
		if in.PrevOut != nil {
			input.PrevOut = in.PrevOut.toOutput()
		}
		detail.Inputs = append(detail.Inputs, input)
	}
	for _, out := range raw.Out {
		detail.Outputs = append(detail.Outputs, out.toOutput())
	}

	return detail, nil
}
