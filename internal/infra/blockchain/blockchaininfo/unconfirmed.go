package blockchaininfo

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gabapcia/btcanalyser/internal/explorer"
	"github.com/gabapcia/btcanalyser/internal/pkg/logger"

	"github.com/btcsuite/btcd/btcutil"
)

// The unconfirmed transactions feed is read leniently: every level is kept
// as raw JSON and decoded on its own, so one malformed item never fails the
// whole listing.
type (
	unconfirmedDocument struct {
		Txs json.RawMessage `json:"txs"`
	}

	unconfirmedTx struct {
		Hash json.RawMessage `json:"hash"`
		Out  json.RawMessage `json:"out"`
	}

	unconfirmedOutput struct {
		Value json.RawMessage `json:"value"`
	}
)

// decodeLenient decodes raw into a T, reporting false instead of an error
// when raw is absent or does not have the expected shape.
func decodeLenient[T any](raw json.RawMessage) (T, bool) {
	var v T
	if len(raw) == 0 {
		return v, false
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, false
	}

	return v, true
}

// UnconfirmedTransactions lists the unconfirmed transactions currently known
// to blockchain.info.
//
// The body must be valid JSON. Past that, a missing or malformed "txs" array
// yields an empty list, a missing hash yields an empty hash, and outputs
// whose value is not an integer are skipped.
func (c *client) UnconfirmedTransactions(ctx context.Context) (_ []explorer.PendingTransaction, err error) {
	ctx, end := c.observe(ctx, "UnconfirmedTransactions")
	defer func() { end(err) }()

	endpoint, err := c.endpoint("format=json", "unconfirmed-transactions")
	if err != nil {
		return nil, err
	}

	body, err := c.fetch(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: unconfirmed transactions body is not JSON", explorer.ErrDecode)
	}

	doc, _ := decodeLenient[unconfirmedDocument](body)
	items, _ := decodeLenient[[]json.RawMessage](doc.Txs)

	txs := make([]explorer.PendingTransaction, 0, len(items))
	for _, item := range items {
		tx, _ := decodeLenient[unconfirmedTx](item)
		hash, _ := decodeLenient[string](tx.Hash)

		txs = append(txs, explorer.PendingTransaction{
			Hash:         hash,
			OutputValues: outputValues(ctx, hash, tx.Out),
		})
	}

	logger.Debug(ctx, "unconfirmed transactions fetched", "count", len(txs))

	return txs, nil
}

// outputValues reads the integer value of every output in raw, skipping the
// ones that cannot be read.
func outputValues(ctx context.Context, hash string, raw json.RawMessage) []btcutil.Amount {
	outs, _ := decodeLenient[[]json.RawMessage](raw)

	values := make([]btcutil.Amount, 0, len(outs))
	for i, o := range outs {
		out, _ := decodeLenient[unconfirmedOutput](o)

		v, err := strconv.ParseInt(string(out.Value), 10, 64)
		if err != nil {
			logger.Warn(ctx, "skipping output without an integer value",
				"hash", hash,
				"output", i,
				"value", string(out.Value),
			)
			continue
		}

		values = append(values, btcutil.Amount(v))
	}

	return values
}
