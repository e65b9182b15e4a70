package explorer

import (
	"context"
	"fmt"

	"github.com/gabapcia/btcanalyser/internal/pkg/btcunit"
	"github.com/gabapcia/btcanalyser/internal/pkg/logger"
	"github.com/gabapcia/btcanalyser/internal/pkg/validator"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

// TransactionReport is the result of InspectTransaction.
type TransactionReport struct {
	TransactionDetail
	TotalInput  decimal.Decimal // BTC, sum of every input's previous output
	TotalOutput decimal.Decimal // BTC, sum of every output
}

// transactionQuery is the validated input of InspectTransaction.
type transactionQuery struct {
	Hash string `validate:"required,btc_txhash"`
}

// InspectTransaction validates hash, looks the transaction up and totals its
// inputs and outputs.
func (s *service) InspectTransaction(ctx context.Context, hash string) (TransactionReport, error) {
	if err := validator.Validate(transactionQuery{Hash: hash}); err != nil {
		return TransactionReport{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	detail, err := s.blockchain.Transaction(ctx, hash)
	if err != nil {
		return TransactionReport{}, err
	}

	var totalIn, totalOut btcutil.Amount
	for _, in := range detail.Inputs {
		totalIn += in.PrevOut.Value
	}
	for _, out := range detail.Outputs {
		totalOut += out.Value
	}

	logger.Debug(ctx, "transaction inspected",
		"hash", hash,
		"inputs", len(detail.Inputs),
		"outputs", len(detail.Outputs),
	)

	return TransactionReport{
		TransactionDetail: detail,
		TotalInput:        btcunit.ToBTC(totalIn),
		TotalOutput:       btcunit.ToBTC(totalOut),
	}, nil
}
