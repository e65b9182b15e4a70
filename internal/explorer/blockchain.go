package explorer

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

// PendingTransaction is an unconfirmed transaction as listed by the explorer.
// OutputValues only holds the outputs whose value could be read; unreadable
// outputs are dropped by the Blockchain implementation.
type PendingTransaction struct {
	Hash         string
	OutputValues []btcutil.Amount
}

// Output is a transaction output, or the previous output spent by an input.
// Address is empty for outputs without a standard address (e.g. OP_RETURN).
type Output struct {
	Address string
	Value   btcutil.Amount
}

// Input spends PrevOut. Coinbase inputs carry a zero PrevOut.
type Input struct {
	PrevOut Output
}

// TransactionDetail is a transaction looked up by hash.
type TransactionDetail struct {
	Hash    string
	Inputs  []Input
	Outputs []Output
}

// AddressSummary is the activity of an address, in satoshis.
type AddressSummary struct {
	TransactionCount uint64
	TotalReceived    btcutil.Amount
	TotalSent        btcutil.Amount
	FinalBalance     btcutil.Amount
}

// Blockchain is the data source behind the explorer service.
//
// Implementations must wrap their failures with one of ErrNotFound,
// ErrUnavailable, ErrTimeout or ErrDecode.
type Blockchain interface {
	// UnconfirmedTransactions lists the unconfirmed transactions currently
	// known to the explorer, in the explorer's own order.
	UnconfirmedTransactions(ctx context.Context) ([]PendingTransaction, error)

	// Transaction looks up a single transaction by hash.
	Transaction(ctx context.Context, hash string) (TransactionDetail, error)

	// AddressSummary looks up the activity of an address.
	AddressSummary(ctx context.Context, address string) (AddressSummary, error)

	// MarketPrice returns the current price of one bitcoin in US dollars.
	MarketPrice(ctx context.Context) (decimal.Decimal, error)
}
