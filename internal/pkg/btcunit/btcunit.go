// Package btcunit converts between satoshis, bitcoins and US dollars, and
// formats those amounts for display.
//
// Amounts are always summed in satoshis first and converted once, so repeated
// conversions never accumulate rounding errors.
package btcunit

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// SatoshisPerBitcoin is the number of satoshis in one bitcoin.
const SatoshisPerBitcoin = btcutil.SatoshiPerBitcoin

var satoshisPerBitcoin = decimal.NewFromInt(SatoshisPerBitcoin)

// Sum adds up the given satoshi amounts.
func Sum(amounts ...btcutil.Amount) btcutil.Amount {
	var total btcutil.Amount
	for _, a := range amounts {
		total += a
	}

	return total
}

// ToBTC converts a satoshi amount to bitcoins. The division is exact.
func ToBTC(a btcutil.Amount) decimal.Decimal {
	return decimal.NewFromInt(int64(a)).Div(satoshisPerBitcoin)
}

// ToUSD converts a bitcoin amount to dollars using the given USD-per-BTC price.
func ToUSD(btc, price decimal.Decimal) decimal.Decimal {
	return btc.Mul(price)
}

// FormatUSD renders a dollar amount as "$1,234.56", rounding half away from
// zero to the cent. Negative amounts render as "-$1,234.56".
func FormatUSD(usd decimal.Decimal) string {
	cents := usd.Round(2)

	sign := ""
	if cents.IsNegative() {
		sign = "-"
		cents = cents.Neg()
	}

	dollars := cents.Truncate(0)
	fraction := cents.Sub(dollars).StringFixed(2) // "0.56"

	return sign + "$" + humanize.BigComma(dollars.BigInt()) + fraction[1:]
}

// FormatBTC renders a bitcoin amount with up to eight fractional digits and
// no trailing zeros, e.g. "1.5 BTC".
func FormatBTC(btc decimal.Decimal) string {
	return btc.Round(8).String() + " BTC"
}
