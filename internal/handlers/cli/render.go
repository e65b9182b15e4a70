package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gabapcia/btcanalyser/internal/explorer"
	"github.com/gabapcia/btcanalyser/internal/pkg/btcunit"

	"github.com/jedib0t/go-pretty/v6/text"
)

const noAddress = "-"

func renderUnconfirmed(w io.Writer, report explorer.UnconfirmedReport) {
	rows := make([][]string, 0, len(report.Transactions))
	for _, tx := range report.Transactions {
		rows = append(rows, []string{
			tx.Hash,
			tx.AmountBTC.Round(8).String(),
			btcunit.FormatUSD(tx.AmountUSD),
			tx.ObservedAt.Format(time.TimeOnly),
		})
	}

	printTable(w, text.FgYellow, []string{"Hash", "Bitcoin", "Amount (USD)", "Time"}, rows)
	printTable(w, text.FgMagenta, nil, [][]string{{"Total Amount", btcunit.FormatUSD(report.TotalUSD)}})
}

func renderTransaction(w io.Writer, report explorer.TransactionReport) {
	printTable(w, text.FgYellow,
		[]string{"Total Input", "Total Output"},
		[][]string{{btcunit.FormatBTC(report.TotalInput), btcunit.FormatBTC(report.TotalOutput)}},
	)
	fmt.Fprintln(w)

	inputs := make([][]string, 0, len(report.Inputs))
	for _, in := range report.Inputs {
		inputs = append(inputs, outputRow(in.PrevOut))
	}
	printTable(w, text.FgGreen, []string{"Address (input)", "Value"}, inputs)
	fmt.Fprintln(w)

	outputs := make([][]string, 0, len(report.Outputs))
	for _, out := range report.Outputs {
		outputs = append(outputs, outputRow(out))
	}
	printTable(w, text.FgGreen, []string{"Address (output)", "Value"}, outputs)
}

func outputRow(o explorer.Output) []string {
	addr := o.Address
	if addr == "" {
		addr = noAddress
	}
	return []string{addr, btcunit.FormatBTC(btcunit.ToBTC(o.Value))}
}

func renderAddress(w io.Writer, report explorer.AddressReport) {
	printTable(w, text.FgCyan,
		[]string{"Transactions", "Total Received", "Total Sent", "Final Balance"},
		[][]string{
			{
				strconv.FormatUint(report.TransactionCount, 10),
				btcunit.FormatBTC(report.Received.BTC),
				btcunit.FormatBTC(report.Sent.BTC),
				btcunit.FormatBTC(report.Balance.BTC),
			},
			{
				"",
				btcunit.FormatUSD(report.Received.USD),
				btcunit.FormatUSD(report.Sent.USD),
				btcunit.FormatUSD(report.Balance.USD),
			},
		},
	)
}
