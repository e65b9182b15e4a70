package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Examples shown in hints and in the help panel. Both exist on mainnet.
const (
	exampleHash    = "136937e5a742645ce873f079f8668aefdc2d06b8172e903d031a8bfb48969450"
	exampleAddress = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
)

const (
	hintTransaction = "Provide a transaction hash (i.e -i " + exampleHash + ")"
	hintAddress     = "Provide a Bitcoin address (i.e -a " + exampleAddress + ")"
)

var (
	usageColor   = color.New(color.FgRed, color.Bold)
	ruleColor    = color.New(color.FgRed)
	sectionColor = color.New(color.FgYellow)
	labelColor   = color.New(color.FgMagenta)
	textColor    = color.New(color.FgYellow)
	hintColor    = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed)
)

// printHelp writes the usage panel.
func printHelp(w io.Writer) {
	usageColor.Fprintf(w, "[!] Usage:  %s -e <mode> [-n <count>] [-i <hash>] [-a <address>]\n", appName)
	ruleColor.Fprintln(w, "---------------------------------------------------------------------------------------------------")
	fmt.Fprintln(w)

	sectionColor.Fprintln(w, "\t[-e] Exploration Mode")
	printEntry(w, "\t\t", modeUnconfirmed+":", "\t", "List unconfirmed transactions.")
	printEntry(w, "\t\t", modeInspect+":", "\t\t\t", "Inspect a transaction hash.")
	printEntry(w, "\t\t", modeAddress+":", "\t\t\t", "Inspect a Bitcoin address.")
	fmt.Fprintln(w)

	sectionColor.Fprintln(w, "\t[-n] Limit the number of outputs")
	printEntry(w, "\t\t", "Example:", "\t", appName+" -e "+modeUnconfirmed+" -n 10")
	fmt.Fprintln(w)

	sectionColor.Fprintln(w, "\t[-i] Provide the transaction hash")
	printEntry(w, "\t\t", "Example:", "\t", appName+" -e "+modeInspect+" -i "+exampleHash)
	fmt.Fprintln(w)

	sectionColor.Fprintln(w, "\t[-a] Provide a Bitcoin address")
	printEntry(w, "\t\t", "Example:", "\t", appName+" -e "+modeAddress+" -a "+exampleAddress)
	fmt.Fprintln(w)

	sectionColor.Fprintln(w, "\t[--no-color] Disable colored output")
	sectionColor.Fprintln(w, "\t[--version] Print the version")
}

// printEntry writes one "label<gap>text" line of the panel.
func printEntry(w io.Writer, indent, label, gap, text string) {
	fmt.Fprint(w, indent)
	labelColor.Fprint(w, label)
	fmt.Fprint(w, gap)
	textColor.Fprintln(w, text)
}

func printHint(w io.Writer, hint string) {
	hintColor.Fprintln(w, hint)
	fmt.Fprintln(w)
}

func printError(w io.Writer, msg string) {
	errorColor.Fprintln(w, msg)
}
