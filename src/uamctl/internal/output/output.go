// Package output provides formatting helpers for uamctl command results.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

// PrintJSON prints data as indented JSON
func PrintJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintTable prints rows as an aligned table with a header line
func PrintTable(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// PrintKeyValues prints a two-column key/value listing
func PrintKeyValues(pairs [][2]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, pair := range pairs {
		fmt.Fprintf(w, "%s:\t%s\n", pair[0], pair[1])
	}
	w.Flush()
}

// PrintFormatted prints data in the requested format. The tableFn callback
// renders the table representation; anything else falls back to JSON.
func PrintFormatted(format string, data interface{}, tableFn func()) error {
	switch format {
	case "table":
		tableFn()
		return nil
	default:
		return PrintJSON(data)
	}
}

// PrintMessage prints an informational message to stdout
func PrintMessage(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
