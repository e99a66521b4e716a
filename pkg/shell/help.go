package shell

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"src.pendraw.sh/pkg/asm"
)

const usageNotes = `Prefix a script with \N to run it N times, e.g. \3 ne.
Type ? or \h to show this help, and \q to quit.
`

func writeHelp(w io.Writer, table asm.Table) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "Instruction\tSymbols")
	for _, inst := range table {
		symbols := make([]string, len(inst.Symbols))
		for i, r := range inst.Symbols {
			symbols[i] = string(r)
		}
		fmt.Fprintf(tw, "%s\t%s\n", inst.Description, strings.Join(symbols, " "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n"+usageNotes)
	return err
}
