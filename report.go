package churchc

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteStats prints the statistics of a compilation as a table.
func WriteStats(w io.Writer, r *Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Compilation Statistics ===\n\n")
	fmt.Fprintln(tw, "Metric\tValue")
	fmt.Fprintln(tw, "---\t---")
	fmt.Fprintf(tw, "Top-level forms\t%d\n", r.Forms)
	fmt.Fprintf(tw, "Output size\t%d bytes\n", len(r.Output))
	fmt.Fprintf(tw, "Parse time\t%v\n", r.ParseTime)
	fmt.Fprintf(tw, "Translate time\t%v\n", r.TranslateTime)
	fmt.Fprintf(tw, "Cached numerals\t%d\n", r.Cache.Entries)
	fmt.Fprintf(tw, "Cache hits\t%d\n", r.Cache.Hits)
	fmt.Fprintf(tw, "Cache misses\t%d\n", r.Cache.Misses)

	tw.Flush()
}
