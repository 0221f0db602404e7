package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/meheralimeer/shelfwatch/internal/item"
)

// renderTable writes an aligned listing of items to w: one row per record,
// columns id, name, created, updated, expiry.
func renderTable(w io.Writer, items []item.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "(no items)")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCREATED\tUPDATED\tEXPIRY")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			it.ID,
			it.Name,
			it.CreatedAt.Format(item.TimeLayout),
			it.UpdatedAt.Format(item.TimeLayout),
			it.ExpiryDate.Format(item.DateLayout),
		)
	}
	_ = tw.Flush()
}
