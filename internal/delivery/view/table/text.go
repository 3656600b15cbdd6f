package table

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
)

// WriteText prints the view as aligned columns followed by the paging footer.
func WriteText(w io.Writer, view View) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	headers := make([]string, 0, len(view.Columns)+1)
	for _, c := range view.Columns {
		label := c.Label
		if c.Sorted {
			if c.Desc {
				label += " ↓"
			} else {
				label += " ↑"
			}
		}
		headers = append(headers, label)
	}
	if view.HasActions {
		headers = append(headers, "Actions")
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	if view.Empty {
		fmt.Fprintln(tw, view.EmptyText)
	}
	for _, row := range view.Rows {
		cells := row.Cells
		if view.HasActions {
			labels := make([]string, 0, len(row.Actions))
			for _, a := range row.Actions {
				if a.Disabled {
					labels = append(labels, "("+a.Label+")")
				} else {
					labels = append(labels, a.Label)
				}
			}
			cells = append(append([]string(nil), cells...), strings.Join(labels, ", "))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "flush table")
	}

	if !view.Empty && view.TotalPages > 1 {
		_, err := fmt.Fprintf(w, "Showing %d to %d of %d entries\nPage %d of %d\n",
			view.From, view.To, view.Total, view.Page, view.TotalPages)

		return errors.WithStack(err)
	}

	return nil
}
