package ils

import (
	"fmt"
	"io"

	"github.com/mwantia/ils/data"
)

// Render writes the listing to w, one line per entry. Directories come
// first, then everything else, each group in name order; symlink lines
// carry their target after an arrow. Rendering reads the collection
// twice and never modifies it, so repeated calls produce identical
// output.
func (l *Listing) Render(w io.Writer) error {
	var err error

	l.tree.Scan(func(item listingItem) bool {
		if item.entry.Type() != data.EntryTypeDirectory {
			return true
		}

		_, err = fmt.Fprintf(w, "%s %s\n", item.entry.Icon(), item.entry.Name())
		return err == nil
	})
	if err != nil {
		return err
	}

	l.tree.Scan(func(item listingItem) bool {
		if item.entry.Type() == data.EntryTypeDirectory {
			return true
		}

		if link, ok := item.entry.(*data.SymlinkEntry); ok {
			_, err = fmt.Fprintf(w, "%s %s -> %s\n", link.Icon(), link.Name(), link.Target())
		} else {
			_, err = fmt.Fprintf(w, "%s %s\n", item.entry.Icon(), item.entry.Name())
		}
		return err == nil
	})

	return err
}
