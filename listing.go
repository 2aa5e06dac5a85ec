package ils

import (
	"context"
	"os"

	"github.com/tidwall/btree"

	"github.com/mwantia/ils/data"
	"github.com/mwantia/ils/log"
)

// listingItem pairs an entry with its insertion sequence. The sequence
// breaks ordering ties between equal names, so synthesized placeholder
// entries sharing the "???" name all keep their own slot in the tree.
type listingItem struct {
	seq   int
	entry data.ListingEntry
}

// Listing is an ordered collection of classified directory entries.
// Entries are kept sorted by name (byte-lexicographic, case-sensitive)
// from the moment they are added; insertion order decides between
// entries with equal names.
type Listing struct {
	tree *btree.BTreeG[listingItem]
	seq  int
	log  *log.Logger
}

func NewListing(opts ...ListingOption) (*Listing, error) {
	options := newDefaultListingOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	return &Listing{
		tree: btree.NewBTreeG(func(a, b listingItem) bool {
			if a.entry.Name() != b.entry.Name() {
				return a.entry.Name() < b.entry.Name()
			}
			return a.seq < b.seq
		}),
		log: log.New("ils", options.LogLevel, options.LogFile, options.NoTerminalLog),
	}, nil
}

// Add inserts an entry into the listing.
func (l *Listing) Add(entry data.ListingEntry) {
	if entry == nil {
		return
	}

	l.tree.Set(listingItem{seq: l.seq, entry: entry})
	l.seq++
}

// Len returns the number of entries in the listing.
func (l *Listing) Len() int {
	return l.tree.Len()
}

// Entries returns the entries in listing order.
func (l *Listing) Entries() []data.ListingEntry {
	entries := make([]data.ListingEntry, 0, l.tree.Len())
	l.tree.Scan(func(item listingItem) bool {
		entries = append(entries, item.entry)
		return true
	})

	return entries
}

// ReadDirectory enumerates the directory at path and classifies every
// entry into the listing. The special "." and ".." entries are never
// reported. When the directory cannot be opened at all, the error is
// returned and the listing is left unchanged; a failure in the middle of
// enumeration instead surfaces as a single placeholder entry, so the
// listing still shows that something was there.
func (l *Listing) ReadDirectory(ctx context.Context, path string) error {
	dentries, err := os.ReadDir(path)
	if err != nil && len(dentries) == 0 {
		return err
	}

	for _, dentry := range dentries {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		l.Add(l.Classify(path, dentry))
	}

	if err != nil {
		l.log.Debug("enumeration of %s stopped early: %v", path, err)
		l.Add(data.NewUnknown(data.NamePlaceholder))
	}

	return nil
}
