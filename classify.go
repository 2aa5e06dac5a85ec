package ils

import (
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"unicode/utf8"

	"github.com/mwantia/ils/data"
)

// Classify converts one raw directory entry into a ListingEntry. It is
// total: every failure along the way degrades to a placeholder value
// instead of an error, so each raw slot always yields exactly one entry.
// dir is the directory holding the entry and is only touched to resolve
// symlink targets.
func (l *Listing) Classify(dir string, dentry fs.DirEntry) data.ListingEntry {
	// An entry name is raw bytes on disk; show the placeholder when it
	// does not decode as text.
	name := dentry.Name()
	if !utf8.ValidString(name) {
		l.log.Debug("entry in %s has a non-text name", dir)
		return data.NewUnknown(data.NamePlaceholder)
	}

	info, err := dentry.Info()
	if err != nil {
		l.log.Debug("stat %s: %v", name, err)
		return data.NewUnknown(name)
	}

	switch mode := info.Mode(); {
	case mode.IsDir():
		return data.NewDirectory(name)

	case mode&fs.ModeSymlink != 0:
		// Links are rendered as links, never followed.
		target, err := os.Readlink(filepath.Join(dir, name))
		if err != nil || !utf8.ValidString(target) {
			l.log.Debug("readlink %s: unresolvable target", name)
			target = data.NamePlaceholder
		}
		return data.NewSymlink(name, target)

	case mode&fs.ModeNamedPipe != 0:
		return data.NewPipe(name)

	case mode&fs.ModeCharDevice != 0:
		dev, ok := rawDeviceID(info)
		if !ok {
			l.log.Debug("device id unavailable for %s", name)
		}
		return data.NewCharDevice(name, dev)

	case mode&fs.ModeDevice != 0:
		dev, ok := rawDeviceID(info)
		if !ok {
			l.log.Debug("device id unavailable for %s", name)
		}
		return data.NewBlockDevice(name, dev)

	case mode&fs.ModeSocket != 0:
		return data.NewSocket(name)

	default:
		return data.NewRegular(name)
	}
}

// rawDeviceID extracts st_rdev from the platform stat data. It reports
// false, with a zero identifier, when the metadata does not carry one.
func rawDeviceID(info fs.FileInfo) (data.DeviceID, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}

	return data.DeviceID(st.Rdev), true
}
