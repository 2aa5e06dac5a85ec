package data

// EntryType identifies the on-disk kind of a directory entry.
type EntryType int

// Entry type constants matching common Unix file types.
const (
	EntryTypeUnknown     EntryType = iota // Name or type could not be read
	EntryTypeRegular                      // Regular file
	EntryTypeDirectory                    // Directory
	EntryTypeSymlink                      // Symbolic link
	EntryTypePipe                         // Named pipe (FIFO)
	EntryTypeSocket                       // Unix socket
	EntryTypeCharDevice                   // Character device
	EntryTypeBlockDevice                  // Block device
)

func (t EntryType) String() string {
	switch t {
	case EntryTypeRegular:
		return "regular"
	case EntryTypeDirectory:
		return "directory"
	case EntryTypeSymlink:
		return "symlink"
	case EntryTypePipe:
		return "pipe"
	case EntryTypeSocket:
		return "socket"
	case EntryTypeCharDevice:
		return "char-device"
	case EntryTypeBlockDevice:
		return "block-device"
	default:
		return "unknown"
	}
}
