package data

// NamePlaceholder is shown in place of an entry name or symlink target
// that could not be decoded as text. Surfacing the placeholder instead of
// dropping the entry guarantees visible evidence of every directory slot.
const NamePlaceholder = "???"

// ListingEntry represents one classified entry of a directory listing.
// Exactly one concrete type implements it per entry kind; the kind is
// exposed through Type for exhaustive handling at render time.
// Name and icon are fixed at construction and never change afterwards.
type ListingEntry interface {
	// Name returns the entry name, never empty.
	Name() string

	// Icon returns the display glyph chosen for this entry.
	Icon() string

	// Type returns the discriminant identifying the concrete kind.
	Type() EntryType
}

// orPlaceholder keeps the never-empty name invariant.
func orPlaceholder(name string) string {
	if name == "" {
		return NamePlaceholder
	}
	return name
}

// UnknownEntry stands in for a directory slot whose name or type could
// not be read.
type UnknownEntry struct {
	name string
	icon string
}

func NewUnknown(name string) *UnknownEntry {
	return &UnknownEntry{name: orPlaceholder(name), icon: IconError}
}

func (e *UnknownEntry) Name() string    { return e.name }
func (e *UnknownEntry) Icon() string    { return e.icon }
func (e *UnknownEntry) Type() EntryType { return EntryTypeUnknown }

// RegularEntry is a plain file.
type RegularEntry struct {
	name string
	icon string
}

func NewRegular(name string) *RegularEntry {
	return &RegularEntry{name: orPlaceholder(name), icon: IconFile}
}

func (e *RegularEntry) Name() string    { return e.name }
func (e *RegularEntry) Icon() string    { return e.icon }
func (e *RegularEntry) Type() EntryType { return EntryTypeRegular }

// DirectoryEntry is a subdirectory.
type DirectoryEntry struct {
	name string
	icon string
}

func NewDirectory(name string) *DirectoryEntry {
	return &DirectoryEntry{name: orPlaceholder(name), icon: IconDirectory}
}

func (e *DirectoryEntry) Name() string    { return e.name }
func (e *DirectoryEntry) Icon() string    { return e.icon }
func (e *DirectoryEntry) Type() EntryType { return EntryTypeDirectory }

// SymlinkEntry is a symbolic link together with its target text.
// The link is never followed; an unreadable or non-text target is kept
// as the placeholder.
type SymlinkEntry struct {
	name   string
	target string
	icon   string
}

func NewSymlink(name, target string) *SymlinkEntry {
	return &SymlinkEntry{
		name:   orPlaceholder(name),
		target: orPlaceholder(target),
		icon:   IconSymlink,
	}
}

func (e *SymlinkEntry) Name() string    { return e.name }
func (e *SymlinkEntry) Icon() string    { return e.icon }
func (e *SymlinkEntry) Type() EntryType { return EntryTypeSymlink }

// Target returns the link destination text.
func (e *SymlinkEntry) Target() string { return e.target }

// PipeEntry is a named pipe (FIFO).
type PipeEntry struct {
	name string
	icon string
}

func NewPipe(name string) *PipeEntry {
	return &PipeEntry{name: orPlaceholder(name), icon: IconPipe}
}

func (e *PipeEntry) Name() string    { return e.name }
func (e *PipeEntry) Icon() string    { return e.icon }
func (e *PipeEntry) Type() EntryType { return EntryTypePipe }

// SocketEntry is a Unix domain socket.
type SocketEntry struct {
	name string
	icon string
}

func NewSocket(name string) *SocketEntry {
	return &SocketEntry{name: orPlaceholder(name), icon: IconSocket}
}

func (e *SocketEntry) Name() string    { return e.name }
func (e *SocketEntry) Icon() string    { return e.icon }
func (e *SocketEntry) Type() EntryType { return EntryTypeSocket }

// CharDeviceEntry is a character device. Its icon depends on the device
// identifier, so both are fixed together at construction.
type CharDeviceEntry struct {
	name string
	dev  DeviceID
	icon string
}

func NewCharDevice(name string, dev DeviceID) *CharDeviceEntry {
	return &CharDeviceEntry{
		name: orPlaceholder(name),
		dev:  dev,
		icon: CharDeviceIcon(dev),
	}
}

func (e *CharDeviceEntry) Name() string    { return e.name }
func (e *CharDeviceEntry) Icon() string    { return e.icon }
func (e *CharDeviceEntry) Type() EntryType { return EntryTypeCharDevice }

// Device returns the raw device identifier, 0 when it could not be read.
func (e *CharDeviceEntry) Device() DeviceID { return e.dev }

// BlockDeviceEntry is a block device.
type BlockDeviceEntry struct {
	name string
	dev  DeviceID
	icon string
}

func NewBlockDevice(name string, dev DeviceID) *BlockDeviceEntry {
	return &BlockDeviceEntry{
		name: orPlaceholder(name),
		dev:  dev,
		icon: IconBlockDevice,
	}
}

func (e *BlockDeviceEntry) Name() string    { return e.name }
func (e *BlockDeviceEntry) Icon() string    { return e.icon }
func (e *BlockDeviceEntry) Type() EntryType { return EntryTypeBlockDevice }

// Device returns the raw device identifier, 0 when it could not be read.
func (e *BlockDeviceEntry) Device() DeviceID { return e.dev }
