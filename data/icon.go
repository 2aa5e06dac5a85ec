package data

// Icon glyphs for each entry kind. Every glyph carries a U+FE0E variation
// selector to force text-style rendering in terminals that would otherwise
// substitute a colored emoji. The regular-file glyph pads with a trailing
// space because the base character renders narrow.
const (
	IconError       = "❓︎"      // unreadable entry
	IconFile        = "\U0001F5CE︎ " // regular file
	IconDirectory   = "\U0001F4C1︎"
	IconSymlink     = "\U0001F517︎"
	IconEmptyFile   = "⭕︎" // reserved
	IconSocket      = "\U0001F50C︎"
	IconPipe        = "\U0001F6B0︎"
	IconTextFile    = "\U0001F5D2︎" // reserved
	IconCharDevice  = "\U0001F5A8︎"
	IconBlockDevice = "\U0001F4BF︎"
	IconDisk        = "\U0001F5D4︎"
	IconDevNull     = "\U0001F6BD︎"
	IconTTY         = "\U0001F4BB︎"
)

// CharDeviceIcon selects the icon for a character device, giving a few
// well-known device identities their own glyph.
func CharDeviceIcon(dev DeviceID) string {
	major, minor := dev.Major(), dev.Minor()
	switch {
	case major == 1 && minor == 3: // /dev/null
		return IconDevNull
	case major == 4: // oldschool ttys
		return IconTTY
	case major == 5 && (minor == 0 || minor == 1): // /dev/tty, /dev/console
		return IconTTY
	case major == 241: // disks
		return IconDisk
	}
	return IconCharDevice
}
