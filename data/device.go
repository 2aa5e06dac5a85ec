package data

import "fmt"

// DeviceID is the raw device identifier of a character or block device,
// as reported by the kernel in the st_rdev field of stat(2).
// A zero value means the identifier could not be read.
type DeviceID uint64

// Major returns the device major number (bits 8-15 of the raw identifier).
func (d DeviceID) Major() uint64 {
	return uint64(d>>8) & 0xff
}

// Minor returns the device minor number (bits 0-7 of the raw identifier).
func (d DeviceID) Minor() uint64 {
	return uint64(d) & 0xff
}

// String returns the identifier in the "major:minor" form used by ls -l.
func (d DeviceID) String() string {
	return fmt.Sprintf("%d:%d", d.Major(), d.Minor())
}
