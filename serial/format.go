package serial

// Magic is the fixed 4-byte ASCII marker that opens every SXBP buffer.
const Magic = "SXBP"

// VersionMajor, VersionMinor, VersionPatch are the 3 unsigned version bytes
// this implementation writes, and the major version it accepts on load.
const (
	VersionMajor byte = 1
	VersionMinor byte = 0
	VersionPatch byte = 0
)

// headerSize is Magic (4) + version (3) + segment count (4).
const headerSize = 4 + 3 + 4

// recordSize is one packed direction+length record: 4 bytes, big-endian,
// high 2 bits direction (UP=0..LEFT=3), low 30 bits length.
const recordSize = 4

// maxLength is the largest value the 30-bit length field can hold.
const maxLength = 1<<30 - 1
