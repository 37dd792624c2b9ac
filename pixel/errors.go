package pixel

import "github.com/pkg/errors"

var (
	// ErrInvalidFormat is returned when a Format is built from an
	// element sequence that does not describe a whole number of bytes,
	// contains unknown elements, or has gaps.
	ErrInvalidFormat = errors.New("invalid pixel format")

	// ErrUnsupportedFormat is returned when a valid Format has no
	// concrete layout that the conversion engine can read or write.
	ErrUnsupportedFormat = errors.New("unsupported pixel format")

	// ErrLengthMismatch is returned by a Converter when the buffers it
	// is given do not hold the same whole number of pixels.
	ErrLengthMismatch = errors.New("pixel buffer length mismatch")

	// ErrOverlap is returned by a Converter when the source and
	// destination of a cross-format conversion share memory.
	ErrOverlap = errors.New("overlapping pixel buffers")
)
