package qurecode

import "errors"

// Errors that can be checked with errors.Is().
var (
	// ErrInvalidSerialization indicates the requested serialization strategy
	// is not one of the recognized set. Returned before any codec interaction.
	ErrInvalidSerialization = errors.New("invalid serialization option")

	// ErrDataTooLarge indicates no QR version up to the maximum (40) could
	// hold the payload at the requested error correction level.
	ErrDataTooLarge = errors.New("data too large to encode")

	// ErrUnsupportedFormat indicates the requested output image format is not
	// supported by the imaging backend.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)
