package qurecode

import (
	"fmt"
	"image"

	qr "github.com/skip2/go-qrcode"
)

// QRCode is an encoded QR symbol. The module matrix is produced once during
// Encode and never mutated afterwards, so a QRCode can be rendered any number
// of times, with different options, from any number of goroutines.
type QRCode struct {
	source  any
	payload string
	matrix  [][]bool
	version int
	level   ErrorCorrectionLevel
}

// Encode normalizes data into a string payload and finds the smallest QR
// version that can hold it at the requested error correction level.
//
// String input is encoded verbatim; anything else is first converted using
// the configured serialization strategy (JSON by default):
//
//	code, err := qurecode.Encode("https://example.com")
//	code, err := qurecode.Encode(user, qurecode.WithSerialization(qurecode.SerializationYAML))
//
// The search starts at the configured minimum version and walks upward; a
// version the codec rejects simply means the payload does not fit yet, so
// the next size is tried. Only exhausting all 40 versions is an error,
// reported as ErrDataTooLarge.
func Encode(data any, opts ...Option) (*QRCode, error) {
	o := applyOptions(opts...)

	payload, err := serializePayload(data, o.serialization)
	if err != nil {
		return nil, err
	}

	level := o.level.recoveryLevel()
	for version := o.minSize; version <= maxVersion; version++ {
		code, err := qr.NewWithForcedVersion(payload, version, level)
		if err != nil {
			// Payload does not fit this version; try the next size up.
			continue
		}
		code.DisableBorder = true
		return &QRCode{
			source:  data,
			payload: payload,
			matrix:  code.Bitmap(),
			version: version,
			level:   o.level,
		}, nil
	}

	return nil, fmt.Errorf("%w: %d byte payload exceeds version %d capacity at level %s",
		ErrDataTooLarge, len(payload), maxVersion, o.level)
}

// Source returns the original input value, untouched by encoding.
func (q *QRCode) Source() any { return q.source }

// Payload returns the string that was actually encoded.
func (q *QRCode) Payload() string { return q.payload }

// Version returns the accepted QR version, 1..40.
func (q *QRCode) Version() int { return q.version }

// Level returns the error correction level the symbol was encoded at.
func (q *QRCode) Level() ErrorCorrectionLevel { return q.level }

// Width returns the module count per side.
func (q *QRCode) Width() int { return len(q.matrix) }

// Height returns the module count per side. QR symbols are square, so this
// always equals Width.
func (q *QRCode) Height() int { return len(q.matrix) }

// Matrix returns a copy of the module grid, row-major, true for dark.
func (q *QRCode) Matrix() [][]bool {
	m := make([][]bool, len(q.matrix))
	for i, row := range q.matrix {
		m[i] = make([]bool, len(row))
		copy(m[i], row)
	}
	return m
}

// EncodeToString encodes data and renders it as an ASCII-art grid.
func EncodeToString(data any, opts ...Option) (string, error) {
	code, err := Encode(data, opts...)
	if err != nil {
		return "", err
	}
	return code.ASCII(), nil
}

// EncodeToHTML encodes data and renders it as a self-contained HTML table.
func EncodeToHTML(data any, opts ...Option) (string, error) {
	code, err := Encode(data, opts...)
	if err != nil {
		return "", err
	}
	return code.HTML(opts...), nil
}

// EncodeToImage encodes data and renders it as an in-memory raster image.
func EncodeToImage(data any, opts ...Option) (image.Image, error) {
	code, err := Encode(data, opts...)
	if err != nil {
		return nil, err
	}
	return code.Image(opts...), nil
}

// EncodeToImageBlob encodes data and renders it as image bytes in the
// configured format (PNG by default).
func EncodeToImageBlob(data any, opts ...Option) ([]byte, error) {
	code, err := Encode(data, opts...)
	if err != nil {
		return nil, err
	}
	return code.ImageBlob(opts...)
}

// EncodeToImageFile encodes data, writes the rendered image to filename and
// returns the image. The output format is inferred from the file extension,
// falling back to the format option.
func EncodeToImageFile(data any, filename string, opts ...Option) (image.Image, error) {
	code, err := Encode(data, opts...)
	if err != nil {
		return nil, err
	}
	return code.ImageFile(filename, opts...)
}

// EncodeToDataURI encodes data and renders it as a base64 data URI suitable
// for direct embedding in an HTML img tag.
func EncodeToDataURI(data any, opts ...Option) (string, error) {
	code, err := Encode(data, opts...)
	if err != nil {
		return "", err
	}
	return code.DataURI(opts...)
}
