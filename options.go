package qurecode

import (
	"fmt"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

// QR code versions range from 1 to 40; each version adds 4 modules per side.
const (
	minVersion = 1
	maxVersion = 40
)

// ErrorCorrectionLevel selects how much of the symbol can be damaged and
// still be readable, trading data capacity for redundancy.
type ErrorCorrectionLevel int

const (
	// LevelL recovers from ~7% damage and holds the most data.
	LevelL ErrorCorrectionLevel = iota
	// LevelM recovers from ~15% damage.
	LevelM
	// LevelQ recovers from ~25% damage.
	LevelQ
	// LevelH recovers from ~30% damage and holds the least data.
	LevelH
)

// String returns the conventional single-letter name of the level.
func (l ErrorCorrectionLevel) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	}
	return fmt.Sprintf("ErrorCorrectionLevel(%d)", int(l))
}

// recoveryLevel maps the level onto the codec's own constants. Unknown values
// fall back to LevelH, the package default.
func (l ErrorCorrectionLevel) recoveryLevel() qr.RecoveryLevel {
	switch l {
	case LevelL:
		return qr.Low
	case LevelM:
		return qr.Medium
	case LevelQ:
		return qr.High
	default:
		return qr.Highest
	}
}

// ParseErrorCorrectionLevel converts a single-letter level name ("l", "M", ...)
// into an ErrorCorrectionLevel. Case-insensitive.
func ParseErrorCorrectionLevel(s string) (ErrorCorrectionLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	}
	return 0, fmt.Errorf("unknown error correction level %q (want L, M, Q or H)", s)
}

// options configures encoding and rendering. A single set is shared by all
// entry points; each renderer reads only the fields it understands and
// ignores the rest, so options for another output mode are harmless.
type options struct {
	// minSize is the smallest QR version attempted by the encoder.
	// Default: 1
	minSize int

	// level is the error correction level requested from the codec.
	// Default: LevelH
	level ErrorCorrectionLevel

	// serialization converts non-string input into the encoded payload.
	// Default: SerializationJSON
	serialization Serialization

	// moduleScale is the side length in pixels of one module in raster output.
	// Default: 3
	moduleScale int

	// format names the raster output codec ("png", "jpeg", "gif").
	// Default: "png"
	format string

	// backgroundColor and foregroundColor are hex color strings used by both
	// the raster and HTML renderers.
	// Defaults: "#FFFFFF" / "#000000"
	backgroundColor string
	foregroundColor string

	// secondaryColor is the fill used for isolated dark modules in raster
	// output. Empty means "same as foregroundColor".
	// Default: ""
	secondaryColor string

	// prettify applies a median smoothing filter to the finished raster.
	// Default: false
	prettify bool

	// approxSizePx is the target total width of the HTML table in pixels.
	// Default: 200
	approxSizePx int

	// marginModules is accepted for compatibility with existing callers; the
	// HTML renderer does not currently emit margin cells.
	// Default: 4
	marginModules int
}

// Option is a functional option for configuring encoding and rendering.
type Option func(*options)

// WithMinSize sets the smallest QR version the encoder attempts. Values are
// clamped into the valid range [1, 40].
func WithMinSize(version int) Option {
	return func(o *options) {
		o.minSize = min(max(version, minVersion), maxVersion)
	}
}

// WithErrorCorrectionLevel sets the error correction level requested from
// the codec.
func WithErrorCorrectionLevel(level ErrorCorrectionLevel) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithSerialization selects how non-string input is converted to the encoded
// payload. It has no effect when the input is already a string.
func WithSerialization(s Serialization) Option {
	return func(o *options) {
		o.serialization = s
	}
}

// WithModuleScale sets the side length in pixels of one module in raster
// output. Values below 1 are ignored.
func WithModuleScale(pixels int) Option {
	return func(o *options) {
		if pixels >= 1 {
			o.moduleScale = pixels
		}
	}
}

// WithFormat names the raster output codec used by ImageBlob and the data
// URI helper: "png", "jpeg"/"jpg" or "gif".
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithBackgroundColor sets the light-module color as a hex string ("#FFFFFF").
// Applies to raster and HTML output.
func WithBackgroundColor(hex string) Option {
	return func(o *options) {
		o.backgroundColor = hex
	}
}

// WithForegroundColor sets the dark-module color as a hex string ("#000000").
// Applies to raster and HTML output.
func WithForegroundColor(hex string) Option {
	return func(o *options) {
		o.foregroundColor = hex
	}
}

// WithSecondaryColor sets the fill color for isolated dark modules in raster
// output. An isolated module is a dark module none of whose four orthogonal
// neighbors is dark.
func WithSecondaryColor(hex string) Option {
	return func(o *options) {
		o.secondaryColor = hex
	}
}

// WithPrettify applies a median smoothing filter to the finished raster,
// softening the hard module edges.
func WithPrettify() Option {
	return func(o *options) {
		o.prettify = true
	}
}

// WithApproxSize sets the target total width of the HTML table in pixels.
// The per-cell size is the integer quotient of this value and the module
// count, so the emitted table can be slightly narrower than requested.
func WithApproxSize(pixels int) Option {
	return func(o *options) {
		if pixels >= 1 {
			o.approxSizePx = pixels
		}
	}
}

// WithMargin sets the margin width in modules around the HTML table. The
// value is accepted for compatibility with existing callers but the current
// table renderer does not emit margin cells.
func WithMargin(modules int) Option {
	return func(o *options) {
		o.marginModules = modules
	}
}

// defaultOptions returns the default encoding and rendering configuration.
func defaultOptions() *options {
	return &options{
		minSize:         minVersion,
		level:           LevelH,
		serialization:   SerializationJSON,
		moduleScale:     3,
		format:          "png",
		backgroundColor: "#FFFFFF",
		foregroundColor: "#000000",
		secondaryColor:  "",
		prettify:        false,
		approxSizePx:    200,
		marginModules:   4,
	}
}

func applyOptions(opts ...Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}
