package qurecode

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/effect"
	"github.com/fogleman/gg"
)

// medianFilterSize is the kernel size of the smoothing filter applied when
// prettify is enabled.
const medianFilterSize = 3

// Image renders the symbol as an in-memory raster: one filled square of
// moduleScale pixels per module on a moduleScale*Width canvas. Dark modules
// are drawn in the foreground color, except isolated ones, which use the
// secondary color when one is configured. With prettify enabled, the
// finished canvas is passed through a median filter that rounds off the
// hard module edges.
//
// Rendering cannot fail given a successfully encoded QRCode; the returned
// image is owned by the caller.
func (q *QRCode) Image(opts ...Option) image.Image {
	o := applyOptions(opts...)

	secondary := o.secondaryColor
	if secondary == "" {
		secondary = o.foregroundColor
	}

	scale := o.moduleScale
	dc := gg.NewContext(q.Width()*scale, q.Height()*scale)
	dc.SetHexColor(o.backgroundColor)
	dc.Clear()

	for r, row := range q.matrix {
		for c, dark := range row {
			if !dark {
				continue
			}
			if q.isolated(r, c) {
				dc.SetHexColor(secondary)
			} else {
				dc.SetHexColor(o.foregroundColor)
			}
			dc.DrawRectangle(float64(c*scale), float64(r*scale), float64(scale), float64(scale))
			dc.Fill()
		}
	}

	img := dc.Image()
	if o.prettify {
		return effect.Median(img, medianFilterSize)
	}
	return img
}

// isolated reports whether the dark module at (r, c) has no dark orthogonal
// neighbor. Diagonals are not considered, and positions beyond the matrix
// edge never count as dark, so corner and edge modules can still qualify.
func (q *QRCode) isolated(r, c int) bool {
	if r > 0 && q.matrix[r-1][c] {
		return false
	}
	if r < len(q.matrix)-1 && q.matrix[r+1][c] {
		return false
	}
	if c > 0 && q.matrix[r][c-1] {
		return false
	}
	if c < len(q.matrix[r])-1 && q.matrix[r][c+1] {
		return false
	}
	return true
}

// ImageBlob renders the symbol and serializes it with the codec named by the
// format option. Supported formats are "png" (default), "jpeg"/"jpg" and
// "gif"; anything else returns ErrUnsupportedFormat.
func (q *QRCode) ImageBlob(opts ...Option) ([]byte, error) {
	o := applyOptions(opts...)

	var buf bytes.Buffer
	if err := encodeImage(&buf, q.Image(opts...), o.format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ImageFile renders the symbol, writes it to filename and returns the
// rendered image. The output format is inferred from the file extension,
// falling back to the format option when the name has none. Write failures
// surface the underlying platform error; the QRCode itself stays valid for
// another attempt.
func (q *QRCode) ImageFile(filename string, opts ...Option) (image.Image, error) {
	o := applyOptions(opts...)

	format := strings.TrimPrefix(filepath.Ext(filename), ".")
	if format == "" {
		format = o.format
	}

	img := q.Image(opts...)

	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", filename, err)
	}
	if err := encodeImage(f, img, format); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close %s: %w", filename, err)
	}
	return img, nil
}

// DataURI renders the symbol and returns it as a base64 data URI
// ("data:image/png;base64,...") for direct embedding in an HTML img tag.
func (q *QRCode) DataURI(opts ...Option) (string, error) {
	o := applyOptions(opts...)

	blob, err := q.ImageBlob(opts...)
	if err != nil {
		return "", err
	}

	format := strings.ToLower(o.format)
	if format == "jpg" {
		format = "jpeg"
	}
	return "data:image/" + format + ";base64," + base64.StdEncoding.EncodeToString(blob), nil
}

func encodeImage(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "jpeg", "jpg":
		return jpeg.Encode(w, img, nil)
	case "gif":
		return gif.Encode(w, img, nil)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
