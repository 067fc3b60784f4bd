package qurecode_test

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yeti-Media/qurecode"
)

func TestASCII(t *testing.T) {
	t.Parallel()

	t.Run("grid is square and non-empty", func(t *testing.T) {
		t.Parallel()
		art, err := qurecode.EncodeToString("hello world",
			qurecode.WithMinSize(1),
			qurecode.WithErrorCorrectionLevel(qurecode.LevelH))
		require.NoError(t, err)
		require.NotEmpty(t, art)

		lines := strings.Split(strings.TrimRight(art, "\n"), "\n")
		for i, line := range lines {
			assert.Len(t, line, len(lines), "row %d should match the grid height", i)
		}
	})

	t.Run("parsing the grid back reproduces the matrix", func(t *testing.T) {
		t.Parallel()
		code, err := qurecode.Encode("hello world")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(code.ASCII(), "\n"), "\n")
		require.Len(t, lines, code.Height())

		matrix := code.Matrix()
		for r, line := range lines {
			for c := range line {
				assert.Equal(t, matrix[r][c], line[c] == 'X',
					"cell (%d,%d) classification should survive the round trip", r, c)
			}
		}
	})

	t.Run("Stringer output equals ASCII output", func(t *testing.T) {
		t.Parallel()
		code, err := qurecode.Encode("hello world")
		require.NoError(t, err)
		assert.Equal(t, code.ASCII(), code.String())
	})
}

func TestHTML(t *testing.T) {
	t.Parallel()

	t.Run("emits one cell per module with both colors inline", func(t *testing.T) {
		t.Parallel()
		code, err := qurecode.Encode("hello world")
		require.NoError(t, err)

		html := code.HTML()
		assert.True(t, strings.HasPrefix(html, "<table"))
		assert.True(t, strings.HasSuffix(html, "</table>"))
		assert.Equal(t, code.Width()*code.Height(), strings.Count(html, "<td"))
		assert.Equal(t, code.Height(), strings.Count(html, "<tr>"))
		assert.Contains(t, html, "#000000")
		assert.Contains(t, html, "#FFFFFF")
	})

	t.Run("cell size is the integer quotient of the approximate size", func(t *testing.T) {
		t.Parallel()
		code, err := qurecode.Encode("hello world")
		require.NoError(t, err)

		html := code.HTML(qurecode.WithApproxSize(200))
		cellPx := 200 / code.Width()
		assert.Contains(t, html, "width:"+strconv.Itoa(cellPx)+"px")
	})

	t.Run("custom colors replace the defaults", func(t *testing.T) {
		t.Parallel()
		code, err := qurecode.Encode("hello world")
		require.NoError(t, err)

		html := code.HTML(
			qurecode.WithForegroundColor("#112233"),
			qurecode.WithBackgroundColor("#AABBCC"))
		assert.Contains(t, html, "#112233")
		assert.Contains(t, html, "#AABBCC")
		assert.NotContains(t, html, "#000000")
	})

	t.Run("margin option does not change the emitted table", func(t *testing.T) {
		t.Parallel()
		code, err := qurecode.Encode("hello world")
		require.NoError(t, err)
		assert.Equal(t, code.HTML(), code.HTML(qurecode.WithMargin(10)))
	})

	t.Run("rendering twice is byte-identical", func(t *testing.T) {
		t.Parallel()
		code, err := qurecode.Encode("hello world")
		require.NoError(t, err)
		assert.Equal(t, code.HTML(), code.HTML())
	})
}

func TestImage(t *testing.T) {
	t.Parallel()

	t.Run("canvas side is module count times scale", func(t *testing.T) {
		t.Parallel()
		code, err := qurecode.Encode("hello world")
		require.NoError(t, err)

		img := code.Image(qurecode.WithModuleScale(4))
		assert.Equal(t, code.Width()*4, img.Bounds().Dx())
		assert.Equal(t, code.Height()*4, img.Bounds().Dy())
	})

	t.Run("pixels agree with the matrix classification", func(t *testing.T) {
		t.Parallel()
		code, err := qurecode.Encode("hello world")
		require.NoError(t, err)

		img := code.Image(qurecode.WithModuleScale(1))
		for r, row := range code.Matrix() {
			for c, dark := range row {
				got := color.RGBAModel.Convert(img.At(c, r)).(color.RGBA)
				if dark {
					assert.Equal(t, uint8(0), got.R, "cell (%d,%d) should be dark", r, c)
				} else {
					assert.Equal(t, uint8(255), got.R, "cell (%d,%d) should be light", r, c)
				}
			}
		}
	})

	t.Run("prettified image keeps the canvas bounds", func(t *testing.T) {
		t.Parallel()
		code, err := qurecode.Encode("hello world")
		require.NoError(t, err)

		img := code.Image(qurecode.WithPrettify())
		assert.Equal(t, code.Width()*3, img.Bounds().Dx())
	})
}

func TestImageBlob(t *testing.T) {
	t.Parallel()

	t.Run("default blob decodes as PNG", func(t *testing.T) {
		t.Parallel()
		code, err := qurecode.Encode("hello world")
		require.NoError(t, err)

		blob, err := code.ImageBlob()
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(blob))
		require.NoError(t, err)
		assert.Equal(t, code.Width()*3, img.Bounds().Dx())
	})

	t.Run("rendering twice is byte-identical", func(t *testing.T) {
		t.Parallel()
		code, err := qurecode.Encode("hello world")
		require.NoError(t, err)

		first, err := code.ImageBlob()
		require.NoError(t, err)
		second, err := code.ImageBlob()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		t.Parallel()
		code, err := qurecode.Encode("hello world")
		require.NoError(t, err)

		blob, err := code.ImageBlob(qurecode.WithFormat("webp"))
		require.ErrorIs(t, err, qurecode.ErrUnsupportedFormat)
		assert.Nil(t, blob)
	})
}

func TestImageFile(t *testing.T) {
	t.Parallel()

	t.Run("writes a decodable file and returns the image", func(t *testing.T) {
		t.Parallel()
		code, err := qurecode.Encode("hello world")
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "code.png")
		img, err := code.ImageFile(path)
		require.NoError(t, err)
		require.NotNil(t, img)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		decoded, err := png.Decode(f)
		require.NoError(t, err)
		assert.Equal(t, img.Bounds(), decoded.Bounds())
	})

	t.Run("unsupported extension is rejected", func(t *testing.T) {
		t.Parallel()
		code, err := qurecode.Encode("hello world")
		require.NoError(t, err)

		_, err = code.ImageFile(filepath.Join(t.TempDir(), "code.webp"))
		assert.ErrorIs(t, err, qurecode.ErrUnsupportedFormat)
	})

	t.Run("write failure surfaces the platform error", func(t *testing.T) {
		t.Parallel()
		code, err := qurecode.Encode("hello world")
		require.NoError(t, err)

		_, err = code.ImageFile(filepath.Join(t.TempDir(), "missing", "code.png"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDataURI(t *testing.T) {
	t.Parallel()

	code, err := qurecode.Encode("hello world")
	require.NoError(t, err)

	uri, err := code.DataURI()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	uri, err = code.DataURI(qurecode.WithFormat("jpg"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
}

func TestEncodeToEntryPoints(t *testing.T) {
	t.Parallel()

	t.Run("all entry points fail the same way on oversized input", func(t *testing.T) {
		t.Parallel()
		huge := strings.Repeat("x", 8000)

		_, err := qurecode.EncodeToString(huge)
		assert.ErrorIs(t, err, qurecode.ErrDataTooLarge)
		_, err = qurecode.EncodeToHTML(huge)
		assert.ErrorIs(t, err, qurecode.ErrDataTooLarge)
		_, err = qurecode.EncodeToImage(huge)
		assert.ErrorIs(t, err, qurecode.ErrDataTooLarge)
		_, err = qurecode.EncodeToImageBlob(huge)
		assert.ErrorIs(t, err, qurecode.ErrDataTooLarge)
		_, err = qurecode.EncodeToImageFile(huge, filepath.Join(t.TempDir(), "never.png"))
		assert.ErrorIs(t, err, qurecode.ErrDataTooLarge)
		_, err = qurecode.EncodeToDataURI(huge)
		assert.ErrorIs(t, err, qurecode.ErrDataTooLarge)
	})

	t.Run("image entry point renders the encoded symbol", func(t *testing.T) {
		t.Parallel()
		img, err := qurecode.EncodeToImage("hello world", qurecode.WithModuleScale(2))
		require.NoError(t, err)

		code, err := qurecode.Encode("hello world")
		require.NoError(t, err)
		assert.Equal(t, code.Width()*2, img.Bounds().Dx())
	})
}
