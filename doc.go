// Package qurecode converts arbitrary data into QR codes rendered as ASCII
// art, HTML tables, or raster images.
//
// The package normalizes heterogeneous input into a string payload through a
// pluggable serialization strategy, finds the smallest QR version that can
// hold that payload at the requested error correction level, and maps the
// resulting module matrix onto the requested output mode with configurable
// styling. The QR symbol math itself is delegated to an external codec and
// the raster compositing to an external drawing library.
//
// # Features
//
// - ASCII, HTML table and raster (PNG/JPEG/GIF) output from one encoded symbol
// - Automatic smallest-version search with a configurable lower bound
// - JSON, XML, YAML, gob+base64 and plain-string payload serialization
// - Configurable colors, module scale and a highlight color for isolated modules
// - Optional median-filter smoothing of raster output
// - Base64 data URI output for direct HTML embedding
//
// # Usage
//
// Render a string to the terminal:
//
//	art, err := qurecode.EncodeToString("https://example.com")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(art)
//
// Write a styled PNG:
//
//	_, err := qurecode.EncodeToImageFile("https://example.com", "code.png",
//		qurecode.WithModuleScale(8),
//		qurecode.WithForegroundColor("#1A1A2E"),
//		qurecode.WithSecondaryColor("#E94560"),
//	)
//
// Encode structured data (serialized to JSON by default):
//
//	type Ticket struct {
//		ID    string `json:"id"`
//		Event string `json:"event"`
//	}
//
//	html, err := qurecode.EncodeToHTML(Ticket{ID: "t-42", Event: "gophercon"})
//
// Encode once, render many times:
//
//	code, err := qurecode.Encode("https://example.com")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(code.ASCII())
//	blob, err := code.ImageBlob(qurecode.WithFormat("jpeg"))
//
// Embed in a template:
//
//	uri, err := qurecode.EncodeToDataURI("https://example.com")
//	if err == nil {
//		fmt.Printf(`<img src="%s" alt="QR Code">`, uri)
//	}
//
// # Error Correction Levels
//
// Levels trade data capacity for damage tolerance: L recovers ~7% damage,
// M ~15%, Q ~25% and H ~30%. The package defaults to H, favoring scan
// reliability over capacity; pass WithErrorCorrectionLevel(qurecode.LevelL)
// for large payloads.
//
// # Version Search
//
// Encode probes versions upward from the configured minimum until the codec
// accepts the payload. A rejected version only means the payload does not
// fit that size; the error surfaced to the caller is ErrDataTooLarge, and
// only after version 40 has been rejected. The accepted version for a given
// payload, level and minimum is deterministic.
//
// # Concurrency
//
// Encoding is synchronous and a QRCode is immutable after construction, so
// distinct QRCode values can be encoded and rendered from concurrent
// goroutines without coordination.
package qurecode
