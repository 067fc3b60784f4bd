package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Yeti-Media/qurecode"
)

func main() {
	outFile := flag.String("o", "", "output image file; empty prints ASCII art to stdout")
	asHTML := flag.Bool("html", false, "print an HTML table to stdout instead of ASCII art")
	levelName := flag.String("level", "h", "error correction level: l, m, q or h")
	minSize := flag.Int("min-size", 1, "smallest QR version to attempt (1-40)")
	scale := flag.Int("scale", 3, "pixels per module in image output")
	format := flag.String("format", "png", "image format for -o without extension: png, jpeg or gif")
	fg := flag.String("fg", "#000000", "foreground (dark module) color")
	bg := flag.String("bg", "#FFFFFF", "background color")
	accent := flag.String("accent", "", "color for isolated dark modules, defaults to -fg")
	prettify := flag.Bool("prettify", false, "smooth the image output with a median filter")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `qurecode -- QR code generator

Arguments except for flags are joined by " " and encoded as the QR payload.

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  qurecode "https://example.com"
  qurecode -o code.png -scale 8 -fg "#1A1A2E" "https://example.com"
  qurecode -html "https://example.com" > code.html
`)
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		fail(fmt.Errorf("no content given"))
	}
	content := strings.Join(flag.Args(), " ")

	level, err := qurecode.ParseErrorCorrectionLevel(*levelName)
	if err != nil {
		fail(err)
	}

	opts := []qurecode.Option{
		qurecode.WithErrorCorrectionLevel(level),
		qurecode.WithMinSize(*minSize),
		qurecode.WithModuleScale(*scale),
		qurecode.WithFormat(*format),
		qurecode.WithForegroundColor(*fg),
		qurecode.WithBackgroundColor(*bg),
	}
	if *accent != "" {
		opts = append(opts, qurecode.WithSecondaryColor(*accent))
	}
	if *prettify {
		opts = append(opts, qurecode.WithPrettify())
	}

	switch {
	case *outFile != "":
		if _, err := qurecode.EncodeToImageFile(content, *outFile, opts...); err != nil {
			fail(err)
		}
	case *asHTML:
		html, err := qurecode.EncodeToHTML(content, opts...)
		if err != nil {
			fail(err)
		}
		fmt.Println(html)
	default:
		art, err := qurecode.EncodeToString(content, opts...)
		if err != nil {
			fail(err)
		}
		fmt.Print(art)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
