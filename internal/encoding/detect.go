package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset is a text encoding a product sheet may arrive in.
type Charset string

const (
	UTF8        Charset = "UTF-8"
	UTF8BOM     Charset = "UTF-8 (BOM)"
	UTF16LE     Charset = "UTF-16LE"
	UTF16BE     Charset = "UTF-16BE"
	Windows1252 Charset = "windows-1252"
	ISO8859_15  Charset = "ISO-8859-15"
)

// sniffLen bounds how much of the input is inspected.
const sniffLen = 4096

// Detect guesses the charset of a sample. A byte order mark wins, then
// valid UTF-8, then chardet. Anything unrecognised is read as Windows-1252,
// which spreadsheet exports on Windows default to.
func Detect(sample []byte) Charset {
	switch {
	case bytes.HasPrefix(sample, []byte{0xEF, 0xBB, 0xBF}):
		return UTF8BOM
	case bytes.HasPrefix(sample, []byte{0xFF, 0xFE}):
		return UTF16LE
	case bytes.HasPrefix(sample, []byte{0xFE, 0xFF}):
		return UTF16BE
	case utf8.Valid(trimPartialRune(sample)):
		return UTF8
	}

	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil {
		return Windows1252
	}

	switch result.Charset {
	case "UTF-8":
		return UTF8
	case "ISO-8859-15":
		return ISO8859_15
	}

	return Windows1252
}

// trimPartialRune drops a multi-byte sequence cut off by the sample window.
func trimPartialRune(b []byte) []byte {
	for i := 1; i < utf8.UTFMax && i <= len(b); i++ {
		if utf8.RuneStart(b[len(b)-i]) {
			if !utf8.FullRune(b[len(b)-i:]) {
				return b[:len(b)-i]
			}

			break
		}
	}

	return b
}

func (c Charset) decoder() *encoding.Decoder {
	switch c {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	case Windows1252:
		return charmap.Windows1252.NewDecoder()
	case ISO8859_15:
		return charmap.ISO8859_15.NewDecoder()
	}

	return nil
}

// NewUTF8Reader returns a reader that yields r decoded to UTF-8, with any
// UTF-8 byte order mark removed.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffLen)

	sample, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("reading sample: %w", err)
	}

	charset := Detect(sample)
	slog.Debug("detected sheet charset", "charset", charset)

	if charset == UTF8BOM {
		_, _ = br.Discard(3)
		return br, nil
	}

	if dec := charset.decoder(); dec != nil {
		return transform.NewReader(br, dec), nil
	}

	return br, nil
}
