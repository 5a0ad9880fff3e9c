// Package container implements the R5V project file container format.
// A container is a 4-byte magic marker followed by a gzip stream of the
// UTF-8 document text. Files without the marker are treated as plain
// text written before the container format existed.
package container

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Magic identifies a compressed R5V project file: "R5VP".
var Magic = []byte{0x52, 0x35, 0x56, 0x50}

// MagicLen is the length of the magic marker in bytes.
const MagicLen = 4

// Sentinel errors for the codec. Failures wrap these so callers can
// classify with errors.Is while still seeing the underlying message.
var (
	// ErrCompression indicates the gzip stream failed to initialize,
	// accept writes, or finalize during Encode.
	ErrCompression = errors.New("compressing project content")

	// ErrDecompression indicates the gzip stream after the magic marker
	// is corrupt or truncated. No partial text is returned.
	ErrDecompression = errors.New("decompressing project content")

	// ErrEncoding indicates a plain (non-container) file is not valid UTF-8.
	ErrEncoding = errors.New("plain project file is not valid UTF-8")
)

// Sizes reports byte counts from an Encode call for caller diagnostics.
type Sizes struct {
	// Original is the pre-compression byte length of the document.
	Original int `json:"original_size"`

	// Compressed is the final blob length, magic marker included.
	Compressed int `json:"compressed_size"`
}

// Encode compresses text at maximum effort and prepends the magic marker.
// It always produces the container form; the plain form is read-only legacy.
func Encode(text string) ([]byte, Sizes, error) {
	var buf bytes.Buffer
	buf.Write(Magic)

	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, Sizes{}, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	if _, err := zw.Write([]byte(text)); err != nil {
		return nil, Sizes{}, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	if err := zw.Close(); err != nil {
		return nil, Sizes{}, fmt.Errorf("%w: %v", ErrCompression, err)
	}

	return buf.Bytes(), Sizes{Original: len(text), Compressed: buf.Len()}, nil
}

// IsContainer reports whether data starts with the container magic marker.
// A plain file that coincidentally starts with the marker is misdetected;
// Decode then fails deterministically rather than guessing.
func IsContainer(data []byte) bool {
	return len(data) >= MagicLen && bytes.Equal(data[:MagicLen], Magic)
}

// Decode detects the format of data and returns the document text along
// with whether the compressed path was taken. Byte sequences shorter than
// the marker always decode as plain text.
func Decode(data []byte) (string, bool, error) {
	if !IsContainer(data) {
		if !utf8.Valid(data) {
			return "", false, ErrEncoding
		}
		return string(data), false, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(data[MagicLen:]))
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrDecompression, err)
	}

	text, err := io.ReadAll(zr)
	if err != nil {
		_ = zr.Close()
		return "", false, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	if err := zr.Close(); err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	if !utf8.Valid(text) {
		return "", false, fmt.Errorf("%w: decompressed payload is not valid UTF-8", ErrDecompression)
	}

	return string(text), true, nil
}
