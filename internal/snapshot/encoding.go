package snapshot

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/sim-catalog/internal/errors"
)

// Encoding names a snapshot wire format
type Encoding string

const (
	// EncodingJSON is the self-describing text form, db.json
	EncodingJSON Encoding = "json"
	// EncodingBinary is the compact protobuf wire form, db.bin
	EncodingBinary Encoding = "binary"
)

// Content types served and recognized for each encoding
const (
	ContentTypeJSON   = "application/json"
	ContentTypeBinary = "application/x-protobuf"
)

// ParseEncoding accepts "json", "binary", "bin" or "pb"
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return EncodingJSON, nil
	case "binary", "bin", "pb", "proto", "protobuf":
		return EncodingBinary, nil
	default:
		return "", errors.InvalidArgumentf("unknown snapshot encoding %q", s)
	}
}

// Valid reports whether the encoding is one this package can decode
func (e Encoding) Valid() bool {
	return e == EncodingJSON || e == EncodingBinary
}

// Extension returns the conventional file extension
func (e Encoding) Extension() string {
	if e == EncodingBinary {
		return ".bin"
	}
	return ".json"
}

// ContentType returns the media type used over HTTP
func (e Encoding) ContentType() string {
	if e == EncodingBinary {
		return ContentTypeBinary
	}
	return ContentTypeJSON
}

// DetectEncoding guesses the encoding from a file name or URL path and an
// optional content type. The content type wins when both are present.
// The second result is false when neither says anything useful.
func DetectEncoding(name, contentType string) (Encoding, bool) {
	if contentType != "" {
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			switch {
			case mediaType == ContentTypeJSON, strings.HasSuffix(mediaType, "+json"):
				return EncodingJSON, true
			case mediaType == ContentTypeBinary,
				mediaType == "application/protobuf",
				mediaType == "application/octet-stream":
				return EncodingBinary, true
			}
		}
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return EncodingJSON, true
	case ".bin", ".pb":
		return EncodingBinary, true
	}
	return "", false
}
