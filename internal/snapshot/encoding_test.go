package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/sim-catalog/internal/snapshot"
)

func TestParseEncoding(t *testing.T) {
	testCases := []struct {
		in      string
		want    snapshot.Encoding
		wantErr bool
	}{
		{in: "json", want: snapshot.EncodingJSON},
		{in: " JSON ", want: snapshot.EncodingJSON},
		{in: "binary", want: snapshot.EncodingBinary},
		{in: "bin", want: snapshot.EncodingBinary},
		{in: "pb", want: snapshot.EncodingBinary},
		{in: "yaml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := snapshot.ParseEncoding(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDetectEncoding(t *testing.T) {
	testCases := []struct {
		name        string
		path        string
		contentType string
		want        snapshot.Encoding
		ok          bool
	}{
		{name: "json extension", path: "/assets/database/db.json", want: snapshot.EncodingJSON, ok: true},
		{name: "bin extension", path: "db.bin", want: snapshot.EncodingBinary, ok: true},
		{name: "content type wins", path: "db.json", contentType: "application/x-protobuf", want: snapshot.EncodingBinary, ok: true},
		{name: "json with charset", path: "db", contentType: "application/json; charset=utf-8", want: snapshot.EncodingJSON, ok: true},
		{name: "octet stream", path: "db", contentType: "application/octet-stream", want: snapshot.EncodingBinary, ok: true},
		{name: "unknown content type falls back to path", path: "db.bin", contentType: "text/plain", want: snapshot.EncodingBinary, ok: true},
		{name: "nothing to go on", path: "db", contentType: "text/plain"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := snapshot.DetectEncoding(tc.path, tc.contentType)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodingAttributes(t *testing.T) {
	assert.Equal(t, ".bin", snapshot.EncodingBinary.Extension())
	assert.Equal(t, ".json", snapshot.EncodingJSON.Extension())
	assert.Equal(t, snapshot.ContentTypeBinary, snapshot.EncodingBinary.ContentType())
	assert.True(t, snapshot.EncodingJSON.Valid())
	assert.False(t, snapshot.Encoding("xml").Valid())
}
