package container_test

import (
	"bytes"
	"compress/gzip"
	"strings"
	"testing"

	"github.com/jamesainslie/modkit/pkg/modkit/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"empty document", ""},
		{"single line", "hello world"},
		{"script source", "function Init()\n{\n    printt(\"loaded\")\n}\n"},
		{"multi-byte characters", "héllo wörld — 日本語テキスト 🎮"},
		{"repetitive content", strings.Repeat("entity spawn line\n", 10000)},
		{"large document", strings.Repeat("x", 4<<20)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			blob, sizes, err := container.Encode(tc.text)
			require.NoError(t, err)

			assert.Equal(t, len(tc.text), sizes.Original)
			assert.Equal(t, len(blob), sizes.Compressed)
			assert.True(t, container.IsContainer(blob))

			text, wasCompressed, err := container.Decode(blob)
			require.NoError(t, err)
			assert.True(t, wasCompressed)
			assert.Equal(t, tc.text, text)
		})
	}
}

func TestEncodeCompressesRepetitiveText(t *testing.T) {
	text := strings.Repeat("the same line over and over\n", 5000)

	blob, sizes, err := container.Encode(text)
	require.NoError(t, err)

	assert.Less(t, len(blob), len(text))
	assert.Equal(t, sizes.Compressed, len(blob))
}

func TestDecodePlainText(t *testing.T) {
	t.Run("plain file decodes via fallback path", func(t *testing.T) {
		text, wasCompressed, err := container.Decode([]byte("legacy project content"))
		require.NoError(t, err)
		assert.False(t, wasCompressed)
		assert.Equal(t, "legacy project content", text)
	})

	t.Run("shorter than magic marker", func(t *testing.T) {
		text, wasCompressed, err := container.Decode([]byte("R5"))
		require.NoError(t, err)
		assert.False(t, wasCompressed)
		assert.Equal(t, "R5", text)
	})

	t.Run("empty input", func(t *testing.T) {
		text, wasCompressed, err := container.Decode(nil)
		require.NoError(t, err)
		assert.False(t, wasCompressed)
		assert.Equal(t, "", text)
	})

	t.Run("invalid UTF-8 fails with encoding error", func(t *testing.T) {
		_, _, err := container.Decode([]byte{0xff, 0xfe, 0x00, 0x01, 0x02})
		require.Error(t, err)
		assert.ErrorIs(t, err, container.ErrEncoding)
	})
}

func TestDecodeCorruptStream(t *testing.T) {
	t.Run("garbage after magic marker", func(t *testing.T) {
		blob := append(append([]byte{}, container.Magic...), []byte("not a gzip stream")...)

		_, _, err := container.Decode(blob)
		require.Error(t, err)
		assert.ErrorIs(t, err, container.ErrDecompression)
	})

	t.Run("truncated stream", func(t *testing.T) {
		blob, _, err := container.Encode(strings.Repeat("payload\n", 1000))
		require.NoError(t, err)

		_, _, err = container.Decode(blob[:len(blob)-8])
		require.Error(t, err)
		assert.ErrorIs(t, err, container.ErrDecompression)
	})

	t.Run("payload that is not UTF-8", func(t *testing.T) {
		var buf bytes.Buffer
		buf.Write(container.Magic)
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte{0xff, 0xfe, 0xfd})
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		_, _, err = container.Decode(buf.Bytes())
		require.Error(t, err)
		assert.ErrorIs(t, err, container.ErrDecompression)
	})
}

// A plain file that coincidentally starts with the magic marker is
// misdetected as a container. Decode must fail deterministically rather
// than silently returning the raw bytes.
func TestDecodeMagicCollision(t *testing.T) {
	collision := []byte("R5VP happens to start a plain text file")
	require.True(t, container.IsContainer(collision))

	_, _, err := container.Decode(collision)
	require.Error(t, err)
	assert.ErrorIs(t, err, container.ErrDecompression)
}

func TestEncodeNeverProducesPlainForm(t *testing.T) {
	for _, text := range []string{"", "a", "already short"} {
		blob, _, err := container.Encode(text)
		require.NoError(t, err)
		assert.True(t, container.IsContainer(blob), "encode of %q must carry the marker", text)
	}
}
