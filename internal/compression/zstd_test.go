package compression

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte(`{"invoices":[{"bindle":{"name":"my/bindle","version":"1.2.3"}}]}`), 64)

	compressed, err := Compress(data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(compressed, zstdMagic))
	assert.Less(t, len(compressed), len(data))

	out, err := Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDecompress_Passthrough(t *testing.T) {
	// No zstd frame header: returned unchanged.
	data := []byte(`{"invoices":[]}`)
	out, err := Decompress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDecompress_TruncatedFrame(t *testing.T) {
	data := []byte(`{"invoices":[]}`)
	compressed, err := Compress(data)
	require.NoError(t, err)

	_, err = Decompress(compressed[:len(compressed)/2])
	assert.Error(t, err)
}
