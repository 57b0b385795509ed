package seer2arff

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReaderPassThrough(t *testing.T) {

	for _, name := range []string{"", "ascii", "utf8", "UTF-8"} {
		r, err := DecodeReader(strings.NewReader("040"), name)
		require.NoError(t, err, "encoding %q", name)

		b, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "040", string(b))
	}
}

func TestDecodeReaderLatin1(t *testing.T) {

	raw := strings.NewReader("Qu\xe9bec")

	r, err := DecodeReader(raw, "latin1")
	require.NoError(t, err)

	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Québec", string(b))
}

func TestDecodeReaderUnknownEncoding(t *testing.T) {

	_, err := DecodeReader(strings.NewReader(""), "ebcdic")
	assert.Error(t, err)
}
