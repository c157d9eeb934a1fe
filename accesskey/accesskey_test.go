package accesskey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	plain, digest, err := Generate()
	require.NoError(t, err)

	assert.Len(t, plain, Length)
	assert.NotEqual(t, plain, digest)
	assert.Equal(t, Digest(plain), digest)

	plain2, _, err := Generate()
	require.NoError(t, err)
	assert.NotEqual(t, plain, plain2)
}
