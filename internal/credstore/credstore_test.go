package credstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestSaveLoadDelete(t *testing.T) {
	keyring.MockInit()
	const id = "0123456789abcdef0123456789abcdef"

	_, err := Load(id)
	assert.ErrorIs(t, err, ErrNoSecret)

	require.NoError(t, Save(id, "AbCdEfGhIjKlMnOpQrStUvWxYz012345"))
	got, err := Load(id)
	require.NoError(t, err)
	assert.Equal(t, "AbCdEfGhIjKlMnOpQrStUvWxYz012345", got)

	require.NoError(t, Delete(id))
	_, err = Load(id)
	assert.ErrorIs(t, err, ErrNoSecret)

	assert.NoError(t, Delete(id))
	assert.Error(t, Save("", "x"))
}
