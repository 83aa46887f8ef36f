package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestChainKeyring_PrefersEnvironment(t *testing.T) {
	keyring.MockInit()
	t.Setenv(EnvKey, "from-env")

	k := NewKeyring()
	require.NoError(t, k.SetKey("from-keyring"))

	key, err := k.GetKey()
	require.NoError(t, err)
	assert.Equal(t, "from-env", key)
}

func TestChainKeyring_FallsBackToSystem(t *testing.T) {
	keyring.MockInit()
	t.Setenv(EnvKey, "")

	k := NewKeyring()
	_, err := k.GetKey()
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, k.SetKey("secret"))
	key, err := k.GetKey()
	require.NoError(t, err)
	assert.Equal(t, "secret", key)

	require.NoError(t, k.DeleteKey())
	_, err = k.GetKey()
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestChainKeyring_RejectsEmptyPassword(t *testing.T) {
	keyring.MockInit()
	assert.Error(t, NewKeyring().SetKey(""))
}
