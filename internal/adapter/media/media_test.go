package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_NoCredentials(t *testing.T) {
	u, err := Setup("", "", "")
	require.NoError(t, err)

	assert.False(t, u.Enabled())
	assert.Empty(t, u.CloudName())
	assert.Nil(t, u.SDK())
}

func TestSetup_WithCredentials(t *testing.T) {
	u, err := Setup("demo", "key", "secret")
	require.NoError(t, err)

	assert.True(t, u.Enabled())
	assert.Equal(t, "demo", u.CloudName())
	require.NotNil(t, u.SDK())
	assert.True(t, u.SDK().Config.URL.Secure)
}
