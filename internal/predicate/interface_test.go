package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLoopbackInterface(t *testing.T) {
	for _, v := range []string{"Loopback0", "lo0", "lo 0"} {
		ok, err := isLoopbackInterface(v)
		require.NoError(t, err)
		assert.True(t, ok, v)
	}
	ok, err := isLoopbackInterface("GigabitEthernet0/0")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsGigabitEthernet(t *testing.T) {
	ok, err := isGigabitEthernet("GigabitEthernet0/1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = isGigabitEthernet("Gi0/1.100")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsTenGigabitEthernet(t *testing.T) {
	ok, err := isTenGigabitEthernet("TenGigE0/0/0/1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsHundredGigabitEthernet(t *testing.T) {
	ok, err := isHundredGigabitEthernet("HundredGigE0/0/0/1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsBundleEthernet(t *testing.T) {
	ok, err := isBundleEthernet("Bundle-Ether100")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = isBundleEthernet("BE100")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsPortChannel(t *testing.T) {
	ok, err := isPortChannel("Port-channel1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = isPortChannel("po1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsFastEthernet(t *testing.T) {
	ok, err := isFastEthernet("FastEthernet0/1")
	require.NoError(t, err)
	assert.True(t, ok)
}
