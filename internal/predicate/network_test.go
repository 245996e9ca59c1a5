package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsIPAddress(t *testing.T) {
	cases := []struct {
		addr string
		want bool
	}{
		{"192.168.1.1", true},
		{"10.0.0.1/24", true},
		{"fe80::1", true},
		{"fe80::1%eth0", false},
		{"fe80::1/129", false},
		{"not-an-ip", false},
		{"999.999.999.999", false},
	}
	for _, c := range cases {
		ok, err := isIPAddress(c.addr)
		require.NoError(t, err)
		assert.Equal(t, c.want, ok, c.addr)
	}
}

func TestIsIPv4Address(t *testing.T) {
	ok, err := isIPv4Address("192.168.1.1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = isIPv4Address("fe80::1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsIPv6Address(t *testing.T) {
	ok, err := isIPv6Address("fe80::1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = isIPv6Address("192.168.1.1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNormalizeDottedQuadOctal(t *testing.T) {
	got, ok := normalizeDottedQuad("012.034.056.071")
	require.True(t, ok)
	assert.NotEmpty(t, got)
}

func TestNormalizeDottedQuadHex(t *testing.T) {
	got, ok := normalizeDottedQuad("0a.0b.0c.0d")
	require.True(t, ok)
	assert.Equal(t, "10.11.12.13", got)
}

func TestIsMACAddressColonForm(t *testing.T) {
	ok, err := isMACAddress("aa:bb:cc:dd:ee:ff")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsMACAddressDashForm(t *testing.T) {
	ok, err := isMACAddress("AA-BB-CC-DD-EE-FF")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsMACAddressDottedQuadForm(t *testing.T) {
	ok, err := isMACAddress("aabb.ccdd.eeff")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsMACAddressMixedSeparatorRejected(t *testing.T) {
	ok, err := isMACAddress("aa:bb-cc:dd:ee:ff")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsMACAddressNotAMac(t *testing.T) {
	ok, err := isMACAddress("not a mac")
	require.NoError(t, err)
	assert.False(t, ok)
}
