package datafactory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_Length(t *testing.T) {
	for _, kind := range []StringKind{Alpha, Alphanumeric, Numeric} {
		got := String(kind, 15)
		assert.Len(t, got, 15, "kind %s", kind)
	}
}

func TestString_Numeric(t *testing.T) {
	got := String(Numeric, 20)
	for _, r := range got {
		assert.True(t, r >= '0' && r <= '9', "unexpected rune %q", r)
	}
}

func TestString_HTMLWrapsTag(t *testing.T) {
	got := String(HTML, 10)
	assert.True(t, strings.HasPrefix(got, "<"))
	assert.Contains(t, got, "</")
}

func TestString_ZeroLength(t *testing.T) {
	assert.Empty(t, String(Alpha, 0))
	assert.Empty(t, String(Alpha, -3))
}

func TestStringsList_DefaultsToAllKinds(t *testing.T) {
	got := StringsList(8)
	require.Len(t, got, 6)
	for _, s := range got {
		assert.NotEmpty(t, s)
	}
}

func TestValidDockerUpstreamNames_AreLowercase(t *testing.T) {
	for _, name := range ValidDockerUpstreamNames() {
		assert.Equal(t, strings.ToLower(name), name)
		assert.LessOrEqual(t, strings.Count(name, "/"), 1)
	}
}

func TestInvalidDockerUpstreamNames_ViolateRules(t *testing.T) {
	for _, name := range InvalidDockerUpstreamNames() {
		valid := name == strings.ToLower(name) &&
			!strings.Contains(name, " ") &&
			!strings.Contains(name, "^") &&
			!strings.Contains(name, "//") &&
			!strings.HasPrefix(name, "/") &&
			!strings.HasSuffix(name, "/") &&
			strings.Count(name, "/") <= 1
		assert.False(t, valid, "expected %q to violate naming rules", name)
	}
}
