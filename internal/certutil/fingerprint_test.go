package certutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"secprov/internal/certutil"
)

func TestComputeKeyID_KnownVector(t *testing.T) {
	// sha256("hello")
	id := certutil.ComputeKeyID([]byte("hello"))
	require.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		id.String())
}

func TestComputeKeyID_Deterministic(t *testing.T) {
	der := []byte{0x30, 0x82, 0x01, 0x0a, 0x02}
	require.Equal(t, certutil.ComputeKeyID(der), certutil.ComputeKeyID(der))
}

func TestKeyID_ShortIsPrefix(t *testing.T) {
	id := certutil.ComputeKeyID([]byte("some der bytes"))
	require.Len(t, id.String(), 64)
	require.Len(t, id.Short(), 16)
	require.True(t, strings.HasPrefix(id.String(), id.Short()))
}
