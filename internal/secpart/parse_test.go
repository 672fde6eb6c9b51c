package secpart_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"secprov/internal/secpart"
)

func TestParse_RoundTrip(t *testing.T) {
	img := secpart.Image{
		CA:   fill(100, 0x11),
		Cert: fill(200, 0x22),
		Key:  fill(50, 0x33),
	}
	buf, err := img.Build(1024)
	require.NoError(t, err)

	version, entries, err := secpart.Parse(buf)
	require.NoError(t, err)
	require.Equal(t, secpart.FormatVersion, version)
	require.Len(t, entries, 3)
	require.Equal(t, img.CA, entries[0].Value)
	require.Equal(t, img.Cert, entries[1].Value)
	require.Equal(t, img.Key, entries[2].Value)
}

func TestParse_AbsentTypesYieldNoEntries(t *testing.T) {
	buf, err := secpart.Image{Cert: fill(40, 0x22)}.Build(128)
	require.NoError(t, err)

	_, entries, err := secpart.Parse(buf)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, secpart.TypeCert, entries[0].Type)
}

func TestParse_BadMagic(t *testing.T) {
	buf := append([]byte("NOPE"), 1)
	_, _, err := secpart.Parse(buf)
	require.ErrorIs(t, err, secpart.ErrBadMagic)
}

func TestParse_ShorterThanHeader(t *testing.T) {
	_, _, err := secpart.Parse([]byte("SPC"))
	require.ErrorIs(t, err, secpart.ErrTruncated)
}

func TestParse_TruncatedEntry(t *testing.T) {
	// Entry claims 100 payload bytes but only 2 follow.
	buf := []byte{'S', 'P', 'C', 'F', 1, secpart.TypeCA, 100, 0, 0, 0, 0xAB, 0xCD}
	_, _, err := secpart.Parse(buf)
	require.ErrorIs(t, err, secpart.ErrTruncated)
}

func TestParse_UnknownTypeKept(t *testing.T) {
	buf := []byte{'S', 'P', 'C', 'F', 1, 9, 2, 0, 0, 0, 0xAB, 0xCD, 0xFF, 0xFF}
	_, entries, err := secpart.Parse(buf)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, byte(9), entries[0].Type)
	require.Equal(t, []byte{0xAB, 0xCD}, entries[0].Value)
}

func TestParse_ZeroLengthEndsContent(t *testing.T) {
	buf := []byte{'S', 'P', 'C', 'F', 1, secpart.TypeCA, 0, 0, 0, 0, 0xAA, 0xBB}
	_, entries, err := secpart.Parse(buf)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestParse_EntriesDoNotAliasInput(t *testing.T) {
	buf, err := secpart.Image{CA: fill(8, 0x11)}.Build(32)
	require.NoError(t, err)

	_, entries, err := secpart.Parse(buf)
	require.NoError(t, err)

	buf[10] = 0x99
	require.Equal(t, fill(8, 0x11), entries[0].Value)
}
