package secpart

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Layout constants for the SPCF partition image. The byte layout is fixed:
// on-device readers parse it directly from flash.
const (
	FormatVersion byte = 1
	HeaderLen          = 5 // 4-byte magic + version byte
	PadByte       byte = 0xFF
)

// Magic identifies an SPCF partition image.
var Magic = [4]byte{'S', 'P', 'C', 'F'}

// TLV type codes, in the order entries appear in the image.
const (
	TypeCA   byte = 1
	TypeCert byte = 2
	TypeKey  byte = 3
)

// ErrImageTooLarge reports content that does not fit the declared
// partition size.
var ErrImageTooLarge = errors.New("tlv image larger than partition size")

// Image holds the blobs packed into a secure-cert partition. A nil or
// empty slot produces no TLV entry.
type Image struct {
	CA   []byte
	Cert []byte
	Key  []byte
}

// Build serializes the image and pads it with 0xFF to exactly size bytes.
// Entries are always emitted in type order CA, cert, key, regardless of how
// the caller obtained them. Content that exceeds size fails before any
// padding; a size below even the header length fails the same check.
func (img Image) Build(size int) ([]byte, error) {
	buf := make([]byte, 0, HeaderLen)
	buf = append(buf, Magic[:]...)
	buf = append(buf, FormatVersion)
	buf = appendEntry(buf, TypeCA, img.CA)
	buf = appendEntry(buf, TypeCert, img.Cert)
	buf = appendEntry(buf, TypeKey, img.Key)

	if len(buf) > size {
		return nil, fmt.Errorf("%w: %d bytes into %d", ErrImageTooLarge, len(buf), size)
	}

	padded := make([]byte, size)
	copy(padded, buf)
	for i := len(buf); i < size; i++ {
		padded[i] = PadByte
	}
	return padded, nil
}

func appendEntry(buf []byte, typ byte, data []byte) []byte {
	if len(data) == 0 {
		return buf
	}
	buf = append(buf, typ)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(data)))
	return append(buf, data...)
}
