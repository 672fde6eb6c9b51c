package secpart

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// Parse errors.
var (
	ErrBadMagic  = errors.New("bad magic")
	ErrTruncated = errors.New("truncated image")
)

// Entry is one decoded TLV record.
type Entry struct {
	Type  byte
	Value []byte
}

// Parse decodes an SPCF image and returns its version byte and TLV entries
// in encounter order. Decoding stops at the 0xFF padding run or at a
// zero-length entry, both of which on-device readers treat as the end of
// content. Unknown type codes are returned as-is; entry payloads are copies
// and do not alias buf. The version byte is reported, not validated,
// matching the device reader which only checks the magic.
func Parse(buf []byte) (version byte, entries []Entry, err error) {
	if len(buf) < HeaderLen {
		return 0, nil, ErrTruncated
	}
	if !bytes.Equal(buf[:4], Magic[:]) {
		return 0, nil, ErrBadMagic
	}
	version = buf[4]

	i := HeaderLen
	for i < len(buf) {
		typ := buf[i]
		if typ == PadByte {
			break
		}
		if i+5 > len(buf) {
			return version, nil, ErrTruncated
		}
		length := int(binary.LittleEndian.Uint32(buf[i+1 : i+5]))
		if length == 0 {
			break
		}
		i += 5
		if length > len(buf)-i {
			return version, nil, ErrTruncated
		}
		entries = append(entries, Entry{
			Type:  typ,
			Value: append([]byte(nil), buf[i:i+length]...),
		})
		i += length
	}
	return version, entries, nil
}
