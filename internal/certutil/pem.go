package certutil

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
)

const (
	pemHint     = "-----BEGIN"
	beginMarker = "-----BEGIN CERTIFICATE-----"
	endMarker   = "-----END CERTIFICATE-----"
)

// ErrNoPEMCertificate reports input that looks like PEM but contains no
// CERTIFICATE block.
var ErrNoPEMCertificate = errors.New("no PEM certificate found")

// ExtractDER returns the DER bytes of the first certificate in data.
//
// Data containing a -----BEGIN marker anywhere is treated as PEM: the first
// BEGIN/END CERTIFICATE pair is located, the body between the markers is
// stripped of all whitespace and base64-decoded. The base64 body may be
// wrapped at any width, or not at all. Data without the marker passes
// through unchanged as DER.
func ExtractDER(data []byte) ([]byte, error) {
	if !bytes.Contains(data, []byte(pemHint)) {
		return data, nil
	}
	begin := bytes.Index(data, []byte(beginMarker))
	if begin < 0 {
		return nil, ErrNoPEMCertificate
	}
	body := data[begin+len(beginMarker):]
	end := bytes.Index(body, []byte(endMarker))
	if end < 0 {
		return nil, ErrNoPEMCertificate
	}

	b64 := stripSpace(body[:end])
	der := make([]byte, base64.StdEncoding.DecodedLen(len(b64)))
	n, err := base64.StdEncoding.Decode(der, b64)
	if err != nil {
		return nil, fmt.Errorf("decode certificate body: %w", err)
	}
	return der[:n], nil
}

// LoadDER reads path and returns the contained certificate's DER bytes.
func LoadDER(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ExtractDER(data)
}

func stripSpace(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		switch c {
		case ' ', '\t', '\r', '\n':
		default:
			out = append(out, c)
		}
	}
	return out
}
