// Package certutil loads certificate bytes and derives their key ids.
//
// Contents
//
//   - PEM/DER certificate loading (ExtractDER, LoadDER)
//   - SHA-256 key ids with a short display form (KeyID, ComputeKeyID)
//
// # Notes
//
// ExtractDER is intentionally a raw text scan rather than encoding/pem: the
// input contract accepts base64 bodies wrapped at any width (including a
// single unwrapped line), which the stricter PEM grammar rejects. The scan
// takes the first BEGIN/END CERTIFICATE pair and ignores any surrounding
// text, such as the human-readable dump openssl prepends to certificates.
package certutil
