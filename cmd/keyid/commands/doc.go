// Package commands defines the keyid CLI.
//
// keyid takes a single certificate path (PEM or DER), computes the SHA-256
// digest of the certificate's DER bytes and prints the full 64-hex-char key
// id plus its 16-char short form. The short id is what device logs and the
// fleet inventory use to refer to a certificate.
//
// Exit codes: 0 on success, 2 for a malformed command line, 1 for any
// other failure.
package commands
