// Package commands defines the secpart CLI.
//
// Commands
//
//   - (root)   Build a fixed-size SPCF partition image from a CA bundle, a
//     client certificate and an optional client key
//   - inspect  Decode an existing image and list its TLV entries
//
// # Implementation
//
// The root command reads each input blob (file path or "-" for stdin),
// packs them through internal/secpart and writes the image atomically, so a
// failed run never leaves a partial file. The private-key blob is wiped
// from memory once the image is on disk. Flashing the image to the device
// is out of scope: the confirmation output reminds the operator that the
// flash offset comes from the device's partition table.
//
// Exit codes: 0 on success, 2 for a malformed command line, 1 for any
// other failure (unreadable input, image overflowing --size, write error).
package commands
