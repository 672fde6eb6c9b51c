// Package secpart builds and parses SPCF secure-cert partition images.
//
// An image is a fixed-size buffer laid out as:
//
//	offset 0   4 bytes  ASCII "SPCF" magic
//	offset 4   1 byte   format version (currently 1)
//	offset 5   0..3 TLV entries, each:
//	             1 byte   type (1=CA bundle, 2=client cert, 3=client key)
//	             4 bytes  payload length, little-endian unsigned
//	             N bytes  payload
//	rest       0xFF padding to the declared partition size
//
// Entries appear only for present blobs and always in type order 1, 2, 3.
// Build refuses content that overflows the declared size; Parse consumes
// entries until it reaches the padding run.
package secpart
