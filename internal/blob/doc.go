// Package blob reads input blobs and writes output files for the
// provisioning tools.
//
// Reads accept a file path or "-" for standard input. Writes go through a
// temp file and rename, so an interrupted or failed run never leaves a
// partial output behind.
package blob
