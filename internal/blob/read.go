package blob

import (
	"io"
	"os"
)

// Read returns the contents of path. The path "-" reads standard input
// until EOF, so blobs can be piped in from a secrets manager without
// touching disk.
func Read(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
