package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	caPath   string
	certPath string
	keyPath  string
	outPath  string
	size     int
)

// ErrUsage is returned for a malformed command line; main maps it to
// exit code 2.
var ErrUsage = errors.New(
	"usage: secpart --ca <path> --cert <path> [--key <path>] [--out <path>] [--size <bytes>]")

func Execute() error {
	root := &cobra.Command{
		Use:          "secpart",
		Short:        "Pack certificate material into a secure-cert partition image",
		SilenceUsage: true,
		RunE:         runBuild,
	}

	root.Flags().StringVar(&caPath, "ca", "", "CA bundle path, or - for stdin")
	root.Flags().StringVar(&certPath, "cert", "", "client certificate path, or - for stdin")
	root.Flags().StringVar(&keyPath, "key", "", "client private key path, or - for stdin")
	root.Flags().StringVar(&outPath, "out", "esp_secure_cert.bin", "output image path")
	root.Flags().IntVar(&size, "size", 0x4000, "partition size in bytes")

	root.AddCommand(inspectCmd())
	return root.Execute()
}
