package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"secprov/internal/certutil"
)

// ErrUsage is returned for a malformed command line; main maps it to
// exit code 2.
var ErrUsage = errors.New("usage: keyid <cert-path>")

func Execute() error {
	root := &cobra.Command{
		Use:          "keyid <cert-path>",
		Short:        "Print the SHA-256 key id of a PEM or DER certificate",
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return ErrUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			der, err := certutil.LoadDER(args[0])
			if err != nil {
				return err
			}
			id := certutil.ComputeKeyID(der)
			fmt.Printf("keyid: %s\n", id)
			fmt.Printf("short: %s\n", id.Short())
			return nil
		},
	}
	return root.Execute()
}
