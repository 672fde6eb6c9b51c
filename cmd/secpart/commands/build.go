package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"secprov/internal/blob"
	"secprov/internal/memzero"
	"secprov/internal/secpart"
)

func runBuild(cmd *cobra.Command, args []string) error {
	if caPath == "" || certPath == "" {
		return ErrUsage
	}

	ca, err := blob.Read(caPath)
	if err != nil {
		return fmt.Errorf("read ca: %w", err)
	}
	cert, err := blob.Read(certPath)
	if err != nil {
		return fmt.Errorf("read cert: %w", err)
	}
	var key []byte
	if keyPath != "" {
		if key, err = blob.Read(keyPath); err != nil {
			return fmt.Errorf("read key: %w", err)
		}
	}
	defer memzero.Zero(key)

	img, err := secpart.Image{CA: ca, Cert: cert, Key: key}.Build(size)
	if err != nil {
		return err
	}
	if err := blob.WriteAtomic(outPath, img, 0o600); err != nil {
		return fmt.Errorf("write image: %w", err)
	}

	fmt.Printf("wrote %s (%d bytes)\n", outPath, len(img))
	fmt.Println("flash it at the secure-cert offset from your device's partition table; flashing is a separate step")
	return nil
}
