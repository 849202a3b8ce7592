// Package fs provides file system adapters for verifying and fingerprinting build files.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/freeze/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier checks whether files exist.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Exists reports whether a file exists at path. A directory at path does not count.
// The file's content is not inspected.
func (v *Verifier) Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	return !info.IsDir(), nil
}

// MissingInputs returns the paths among paths that do not exist, in order.
func (v *Verifier) MissingInputs(paths []string) ([]string, error) {
	var missing []string
	for _, path := range paths {
		ok, err := v.Exists(path)
		if err != nil {
			return nil, err
		}
		if !ok {
			missing = append(missing, path)
		}
	}
	return missing, nil
}
