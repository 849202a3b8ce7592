package ports

// Verifier defines the interface for verifying file existence.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// Exists reports whether a file exists at path. It does not inspect the content.
	Exists(path string) (bool, error)

	// MissingInputs returns the subset of paths that do not exist.
	MissingInputs(paths []string) ([]string, error)
}
