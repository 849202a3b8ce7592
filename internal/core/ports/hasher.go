package ports

// Hasher defines the interface for fingerprinting files.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile returns a content fingerprint of the file at path.
	// It returns "" and no error if the file does not exist.
	HashFile(path string) (string, error)
}
