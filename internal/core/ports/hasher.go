package ports

import "go.trai.ch/kiln/internal/core/domain"

// Hasher defines the interface for computing content fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint returns a stable digest of the frame's column names and values.
	Fingerprint(frame *domain.Frame) string
	// HashStrings returns a stable digest of parts, in order.
	HashStrings(parts ...string) string
}
