package ports

import "shutbox/internal/core/domain"

// DescriptorLoader defines the interface for loading a dev-shell descriptor.
type DescriptorLoader interface {
	// Load reads and validates the descriptor at the given path.
	Load(path string) (*domain.Descriptor, error)
}
