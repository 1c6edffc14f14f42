package ports

import (
	"context"

	"shutbox/internal/core/domain"
)

// ShellRenderer renders a descriptor into environment-construction input.
type ShellRenderer interface {
	// Render produces the dev-shell expression for the descriptor.
	Render(ctx context.Context, d *domain.Descriptor) (string, error)
	// SearchPath produces the colon-separated dynamic-library search path
	// fragment declared by the descriptor.
	SearchPath(d *domain.Descriptor) string
}
