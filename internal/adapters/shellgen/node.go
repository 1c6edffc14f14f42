package shellgen

import (
	"context"

	"github.com/grindlemire/graft"

	"shutbox/internal/core/ports"
)

// NodeID is the unique identifier for the shell renderer Graft node.
const NodeID graft.ID = "adapter.shell_renderer"

func init() {
	graft.Register(graft.Node[ports.ShellRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ShellRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
