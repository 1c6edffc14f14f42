// Package shellgen renders dev-shell descriptors into Nix expressions and
// assembles the dynamic-library search path they declare.
package shellgen

import (
	"context"
	"strings"
	"sync/atomic"

	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"

	"shutbox/cellmap"
	"shutbox/internal/core/domain"
)

// Renderer implements ports.ShellRenderer.
//
// Rendered expressions are memoized by shell ID, so repeated renders of an
// unchanged descriptor (watch mode re-renders on every write) are served
// from the cache. The singleflight group collapses concurrent renders of
// the same descriptor into one.
type Renderer struct {
	cache        *cellmap.Map[string]
	requestGroup singleflight.Group
	misses       atomic.Int64
}

// NewRenderer creates a new Renderer with an empty cache.
func NewRenderer() *Renderer {
	return &Renderer{
		cache: cellmap.New[string](),
	}
}

// Render produces the dev-shell expression for the descriptor.
func (r *Renderer) Render(ctx context.Context, d *domain.Descriptor) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	if _, ok := d.Base(); !ok {
		return "", zerr.With(domain.ErrNoBaseInput, "descriptor", d.Name)
	}

	id := domain.ShellID(d)
	if expr, ok := r.cache.Get(id); ok {
		return *expr, nil
	}

	result, err, _ := r.requestGroup.Do(id, func() (any, error) {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		r.misses.Add(1)
		expr := buildExpression(d)
		r.cache.Put(id, expr)
		return expr, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// SearchPath produces the colon-separated dynamic-library search path
// fragment declared by the descriptor: declaration order preserved,
// duplicates dropped.
func (r *Renderer) SearchPath(d *domain.Descriptor) string {
	return strings.Join(searchPathLibraries(d), ":")
}
