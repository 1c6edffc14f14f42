package shellgen

// Misses reports how many renders were served by building the expression
// rather than from the cache.
func (r *Renderer) Misses() int64 {
	return r.misses.Load()
}
