package parsercombinator

// Identity is a Walker that returns its argument unchanged, the neutral
// element for MapChildren-based traversals.
func Identity(p Parser) Parser { return p }

// WalkWithParent recursively rewrites root and every descendant, giving fn
// the current node's parent (nil at the root) alongside the node itself.
// This is the engine's ScopedWalker: a Walker that threads "current
// parent" through a recursive mapChildren traversal, for grammar analyses
// and rewrites that need to know the context a node was reached from.
func WalkWithParent(root Parser, fn func(parent, child Parser) Parser) Parser {
	var walk func(parent, node Parser) Parser
	walk = func(parent, node Parser) Parser {
		rewritten := fn(parent, node)
		return rewritten.MapChildren(func(child Parser) Parser {
			return walk(rewritten, child)
		})
	}
	return walk(nil, root)
}
