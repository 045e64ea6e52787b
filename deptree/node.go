package deptree

// Node is a literal tree used to declare a graph in one expression, the root
// being the most downstream attribute.
type Node[K comparable] struct {
	Key      K
	Children []*Node[K]
}

func N[K comparable](key K, children ...*Node[K]) *Node[K] {
	return &Node[K]{Key: key, Children: children}
}

// New builds a graph from one or more literal trees.
func New[K comparable](roots ...*Node[K]) (*Graph[K], error) {
	b := &Builder[K]{}
	for _, r := range roots {
		b.Tree(r)
	}
	return b.Build()
}
