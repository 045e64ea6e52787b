package deptree

import (
	"errors"
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

var (
	ErrCycle         = errors.New("dependency cycle")
	ErrDuplicateEdge = errors.New("duplicate dependency")
	ErrSelfEdge      = errors.New("attribute depends on itself")
)

// Graph is an immutable reverse-dependency structure. A change to a key means
// every key that (transitively) depends on it has changed too.
//
// Graph is read-only after Build and safe for concurrent readers.
type Graph[K comparable] struct {
	keys     []K
	parents  map[K][]K
	children map[K][]K
	fanout   map[K][]K
}

// Find returns key followed by every key built on top of it, breadth first,
// parents in declaration order. Keys the graph does not know are returned alone.
func (g *Graph[K]) Find(key K) []K {
	if out, ok := g.fanout[key]; ok {
		return slices.Clone(out)
	}
	return []K{key}
}

// FindAll is Find over several changed keys at once. Each key appears once,
// the changed keys first and then their dependents breadth first.
func (g *Graph[K]) FindAll(keys ...K) []K {
	switch len(keys) {
	case 0:
		return nil
	case 1:
		return g.Find(keys[0])
	}
	return walk(g.parents, keys...)
}

// Dependencies walks forward and returns every key that key is computed from,
// key first.
func (g *Graph[K]) Dependencies(key K) []K {
	return walk(g.children, key)
}

// Contains reports whether key was declared.
func (g *Graph[K]) Contains(key K) bool {
	_, ok := g.fanout[key]
	return ok
}

// Keys returns every declared key in declaration order.
func (g *Graph[K]) Keys() []K {
	return slices.Clone(g.keys)
}

// Parents returns the keys that directly depend on key.
func (g *Graph[K]) Parents(key K) []K {
	return slices.Clone(g.parents[key])
}

func walk[K comparable](edges map[K][]K, starts ...K) []K {
	var out []K
	seen := mapset.NewThreadUnsafeSetWithSize[K](len(starts))
	for _, k := range starts {
		if seen.Add(k) {
			out = append(out, k)
		}
	}
	for i := 0; i < len(out); i++ {
		for _, next := range edges[out[i]] {
			if seen.Add(next) {
				out = append(out, next)
			}
		}
	}
	return out
}

// Builder collects dependency declarations. The zero value is ready to use.
type Builder[K comparable] struct {
	keys     []K
	known    mapset.Set[K]
	parents  map[K][]K
	children map[K][]K
	errs     []error
}

func (b *Builder[K]) init() {
	if b.known == nil {
		b.known = mapset.NewThreadUnsafeSet[K]()
		b.parents = map[K][]K{}
		b.children = map[K][]K{}
	}
}

func (b *Builder[K]) add(key K) {
	if b.known.Add(key) {
		b.keys = append(b.keys, key)
	}
}

// Declare records that parent is computed from each of children, so a change
// to any child must also be announced for parent.
func (b *Builder[K]) Declare(parent K, children ...K) *Builder[K] {
	b.init()
	b.add(parent)
	for _, child := range children {
		if child == parent {
			b.errs = append(b.errs, fmt.Errorf("%w: %v", ErrSelfEdge, parent))
			continue
		}
		if slices.Contains(b.children[parent], child) {
			b.errs = append(b.errs, fmt.Errorf("%w: %v -> %v", ErrDuplicateEdge, parent, child))
			continue
		}
		b.add(child)
		b.children[parent] = append(b.children[parent], child)
		b.parents[child] = append(b.parents[child], parent)
	}
	return b
}

// Tree declares every edge of a literal tree rooted at root. An edge that is
// already declared is not reported as a duplicate, so shared subtrees can be
// written out under each parent. The subtree below it is still walked.
func (b *Builder[K]) Tree(root *Node[K]) *Builder[K] {
	b.init()
	b.add(root.Key)
	for _, child := range root.Children {
		if !slices.Contains(b.children[root.Key], child.Key) {
			b.Declare(root.Key, child.Key)
		}
		b.Tree(child)
	}
	return b
}

// Build validates the declarations and freezes them. Any cycle is rejected so
// fan-out during notification always terminates.
func (b *Builder[K]) Build() (*Graph[K], error) {
	b.init()
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	if err := b.checkAcyclic(); err != nil {
		return nil, err
	}

	g := &Graph[K]{
		keys:     slices.Clone(b.keys),
		parents:  make(map[K][]K, len(b.parents)),
		children: make(map[K][]K, len(b.children)),
		fanout:   make(map[K][]K, len(b.keys)),
	}
	for k, v := range b.parents {
		g.parents[k] = slices.Clone(v)
	}
	for k, v := range b.children {
		g.children[k] = slices.Clone(v)
	}
	for _, k := range g.keys {
		g.fanout[k] = walk(g.parents, k)
	}
	return g, nil
}

func (b *Builder[K]) checkAcyclic() error {
	done := mapset.NewThreadUnsafeSet[K]()
	onPath := mapset.NewThreadUnsafeSet[K]()
	var path []K

	var visit func(k K) error
	visit = func(k K) error {
		if done.Contains(k) {
			return nil
		}
		if !onPath.Add(k) {
			start := slices.Index(path, k)
			return fmt.Errorf("%w: %v", ErrCycle, append(slices.Clone(path[start:]), k))
		}
		path = append(path, k)
		for _, child := range b.children[k] {
			if err := visit(child); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		onPath.Remove(k)
		done.Add(k)
		return nil
	}

	for _, k := range b.keys {
		if err := visit(k); err != nil {
			return err
		}
	}
	return nil
}

// Must is for package level graphs whose shape is fixed at compile time.
func Must[K comparable](g *Graph[K], err error) *Graph[K] {
	if err != nil {
		panic(err)
	}
	return g
}
