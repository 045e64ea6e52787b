package gear

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

var ErrCyclicGear = errors.New("gear contains itself")

// Item is one piece of equipment as seen by derived-value searches. Children
// are the items plugged into or carried by this one.
type Item struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Category string  `yaml:"category"`
	Extra    string  `yaml:"extra,omitempty"`
	Equipped bool    `yaml:"equipped"`
	Rating   int     `yaml:"rating"`
	Children []*Item `yaml:"children,omitempty"`
}

func (it *Item) String() string {
	if it.Extra != "" {
		return fmt.Sprintf("%s (%s) R%d", it.Name, it.Extra, it.Rating)
	}
	return fmt.Sprintf("%s R%d", it.Name, it.Rating)
}

// MatchFunc decides whether an item answers a search. A matching item's
// contribution is returned and its children are not searched.
type MatchFunc func(it *Item) (contribution int, ok bool)

// FirstPositive searches roots depth first and returns the first strictly
// positive contribution. A matching item contributing zero does not stop the
// search of its siblings. Structures that reach an item from inside itself
// fail with ErrCyclicGear.
func FirstPositive(roots []*Item, match MatchFunc) (int, error) {
	path := mapset.NewThreadUnsafeSet[*Item]()

	var visit func(it *Item) (int, error)
	visit = func(it *Item) (int, error) {
		if it == nil {
			return 0, nil
		}
		if !path.Add(it) {
			return 0, fmt.Errorf("%w: %s", ErrCyclicGear, it)
		}
		defer path.Remove(it)

		if v, ok := match(it); ok {
			return v, nil
		}
		for _, child := range it.Children {
			v, err := visit(child)
			if err != nil {
				return 0, err
			}
			if v > 0 {
				return v, nil
			}
		}
		return 0, nil
	}

	for _, root := range roots {
		v, err := visit(root)
		if err != nil {
			return 0, err
		}
		if v > 0 {
			return v, nil
		}
	}
	return 0, nil
}

// Validate walks the whole structure and reports the first cycle it finds.
// The search above only sees the part it walks before stopping.
func Validate(roots []*Item) error {
	_, err := FirstPositive(roots, func(*Item) (int, bool) { return 0, false })
	return err
}

// Walk visits every item depth first. Cycles are not followed.
func Walk(roots []*Item, fn func(it *Item, depth int)) {
	seen := mapset.NewThreadUnsafeSet[*Item]()
	var visit func(it *Item, depth int)
	visit = func(it *Item, depth int) {
		if it == nil || !seen.Add(it) {
			return
		}
		fn(it, depth)
		for _, c := range it.Children {
			visit(c, depth+1)
		}
	}
	for _, r := range roots {
		visit(r, 0)
	}
}
