package memo

import (
	"math"
	"strings"
)

type CacheState int

const (
	CacheClean CacheState = iota // value is valid, no need to recompute
	CacheDirty                   // value was invalidated and must be recomputed before the next read
)

// Unset is what an empty integer slot holds.
const Unset = math.MinInt

// Trigger names a category of upstream event. A slot only goes dirty for the
// triggers it was registered with.
type Trigger uint8

const (
	TriggerModifiers Trigger = 1 << iota
	TriggerEquipment
	TriggerCharacter
	TriggerAllocation
	TriggerAll = TriggerModifiers | TriggerEquipment | TriggerCharacter | TriggerAllocation
)

func (t Trigger) String() string {
	if t == 0 {
		return "none"
	}
	var parts []string
	for _, x := range []struct {
		t    Trigger
		name string
	}{
		{TriggerModifiers, "modifiers"},
		{TriggerEquipment, "equipment"},
		{TriggerCharacter, "character"},
		{TriggerAllocation, "allocation"},
	} {
		if t&x.t != 0 {
			parts = append(parts, x.name)
		}
	}
	return strings.Join(parts, "|")
}

// Slot memoizes one derived value. An empty slot holds unset, but any value a
// computation returns is cached, unset included.
type Slot[T comparable] struct {
	name     string
	value    T
	unset    T
	valid    bool
	triggers Trigger
	computes int
}

func NewSlot[T comparable](name string, unset T, triggers Trigger) *Slot[T] {
	return &Slot[T]{
		name:     name,
		value:    unset,
		unset:    unset,
		triggers: triggers,
	}
}

// IntSlot is a slot over ints using Unset as its sentinel.
func IntSlot(name string, triggers Trigger) *Slot[int] {
	return NewSlot(name, Unset, triggers)
}

func (s *Slot[T]) Name() string { return s.name }

func (s *Slot[T]) Triggers() Trigger { return s.triggers }

// Computes counts how many times the slot has run its computation.
func (s *Slot[T]) Computes() int { return s.computes }

func (s *Slot[T]) Valid() bool { return s.valid }

func (s *Slot[T]) State() CacheState {
	if s.Valid() {
		return CacheClean
	}
	return CacheDirty
}

// Get returns the cached value, calling compute only when the slot is unset.
func (s *Slot[T]) Get(compute func() T) T {
	if s.valid {
		return s.value
	}
	s.computes++
	s.value = compute()
	s.valid = true
	return s.value
}

// GetErr is Get for computations that can fail. Errors are returned as is and
// leave the slot unset, so the next read tries again.
func (s *Slot[T]) GetErr(compute func() (T, error)) (T, error) {
	if s.valid {
		return s.value, nil
	}
	s.computes++
	v, err := compute()
	if err != nil {
		return s.unset, err
	}
	s.value = v
	s.valid = true
	return v, nil
}

func (s *Slot[T]) Invalidate() {
	s.value = s.unset
	s.valid = false
}

// InvalidateOn clears the slot if t overlaps its triggers and reports whether
// a cached value was dropped.
func (s *Slot[T]) InvalidateOn(t Trigger) bool {
	if s.triggers&t == 0 || !s.Valid() {
		return false
	}
	s.Invalidate()
	return true
}

type invalidator interface {
	Name() string
	InvalidateOn(t Trigger) bool
}
