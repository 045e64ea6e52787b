package memo

import (
	"context"
	"log/slog"
)

// Set groups the slots owned by one entity so an upstream event can clear
// exactly the slots registered for its trigger.
type Set struct {
	slots  []invalidator
	logger *slog.Logger
}

func NewSet(logger *slog.Logger) *Set {
	if logger == nil {
		logger = slog.Default()
	}
	return &Set{logger: logger}
}

// Add registers slots with the set.
func Add[T comparable](set *Set, slots ...*Slot[T]) {
	for _, s := range slots {
		set.slots = append(set.slots, s)
	}
}

// Invalidate clears every slot registered for t and returns their names.
func (s *Set) Invalidate(t Trigger) []string {
	var cleared []string
	for _, slot := range s.slots {
		if slot.InvalidateOn(t) {
			cleared = append(cleared, slot.Name())
		}
	}
	if len(cleared) > 0 && s.logger.Enabled(context.Background(), slog.LevelDebug) {
		s.logger.Debug("cache invalidated", "trigger", t.String(), "slots", cleared)
	}
	return cleared
}

func (s *Set) Len() int {
	return len(s.slots)
}
