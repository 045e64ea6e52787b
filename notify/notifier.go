package notify

import (
	"context"
	"log/slog"

	"github.com/delaneyj/skillparty/deptree"
)

// Notifier announces attribute changes for one entity. Every change is fanned
// out through the dependency graph so subscribers hear about each attribute
// built on top of the one that actually changed.
type Notifier[K comparable] struct {
	graph  *deptree.Graph[K]
	feed   Feed[K]
	logger *slog.Logger
}

func NewNotifier[K comparable](graph *deptree.Graph[K], logger *slog.Logger) *Notifier[K] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier[K]{graph: graph, logger: logger}
}

// Subscribe registers fn for every attribute announcement.
func (n *Notifier[K]) Subscribe(fn func(K)) Subscription {
	return n.feed.Subscribe(fn)
}

// Notify announces key and all of its dependents, in graph order. Handlers may
// call Notify again; the graph is acyclic so this always terminates.
func (n *Notifier[K]) Notify(key K) {
	affected := n.graph.Find(key)
	if n.logger.Enabled(context.Background(), slog.LevelDebug) {
		n.logger.Debug("attribute changed", "attr", key, "fanout", len(affected))
	}
	for _, k := range affected {
		n.feed.Send(k)
	}
}

// NotifyAll announces several changed keys as one change. Attributes shared by
// their fan-outs are announced once.
func (n *Notifier[K]) NotifyAll(keys ...K) {
	affected := n.graph.FindAll(keys...)
	if n.logger.Enabled(context.Background(), slog.LevelDebug) {
		n.logger.Debug("attributes changed", "attrs", keys, "fanout", len(affected))
	}
	for _, k := range affected {
		n.feed.Send(k)
	}
}

// Subscribers is the number of live subscriptions.
func (n *Notifier[K]) Subscribers() int {
	return n.feed.Len()
}

// Graph returns the graph this notifier walks.
func (n *Notifier[K]) Graph() *deptree.Graph[K] {
	return n.graph
}
