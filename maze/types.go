// SPDX-License-Identifier: MIT

package maze

import (
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrGraphNil is returned by New for a nil graph.
	ErrGraphNil = errors.New("maze: graph is nil")

	// ErrGraphNotBuilt is returned by Graph when the maze holds no graph.
	ErrGraphNotBuilt = errors.New("maze: graph was not built")

	// ErrEntranceNotFound indicates the entrance is not a node of the graph.
	ErrEntranceNotFound = errors.New("maze: entrance not found")

	// ErrExitNotFound indicates the exit is not a node of the graph.
	ErrExitNotFound = errors.New("maze: exit not found")

	// ErrNegativeCoins indicates a coin budget below zero.
	ErrNegativeCoins = errors.New("maze: coin budget is negative")
)

// Option configures a Maze.
type Option func(*Options)

// Options holds the configurable parts of a Maze.
type Options struct {
	// Logger receives search diagnostics at debug level.
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger installs l for search diagnostics. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
