package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
	ErrInvalidKind    = errors.New("ecs: invalid component kind")
)

// ID identifies one registered component type.
type ID uint32

var nextID atomic.Uint32

// Kind is a typed handle for a component type. Handles are created once at
// package init via NewComponent and passed to the generic world helpers.
type Kind[T any] struct {
	id ID
}

func NewComponent[T any]() Kind[T] {
	return Kind[T]{id: ID(nextID.Add(1))}
}

func (k Kind[T]) ID() ID {
	return k.id
}

func (k Kind[T]) Valid() bool {
	return k.id != 0
}
