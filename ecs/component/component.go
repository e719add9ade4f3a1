// Package component holds the rig's ECS component types. Each type registers
// a handle at init; systems and builders pass the handle's Kind to the
// generic accessors in package ecs.
package component

import "sync/atomic"

// ComponentID identifies a component type within the process.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentKind is the typed key for component T. The zero value is invalid.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle is what a component file exports, e.g.
// TransformComponent.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
