// Package bheap implements the size-annotated binomial heap that backs
// the persistent priority queue in package pheap.
//
// The heap is parameterized by a Polarity: Up turns "wins" into "smaller
// key" (a min-heap), Down turns it into "larger key" (a max-heap). The
// two polarities are distinct Go types, so Heap[K, V, Up[K]] and
// Heap[K, V, Down[K]] are themselves distinct types and cannot be merged
// by the type checker without an explicit conversion — the same
// "construction forbids the illegal case" approach the package's teacher
// uses to keep its generic Interface constraint from admitting the wrong
// comparator.
package bheap

import "cmp"

// Polarity decides which of two keys wins; wins is strict, so equal keys
// win against neither. K is constrained
// to cmp.Ordered so Up/Down can be defined once for every ordered key
// type, the same way the rest of this domain uses cmp.Ordered for keys.
type Polarity[K cmp.Ordered] interface {
	wins(a, b K) bool
	Tag() string
}

// Up is the min-heap polarity: smaller keys win.
type Up[K cmp.Ordered] struct{}

func (Up[K]) wins(a, b K) bool { return a < b }

// Tag identifies the polarity for hashing and diagnostics.
func (Up[K]) Tag() string { return "up" }

// Down is the max-heap polarity: larger keys win.
type Down[K cmp.Ordered] struct{}

func (Down[K]) wins(a, b K) bool { return a > b }

// Tag identifies the polarity for hashing and diagnostics.
func (Down[K]) Tag() string { return "down" }
