package state

import "VectorBoard/internal/shapes"

// Entry is a shape held by a Collection.
type Entry struct {
	ID    string
	Seq   uint64
	Shape shapes.Shape
}
