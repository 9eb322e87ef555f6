// Package state owns the committed drawing: the collection of shapes and its
// persistence.
package state

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"VectorBoard/internal/geom"
	"VectorBoard/internal/render"
	"VectorBoard/internal/shapes"
)

// Collection is the set of committed shapes. It keeps its own deep copies,
// so callers may keep mutating what they pass to Add. Iteration order is
// insertion order.
//
// A Collection is owned by one session and is not safe for concurrent use.
type Collection struct {
	entries []Entry
	log     *zap.SugaredLogger
}

// NewCollection returns an empty collection. A nil logger discards.
func NewCollection(log *zap.SugaredLogger) *Collection {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Collection{log: log}
}

// Add stores a copy of s and returns its entry ID.
func (c *Collection) Add(s shapes.Shape) string {
	seq := nextSequence()
	e := Entry{ID: entryID(seq), Seq: seq, Shape: s.Clone()}
	c.entries = append(c.entries, e)
	c.log.Debugf("[STATE] Added %v %s", s.Kind(), e.ID)
	return e.ID
}

// AddAll copies every shape of o into c.
func (c *Collection) AddAll(o *Collection) {
	for _, e := range o.entries {
		c.Add(e.Shape)
	}
}

// Remove deletes the entry with the given ID and reports whether it existed.
func (c *Collection) Remove(id string) bool {
	for i, e := range c.entries {
		if e.ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			c.log.Debugf("[STATE] Removed %s", id)
			return true
		}
	}
	return false
}

// Erase removes every shape.
func (c *Collection) Erase() {
	c.entries = nil
}

func (c *Collection) Len() int { return len(c.entries) }

// Shapes returns copies of the stored shapes in order.
func (c *Collection) Shapes() []shapes.Shape {
	out := make([]shapes.Shape, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Shape.Clone()
	}
	return out
}

// Entries returns the entries in order, each holding a copy of its shape.
func (c *Collection) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		e.Shape = e.Shape.Clone()
		out[i] = e
	}
	return out
}

// Draw draws every shape through t.
func (c *Collection) Draw(t geom.Transformer, r render.Renderer) {
	for _, e := range c.entries {
		e.Shape.Draw(t, r)
	}
}

// Bounds returns the model-space bounding box of every vertex.
func (c *Collection) Bounds() geom.Bounds {
	var b geom.Bounds
	for _, e := range c.entries {
		b = b.Union(geom.BoundsOf(e.Shape.Vertices()...))
	}
	return b
}

// WriteTo writes every shape as a legacy record, one per line.
func (c *Collection) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := c.encode(&buf, shapes.FormatLegacy); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// Encode writes every shape in format f, one record per line.
func (c *Collection) Encode(w io.Writer, f shapes.Format) error {
	var buf bytes.Buffer
	if err := c.encode(&buf, f); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func (c *Collection) encode(buf *bytes.Buffer, f shapes.Format) error {
	for _, e := range c.entries {
		if err := shapes.Encode(buf, e.Shape, f); err != nil {
			return fmt.Errorf("encode %s: %w", e.ID, err)
		}
	}
	return nil
}

// Load reads records from r and adds the shapes they describe. The whole
// stream is parsed before anything is added: on error the collection is left
// exactly as it was.
func (c *Collection) Load(r io.Reader) error {
	var loaded []shapes.Shape
	d := shapes.NewDecoder(r)
	for {
		s, err := d.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			c.log.Warnf("[STATE] Load aborted after %d records: %v", len(loaded), err)
			return err
		}
		loaded = append(loaded, s)
	}
	for _, s := range loaded {
		c.Add(s)
	}
	c.log.Infof("[STATE] Loaded %d shapes", len(loaded))
	return nil
}
