package session

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"VectorBoard/internal/export"
	"VectorBoard/internal/state"
)

// Save writes the drawing to w in the configured format.
func (s *Session) Save(w io.Writer) error {
	return s.shapes.Encode(w, s.format)
}

// Open replaces the drawing with the shapes read from r, then resets the view
// and repaints. On error the current drawing is kept.
func (s *Session) Open(r io.Reader) error {
	s.machine.Cancel()
	next := state.NewCollection(s.log)
	if err := next.Load(r); err != nil {
		return err
	}
	s.shapes.Erase()
	s.shapes.AddAll(next)
	s.view.Reset()
	s.Paint()
	return nil
}

// SaveFile writes the drawing to path.
func (s *Session) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		s.log.Errorf("[SESSION] Save failed: %v", err)
		return fmt.Errorf("save drawing: %w", err)
	}
	if err := s.Save(f); err != nil {
		f.Close()
		s.log.Errorf("[SESSION] Save to %s failed: %v", path, err)
		return fmt.Errorf("save drawing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save drawing %s: %w", path, err)
	}
	s.log.Infof("[SESSION] Saved %d shapes to %s", s.shapes.Len(), path)
	s.status(fmt.Sprintf("Saved %d shapes", s.shapes.Len()))
	return nil
}

// OpenFile opens the drawing stored at path.
func (s *Session) OpenFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		s.log.Errorf("[SESSION] Open failed: %v", err)
		return fmt.Errorf("open drawing: %w", err)
	}
	defer f.Close()
	if err := s.Open(f); err != nil {
		s.log.Errorf("[SESSION] Open %s failed: %v", path, err)
		return fmt.Errorf("open drawing %s: %w", path, err)
	}
	s.log.Infof("[SESSION] Opened %d shapes from %s", s.shapes.Len(), path)
	s.status(fmt.Sprintf("Opened %d shapes", s.shapes.Len()))
	return nil
}

// WritePDF renders the drawing as a PDF document to w.
func (s *Session) WritePDF(w io.Writer, title string) error {
	if err := export.Write(w, s.shapes, s.pdfOptions(title)); err != nil {
		s.log.Errorf("[SESSION] PDF export failed: %v", err)
		return fmt.Errorf("export pdf: %w", err)
	}
	s.log.Infof("[SESSION] Exported %d shapes as %q", s.shapes.Len(), title)
	s.status("Exported PDF")
	return nil
}

// ExportPDF renders the drawing to a PDF file at path.
func (s *Session) ExportPDF(path string) error {
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := export.WriteFile(path, s.shapes, s.pdfOptions(title)); err != nil {
		s.log.Errorf("[SESSION] PDF export failed: %v", err)
		return fmt.Errorf("export pdf: %w", err)
	}
	s.log.Infof("[SESSION] Exported %d shapes to %s", s.shapes.Len(), path)
	s.status("Exported PDF")
	return nil
}

func (s *Session) pdfOptions(title string) export.Options {
	return export.Options{
		Margin:     s.pdfMargin,
		Background: s.background,
		Title:      title,
	}
}
