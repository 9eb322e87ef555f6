// Package export renders a drawing to PDF.
package export

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jung-kurt/gofpdf"

	"VectorBoard/internal/geom"
	"VectorBoard/internal/render"
)

// Drawing is what can be exported.
type Drawing interface {
	Draw(t geom.Transformer, r render.Renderer)
	Bounds() geom.Bounds
}

// Options controls the page. Lengths are in points.
type Options struct {
	Margin     float64
	Background geom.Color
	LineWidth  float64
	Title      string
}

// contentSize is the length of the longer side of the drawing on the page.
const contentSize = 500

// Renderer draws onto a single gofpdf page whose device units are points.
// PDF has no inverting composition, so lines drawn in ModeInvert are
// dropped; only committed shapes reach the page.
type Renderer struct {
	doc           *gofpdf.Fpdf
	width, height float64
	background    uint32
	mode          render.Mode
}

var _ render.Renderer = (*Renderer)(nil)

// NewRenderer starts a document with one page of the given size.
func NewRenderer(width, height float64, background geom.Color, lineWidth float64) *Renderer {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetLineWidth(lineWidth)
	doc.SetLineCapStyle("round")
	return &Renderer{doc: doc, width: width, height: height, background: background.Packed()}
}

// Clear paints the whole page in the background color.
func (p *Renderer) Clear() {
	r, g, b := rgb(p.background)
	p.doc.SetFillColor(r, g, b)
	p.doc.Rect(0, 0, p.width, p.height, "F")
}

func (p *Renderer) SetColor(c uint32) {
	r, g, b := rgb(c)
	p.doc.SetDrawColor(r, g, b)
}

func (p *Renderer) SetMode(m render.Mode) { p.mode = m }

func (p *Renderer) DrawLine(x0, y0, x1, y1 float64) {
	if p.mode == render.ModeInvert {
		return
	}
	p.doc.Line(x0, y0, x1, y1)
}

func (p *Renderer) Size() (int, int) {
	return int(math.Round(p.width)), int(math.Round(p.height))
}

// Output closes the document and writes it to w.
func (p *Renderer) Output(w io.Writer) error {
	return p.doc.Output(w)
}

// Fit returns a view that places b in the middle of a page with the given
// margin, and the page size. The longer side of b spans contentSize points.
func Fit(b geom.Bounds, margin float64) (*geom.View, float64, float64) {
	if b.Empty() {
		side := contentSize + 2*margin
		return geom.NewView(side, side), side, side
	}

	scale := float64(geom.DefaultScaleX)
	if longest := math.Max(b.Width(), b.Height()); longest > 0 {
		scale = contentSize / longest
	}
	w := math.Max(b.Width()*scale, 1) + 2*margin
	h := math.Max(b.Height()*scale, 1) + 2*margin

	v := geom.NewView(w, h)
	// The scale is positive by construction.
	_ = v.SetScale(scale, scale)
	c := b.Center()
	v.SetTranslation(-c.X, -c.Y)
	return v, w, h
}

// Write renders d onto a page fitted to its bounds and writes the PDF to w.
func Write(w io.Writer, d Drawing, opt Options) error {
	view, pw, ph := Fit(d.Bounds(), opt.Margin)
	lw := opt.LineWidth
	if lw <= 0 {
		lw = 1
	}
	p := NewRenderer(pw, ph, opt.Background, lw)
	if opt.Title != "" {
		p.doc.SetTitle(opt.Title, true)
	}
	p.doc.SetCreator("VectorBoard", true)

	p.Clear()
	p.SetMode(render.ModeNormal)
	d.Draw(view, p)

	if err := p.doc.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return p.Output(w)
}

// WriteFile is Write to a new file at path.
func WriteFile(path string, d Drawing, opt Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, d, opt); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func rgb(c uint32) (int, int, int) {
	return int(uint8(c >> 16)), int(uint8(c >> 8)), int(uint8(c))
}
