//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter uploads cell states into a one-pixel-per-cell image and draws
// it scaled to the cell size.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	ShowGrid bool
}

// NewGridPainter returns a painter that allocates lazily on first draw.
func NewGridPainter() *GridPainter {
	return &GridPainter{}
}

func (gp *GridPainter) ensure(w, h int) {
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.w, gp.h = w, h
	gp.img = ebiten.NewImage(w, h)
	gp.buf = make([]byte, 4*w*h)
}

// Draw renders view onto dst with square cells of cellSize pixels.
func (gp *GridPainter) Draw(dst *ebiten.Image, view CellView, cellSize int) {
	size := view.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	gp.ensure(size.W, size.H)
	fillCellRGBA(gp.buf, view, AliveColor, DeadColor)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)

	if gp.ShowGrid && cellSize > 2 {
		gp.drawLines(dst, size.W, size.H, float32(cellSize))
	}
}

func (gp *GridPainter) drawLines(dst *ebiten.Image, w, h int, cs float32) {
	right := float32(w) * cs
	bottom := float32(h) * cs
	for x := 0; x <= w; x++ {
		px := float32(x) * cs
		vector.StrokeLine(dst, px, 0, px, bottom, 1, GridLineColor, false)
	}
	for y := 0; y <= h; y++ {
		py := float32(y) * cs
		vector.StrokeLine(dst, 0, py, right, py, 1, GridLineColor, false)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
