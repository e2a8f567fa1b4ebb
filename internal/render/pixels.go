package render

import (
	"image/color"

	"lifepaint/internal/core"
)

var (
	// AliveColor and DeadColor match the classic white-on-black board.
	AliveColor color.Color = color.White
	DeadColor  color.Color = color.Black
	// GridLineColor strokes cell borders when the grid overlay is on.
	GridLineColor color.Color = color.RGBA{R: 60, G: 60, B: 68, A: 255}
)

// fillCellRGBA converts the view into one RGBA pixel per cell in buf.
func fillCellRGBA(buf []byte, view CellView, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	w := view.Size().W
	view.Each(func(x, y int, c core.Cell) {
		base := (y*w + x) * 4
		if c == core.Alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			return
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	})
}
