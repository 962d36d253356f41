package graphics

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelFace is the fixed-size face used for rasterized text.
var labelFace font.Face = basicfont.Face7x13

// TextWidth returns the advance width of text in the raster label face.
func TextWidth(text string) float64 {
	return float64(font.MeasureString(labelFace, text)) / 64
}

// TextHeight returns the line height of the raster label face.
func TextHeight() float64 {
	return float64(labelFace.Metrics().Height.Ceil())
}

// TextAscent returns the distance from the top of a line to its baseline.
func TextAscent() float64 {
	return float64(labelFace.Metrics().Ascent.Ceil())
}

type imageCanvasState struct {
	dx, dy float64
	clip   image.Rectangle
}

// ImageCanvas rasterizes drawing commands into an RGBA image.
// Rectangles are snapped to whole pixels by rounding their edges, so
// adjacent rects share an edge without gaps or overlap.
type ImageCanvas struct {
	img   *image.RGBA
	state imageCanvasState
	stack []imageCanvasState
}

// NewImageCanvas creates a canvas of the given size filled with background.
func NewImageCanvas(size Size, background Color) *ImageCanvas {
	bounds := image.Rect(0, 0, int(math.Ceil(size.Width)), int(math.Ceil(size.Height)))
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(background.NRGBA()), image.Point{}, draw.Src)
	return &ImageCanvas{
		img:   img,
		state: imageCanvasState{clip: bounds},
	}
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

func (c *ImageCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *ImageCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *ImageCanvas) Translate(dx, dy float64) {
	c.state.dx += dx
	c.state.dy += dy
}

func (c *ImageCanvas) ClipRect(rect Rect) {
	c.state.clip = c.state.clip.Intersect(c.toPixels(rect))
}

func (c *ImageCanvas) DrawRect(rect Rect, paint Paint) {
	target := c.toPixels(rect).Intersect(c.state.clip)
	if target.Empty() {
		return
	}
	draw.Draw(c.img, target, image.NewUniform(paint.Color.NRGBA()), image.Point{}, draw.Over)
}

func (c *ImageCanvas) DrawText(text string, position Offset, paint Paint) {
	if text == "" || c.state.clip.Empty() {
		return
	}
	dst, ok := c.img.SubImage(c.state.clip).(*image.RGBA)
	if !ok {
		return
	}
	drawer := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(paint.Color.NRGBA()),
		Face: labelFace,
		Dot: fixed.P(
			int(math.Round(position.X+c.state.dx)),
			int(math.Round(position.Y+c.state.dy)),
		),
	}
	drawer.DrawString(text)
}

func (c *ImageCanvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *ImageCanvas) toPixels(rect Rect) image.Rectangle {
	r := rect.Translate(c.state.dx, c.state.dy)
	return image.Rect(
		int(math.Round(r.Left)),
		int(math.Round(r.Top)),
		int(math.Round(r.Right)),
		int(math.Round(r.Bottom)),
	)
}
