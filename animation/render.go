package animation

import (
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
)

// Default frame dimensions.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// RenderParams configures a Renderer. Zero values select the defaults.
type RenderParams struct {
	Width   int     `yaml:"Width"`   // frame width in pixels
	Height  int     `yaml:"Height"`  // frame height in pixels
	Margin  float64 `yaml:"Margin"`  // border around the plot area in pixels, default 60
	Counter bool    `yaml:"Counter"` // draw the "n = <degree>" counter on each frame
}

// Renderer draws frames as raster images: axes, the partial-sum curve
// and an optional degree counter. It is stateless and safe for
// concurrent use.
type Renderer struct {
	width   int
	height  int
	margin  float64
	counter bool
}

// NewRenderer returns a Renderer with the requested parameters, checking
// for invalid values.
func NewRenderer(params RenderParams) (*Renderer, error) {
	width := params.Width
	if width == 0 {
		width = DefaultWidth
	}
	height := params.Height
	if height == 0 {
		height = DefaultHeight
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("frame dimensions must be positive, got %dx%d", width, height)
	}

	margin := params.Margin
	if margin == 0 {
		margin = 60
	}
	if margin < 0 || 2*margin >= float64(width) || 2*margin >= float64(height) {
		return nil, fmt.Errorf("Margin %g does not fit inside %dx%d frame", margin, width, height)
	}

	return &Renderer{
		width:   width,
		height:  height,
		margin:  margin,
		counter: params.Counter,
	}, nil
}

// bounds of the data covered by a set of frames, so every frame of a
// sequence shares one fixed viewport.
type viewport struct {
	xMin, xMax float64
	yMin, yMax float64
}

func frameBounds(frames ...Frame) (viewport, error) {
	v := viewport{
		xMin: math.Inf(1), xMax: math.Inf(-1),
		yMin: math.Inf(1), yMax: math.Inf(-1),
	}
	for _, f := range frames {
		for _, x := range f.X {
			v.xMin = math.Min(v.xMin, x)
			v.xMax = math.Max(v.xMax, x)
		}
		for _, y := range f.Y {
			v.yMin = math.Min(v.yMin, y)
			v.yMax = math.Max(v.yMax, y)
		}
	}
	if v.xMin >= v.xMax {
		return v, errors.New("frames hold no drawable samples")
	}
	if v.yMin == v.yMax {
		// flat data still needs a non-degenerate y range
		v.yMin -= 1
		v.yMax += 1
	}
	return v, nil
}

// toPixel maps a data point into the plot area, y axis pointing up.
func (r *Renderer) toPixel(v viewport, x, y float64) (px, py float64) {
	w := float64(r.width) - 2*r.margin
	h := float64(r.height) - 2*r.margin
	px = r.margin + (x-v.xMin)/(v.xMax-v.xMin)*w
	py = float64(r.height) - r.margin - (y-v.yMin)/(v.yMax-v.yMin)*h
	return px, py
}

// Render draws a single frame with the viewport fitted to its own data.
func (r *Renderer) Render(frame Frame) (image.Image, error) {
	v, err := frameBounds(frame)
	if err != nil {
		return nil, err
	}
	return r.render(frame, v).Image(), nil
}

func (r *Renderer) render(frame Frame, v viewport) *gg.Context {
	dc := gg.NewContext(r.width, r.height)

	// background
	dc.SetRGB(0.05, 0.05, 0.08)
	dc.Clear()

	// axes through the data origin where visible, otherwise the viewport edge
	dc.SetRGB(0.6, 0.6, 0.6)
	dc.SetLineWidth(1)
	x0, y0 := r.toPixel(v, math.Max(v.xMin, 0), math.Max(v.yMin, math.Min(0, v.yMax)))
	dc.DrawLine(r.margin, y0, float64(r.width)-r.margin, y0)
	dc.DrawLine(x0, r.margin, x0, float64(r.height)-r.margin)
	dc.Stroke()

	// the approximation curve
	dc.SetRGB(0.86, 0.08, 0.24)
	dc.SetLineWidth(2)
	for i := range frame.X {
		px, py := r.toPixel(v, frame.X[i], frame.Y[i])
		if i == 0 {
			dc.MoveTo(px, py)
		} else {
			dc.LineTo(px, py)
		}
	}
	dc.Stroke()

	if r.counter {
		dc.SetRGB(0.9, 0.9, 0.9)
		dc.DrawStringAnchored(fmt.Sprintf("n = %d", frame.Degree),
			float64(r.width)/2, float64(r.height)-r.margin/2, 0.5, 0.5)
	}

	return dc
}

// RenderSequence produces every frame of the sequence and writes them as
// PNG files in outDir, which is created if missing. All frames share one
// viewport so the camera does not jump between degrees. File names embed
// the sequence ID and the frame index; the returned paths are in frame
// order.
func (r *Renderer) RenderSequence(seq *Sequence, outDir string) ([]string, error) {
	frames, err := seq.Frames()
	if err != nil {
		return nil, err
	}
	v, err := frameBounds(frames...)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	paths := make([]string, len(frames))
	for i, frame := range frames {
		path := filepath.Join(outDir, fmt.Sprintf("%s-f%04d.png", seq.ID(), i))
		if err := r.render(frame, v).SavePNG(path); err != nil {
			return nil, err
		}
		paths[i] = path
	}
	return paths, nil
}
