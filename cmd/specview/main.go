// Command specview draws the windowed spectral analyser's bin
// magnitudes as a live bar graph, using ebiten for the draw loop (the
// same engine the teacher repository uses for its own video output)
// and x/image/font/basicfont for axis labels.
package main

import (
	"fmt"
	"image"
	"image/draw"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/zaynotley/dspgraph/dsp"
	"github.com/zaynotley/dspgraph/fourier"
)

const (
	sampleRate = 44100
	windowSize = 512
	screenW    = 640
	screenH    = 320
)

type view struct {
	osc   *dsp.Oscillator
	ft    *fourier.FourierTransform
	buf   []float64
	label *ebiten.Image
}

func newView() *view {
	b := dsp.NewBuilder(sampleRate)
	osc := b.Oscillator(dsp.Saw, 220, 0.8)
	return &view{
		osc:   osc,
		ft:    fourier.NewFourierTransform(windowSize, sampleRate, fourier.Hann),
		buf:   make([]float64, windowSize),
		label: renderLabel(fmt.Sprintf("saw 220Hz, %d-bin Hann window", windowSize)),
	}
}

// renderLabel rasterises s with basicfont onto a standard image.RGBA
// (ebiten.Image does not itself satisfy draw.Image), then wraps the
// result as an ebiten.Image for drawing.
func renderLabel(s string) *ebiten.Image {
	face := basicfont.Face7x13
	advance := font.MeasureString(face, s).Ceil()
	img := image.NewRGBA(image.Rect(0, 0, advance+2, 16))

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(1, 12),
	}
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	drawer.DrawString(s)

	return ebiten.NewImageFromImage(img)
}

func (v *view) Update() error {
	for i := 0; i < windowSize; i++ {
		s, _ := v.osc.Tick(1)
		v.buf[i] = float64(s)
	}
	return v.ft.Process(v.buf)
}

func (v *view) Draw(screen *ebiten.Image) {
	screen.Fill(ebitenColor{0, 0, 0, 255})

	bins := v.ft.Bins()
	n := len(bins) / 2 // Nyquist: only the first half is meaningful for real input
	barW := float64(screenW) / float64(n)

	for i := 0; i < n; i++ {
		mag := math.Hypot(real(bins[i]), imag(bins[i]))
		h := mag * screenH * 8
		if h > screenH {
			h = screenH
		}
		x := float64(i) * barW
		ebitenutil.DrawRect(screen, x, screenH-h, barW-1, h, ebitenColor{64, 200, 255, 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(8, screenH-24)
	screen.DrawImage(v.label, op)
}

func (v *view) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// ebitenColor satisfies color.Color with plain RGBA fields, avoiding a
// dependency on image/color's NRGBA rounding for this simple UI.
type ebitenColor struct{ R, G, B, A uint8 }

func (c ebitenColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("specview")
	if err := ebiten.RunGame(newView()); err != nil {
		log.Fatalf("specview: %v", err)
	}
}
