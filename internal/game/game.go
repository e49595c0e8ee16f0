// Package game runs the chart in an ebiten window.
package game

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/pie-chart/internal/anim"
	"github.com/iburimskiy/pie-chart/internal/chart"
	"github.com/iburimskiy/pie-chart/internal/config"
	"github.com/iburimskiy/pie-chart/internal/render"
)

const statusBarHeight = 24

// Game draws one animated chart centered in the window.
type Game struct {
	log *zap.Logger

	// chart
	spec   chart.Spec
	size   chart.Size
	driver *anim.Driver

	// viz
	face       text.Face
	background *ebiten.Image
	canvas     screenCanvas

	// state
	elapsed time.Duration
	settled bool
	lastErr error
}

// New validates spec and prepares a game whose slices grow from zero.
func New(spec chart.Spec, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, errors.Wrap(err, "load label font")
	}

	g := &Game{
		log:    log,
		size:   chart.Size{Width: config.ChartSize, Height: config.ChartSize},
		driver: anim.NewDriver(config.SweepDuration, anim.FastOutSlowIn),
		face:   &text.GoTextFace{Source: src, Size: config.LabelFontSize},
	}
	if err := g.SetSpec(spec); err != nil {
		return nil, err
	}
	return g, nil
}

// SetSpec swaps the chart data. Slices whose share changed animate from
// their current sweep to the new one; the rest stay put.
func (g *Game) SetSpec(spec chart.Spec) error {
	sweeps, err := chart.Sweeps(spec)
	if err != nil {
		return err
	}
	// Arrange needs a frame, so reject sizes and holes it cannot lay out now.
	if _, err := chart.NewFrame(g.size, spec.HoleFraction); err != nil {
		return err
	}
	g.spec = spec
	g.lastErr = nil
	g.driver.SetTargets(sweeps)
	g.settled = g.driver.Settled()
	g.log.Debug("chart data set",
		zap.Int("slices", len(spec.Slices)),
		zap.Stringer("mode", spec.Mode()),
		zap.Float64s("sweeps", sweeps),
	)
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.step(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// step advances the animation by one frame of length dt.
func (g *Game) step(dt time.Duration) {
	g.elapsed += dt
	if g.settled {
		return
	}
	if !g.driver.Advance(dt) {
		g.settled = true
		g.log.Info("entrance animation settled", zap.Duration("elapsed", g.elapsed))
	}
}

// segments lays the chart out at the current animated sweeps.
func (g *Game) segments() ([]chart.ArcSegment, error) {
	return chart.Arrange(g.spec, g.driver.Values(), g.size)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawChart(screen)
	g.drawStatus(screen)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	if g.background == nil {
		g.background = ebiten.NewImage(config.WindowWidth, config.WindowHeight)
		for y := 0; y < config.WindowHeight; y++ {
			c := lerpColor(config.BackgroundTop, config.BackgroundBottom, float64(y)/config.WindowHeight)
			vector.DrawFilledRect(g.background, 0, float32(y), config.WindowWidth, 1, c, false)
		}
	}
	screen.DrawImage(g.background, nil)
}

// chartLayout returns the frame and segments to draw this frame. A failure is
// kept for the status line until a later layout succeeds.
func (g *Game) chartLayout() (chart.Frame, []chart.ArcSegment, bool) {
	frame, err := chart.NewFrame(g.size, g.spec.HoleFraction)
	if err == nil {
		var segs []chart.ArcSegment
		if segs, err = g.segments(); err == nil {
			g.lastErr = nil
			return frame, segs, true
		}
	}
	if g.lastErr == nil {
		g.log.Error("layout failed", zap.Error(err))
	}
	g.lastErr = err
	return chart.Frame{}, nil, false
}

func (g *Game) drawChart(screen *ebiten.Image) {
	frame, segs, ok := g.chartLayout()
	if !ok {
		return
	}

	g.canvas.dst = screen
	g.canvas.face = g.face
	g.canvas.offsetX = (config.WindowWidth - g.size.Width) / 2
	g.canvas.offsetY = (config.WindowHeight - g.size.Height) / 2
	render.Draw(&g.canvas, frame, segs, config.LabelColor)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.WindowWidth, statusBarHeight, color.RGBA{R: 30, G: 34, B: 44, A: 220}, false)

	status := fmt.Sprintf("%s chart, %d slices", g.spec.Mode(), len(g.spec.Slices))
	if !g.settled {
		status += " - animating"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 4)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
