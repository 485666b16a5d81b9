package boatrunner

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/boat-runner/internal/core"
	"github.com/vovakirdan/boat-runner/internal/scene"
	"github.com/vovakirdan/boat-runner/internal/sim"
)

// Visual characters for rendering
const (
	WaterChar = '·'
	WaveChar  = '~'
	RockChar  = '▓'
	BoatChar  = '▀'
)

// Sea rendering: wave lines every quarter tile out to this many tiles.
const (
	waveLinesPerTile = 4
	seaTiles         = 6
)

// cellAspect is the height of a terminal cell over its width.
const cellAspect = 2

// viewport maps normalized device coordinates to screen cells.
type viewport struct {
	w, h  int
	flipY bool
}

// cell returns the screen cell of an NDC point. With flipY the projection
// already points Y down, so the row grows with ndc.y.
func (v viewport) cell(ndc mgl32.Vec3) (int, int) {
	x := int((ndc.X() + 1) / 2 * float32(v.w))
	var y int
	if v.flipY {
		y = int((ndc.Y() + 1) / 2 * float32(v.h))
	} else {
		y = int((1 - ndc.Y()) / 2 * float32(v.h))
	}
	return x, y
}

// project maps a local point of an entity to a screen cell.
func (v viewport) project(mvp mgl32.Mat4, local mgl32.Vec3) (int, int, bool) {
	ndc, ok := scene.Project(mvp, local)
	if !ok {
		return 0, 0, false
	}
	x, y := v.cell(ndc)
	return x, y, true
}

// Render draws the current scene into the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}
	aspect := float32(w) / float32(h*cellAspect)

	snap := g.sim.Snapshot()
	frame := g.builder.Build(snap, aspect)
	vp := frame.ViewProj()
	view := viewport{w: w, h: h, flipY: g.cfg.Camera.FlipY}

	var rocks []scene.EntityTransform
	var boat, sign *scene.EntityTransform
	for i := range frame.Entities {
		e := &frame.Entities[i]
		switch e.Kind {
		case scene.KindSea:
			g.drawSea(dst, view, vp.Mul4(e.Model))
		case scene.KindRock:
			rocks = append(rocks, *e)
		case scene.KindBoat:
			boat = e
		case scene.KindSign:
			sign = e
		}
	}

	// Far rocks first so near ones overdraw them.
	sort.Slice(rocks, func(i, j int) bool {
		return snap.Rocks[rocks[i].Lane].LongitudinalOffset > snap.Rocks[rocks[j].Lane].LongitudinalOffset
	})
	for _, r := range rocks {
		drawRock(dst, view, vp.Mul4(r.Model))
	}

	if boat != nil {
		drawBoat(dst, view, vp.Mul4(boat.Model), snap)
	}
	if sign != nil {
		drawSign(dst, view, vp.Mul4(sign.Model), snap)
	}

	g.drawHUD(dst, snap)
}

// drawSea fills the water below the far edge and draws scrolling wave lines.
// The sea model spans local x and z in [-1, 1]; lines further out repeat
// the tile.
func (g *Game) drawSea(dst *core.Screen, view viewport, mvp mgl32.Mat4) {
	scaleZ := float32(g.cfg.Sea.Scale[2])
	if scaleZ == 0 {
		return
	}
	step := float32(g.cfg.Sea.TileLength) / waveLinesPerTile / scaleZ

	horizon := dst.Height()
	lines := waveLinesPerTile * seaTiles
	for i := lines; i >= 0; i-- {
		z := -1 + float32(i)*step
		x0, y0, ok0 := view.project(mvp, mgl32.Vec3{-1, 0, z})
		x1, _, ok1 := view.project(mvp, mgl32.Vec3{1, 0, z})
		if !ok0 || !ok1 || y0 < 0 || y0 >= dst.Height() {
			continue
		}
		if y0 < horizon {
			horizon = core.Max(y0, 1)
		}
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		x0 = core.Clamp(x0, 0, dst.Width())
		x1 = core.Clamp(x1, 0, dst.Width())
		dst.DrawHLine(x0, y0, x1-x0, WaveChar, core.ColorFoam)
	}

	for y := horizon; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if dst.Get(x, y) == ' ' {
				dst.SetColored(x, y, WaterChar, core.ColorSea)
			}
		}
	}
}

// drawRock fills the screen bounds of the rock footprint and its top.
func drawRock(dst *core.Screen, view viewport, mvp mgl32.Mat4) {
	points := []mgl32.Vec3{
		{-1, 0, -1}, {1, 0, -1}, {1, 0, 1}, {-1, 0, 1},
		{0, 1.5, 0},
	}
	minX, minY := dst.Width(), dst.Height()
	maxX, maxY := -1, -1
	for _, p := range points {
		x, y, ok := view.project(mvp, p)
		if !ok {
			return
		}
		minX, maxX = core.Min(minX, x), core.Max(maxX, x)
		minY, maxY = core.Min(minY, y), core.Max(maxY, y)
	}
	r := core.RectFromCorners(minX, minY, maxX, maxY)
	dst.DrawRect(r.Intersect(core.NewRect(0, 0, dst.Width(), dst.Height())), RockChar, core.ColorRock)
}

// drawBoat draws the boat glyph at the projected boat origin. The hull
// tilts with the bank.
func drawBoat(dst *core.Screen, view viewport, mvp mgl32.Mat4, snap sim.Snapshot) {
	x, y, ok := view.project(mvp, mgl32.Vec3{})
	if !ok {
		return
	}

	color := core.ColorBoat
	if snap.State == sim.GameOver {
		color = core.ColorWreck
	}

	hull := `\` + string(BoatChar) + `/`
	switch {
	case snap.Boat.BankRotationDegrees > 0:
		hull = `/` + string(BoatChar) + `/`
	case snap.Boat.BankRotationDegrees < 0:
		hull = `\` + string(BoatChar) + `\`
	}
	dst.SetColored(x, y-1, '▲', color)
	dst.DrawTextColored(x-1, y, hull, color)
}

// drawSign draws the message board framed by the menu camera.
func drawSign(dst *core.Screen, view viewport, mvp mgl32.Mat4, snap sim.Snapshot) {
	x0, y0, ok0 := view.project(mvp, mgl32.Vec3{-1, 1, 0})
	x1, y1, ok1 := view.project(mvp, mgl32.Vec3{1, -1, 0})
	if !ok0 || !ok1 {
		return
	}

	title, lines := "BOAT RUNNER", []string{"steer with A/D or arrows", "press SPACE to start"}
	if snap.State == sim.GameOver {
		title = "CRASHED"
		lines = []string{fmt.Sprintf("distance %d", int(snap.Distance)), "press R to reset"}
	}

	r := core.RectFromCorners(x0, y0, x1, y1)
	textW := len([]rune(title))
	for _, l := range lines {
		textW = core.Max(textW, len([]rune(l)))
	}
	// Grow around the center until the text fits.
	if need := textW + 4; r.W < need {
		r.X -= (need - r.W) / 2
		r.W = need
	}
	if need := len(lines) + 4; r.H < need {
		r.Y -= (need - r.H) / 2
		r.H = need
	}

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorSign)

	cy := r.Y + (r.H-len(lines)-2)/2
	centered(dst, r, cy, title, core.ColorSign)
	for i, l := range lines {
		centered(dst, r, cy+2+i, l, core.ColorHUD)
	}
}

func centered(dst *core.Screen, r core.Rect, y int, text string, c core.Color) {
	x := r.X + (r.W-len([]rune(text)))/2
	dst.DrawTextColored(x, y, text, c)
}

// drawHUD draws the status line and key help.
func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	left := fmt.Sprintf(" %s  dist %d ", stateLabel(snap.State), int(snap.Distance))
	dst.DrawTextColored(1, 0, left, core.ColorHUD)

	right := fmt.Sprintf(" spd %.2f  run %d ", snap.Speed, snap.Runs)
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorHUD)

	help := "a/d steer  space start  r reset  q quit"
	dst.DrawTextCentered(dst.Height()-1, help, core.ColorBorder)
}

func stateLabel(s sim.GameState) string {
	switch s {
	case sim.Running:
		return "RUNNING"
	case sim.GameOver:
		return "GAME OVER"
	default:
		return "READY"
	}
}
