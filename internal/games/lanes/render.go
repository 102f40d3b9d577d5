package lanes

import (
	"fmt"

	"github.com/vovakirdan/lanerunner/internal/core"
	"github.com/vovakirdan/lanerunner/internal/runner"
)

// Visual characters for rendering
const (
	PlayerChar   = '▶'
	RockChar     = '▓'
	GateChar     = '▒'
	CoinChar     = 'o'
	MultChar     = 'x'
	SpeedChar    = '»'
	CubeChar     = '■'
	WallChar     = '═'
	LaneMarkChar = '·'
)

type glyph struct {
	r     rune
	color core.Color
}

var glyphs = map[runner.Tag]glyph{
	runner.TagObstacle:        {RockChar, core.ColorRed},
	runner.TagSpawnObstacle:   {GateChar, core.ColorOrange},
	runner.TagCoin:            {CoinChar, core.ColorYellow},
	runner.TagScoreMultiplier: {MultChar, core.ColorMagenta},
	runner.TagSpeed:           {SpeedChar, core.ColorCyan},
	runner.TagCube:            {CubeChar, core.ColorBlue},
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	top := hudRows - 1
	bottom := hudRows + g.trackRows()
	dst.DrawHLine(0, top, dst.Width(), WallChar)
	dst.DrawHLine(0, bottom, dst.Width(), WallChar)
	g.drawLaneMarks(dst)

	g.engine.World.Each(func(obj *runner.Object) {
		gl, ok := glyphs[obj.Tag]
		if !ok {
			return
		}
		pos, _ := g.engine.World.Position(obj.ID)
		g.fillBox(dst, core.NewBox(pos, obj.Size), gl)
	})

	if g.State() != runner.StateMenu {
		g.fillBox(dst, g.engine.Player.Box(), glyph{PlayerChar, core.ColorGreen})
	}

	g.drawHUD(dst)
	g.drawPanels(dst)
}

// drawLaneMarks dots the lane centers every few cells, scrolling with the track.
func (g *Game) drawLaneMarks(dst *core.Screen) {
	shift := int(g.tick/4) % 6
	for _, y := range laneY {
		_, row := g.toCell(core.V2(0, y))
		for x := 6 - shift; x < dst.Width(); x += 6 {
			dst.SetColor(x, row, LaneMarkChar, core.ColorGray)
		}
	}
}

func (g *Game) fillBox(dst *core.Screen, b core.Box, gl glyph) {
	x0, y0 := g.toCell(core.V2(b.Center.X-b.Half.X, b.Center.Y+b.Half.Y))
	x1, y1 := g.toCell(core.V2(b.Center.X+b.Half.X, b.Center.Y-b.Half.Y))
	// Always cover at least one cell.
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColor(x, y, gl.r, gl.color)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	if g.State() == runner.StateMenu {
		dst.DrawTextColor(2, 0, " "+Title+" ", core.ColorBrightWhite)
	} else {
		dst.DrawTextColor(2, 0, " "+g.currentScore+" ", core.ColorBrightWhite)
	}

	if err := g.engine.Err(); err != nil {
		dst.DrawTextColor(24, 0, " "+err.Error()+" ", core.ColorRed)
		return
	}

	lv := g.engine.Level
	status := fmt.Sprintf(" Spd: %.1f  Mult: x%.1f ", lv.MoveSpeed(), g.engine.Scores.Multiplier())
	if !g.engine.Player.ShouldTrace() {
		status = " HOLD " + status
	}
	dst.DrawText(dst.Width()-len([]rune(status))-2, 0, status)
}

func (g *Game) drawPanels(dst *core.Screen) {
	p := g.panels
	switch {
	case p.GameOver:
		g.drawCenteredMessage(dst, "GAME OVER", g.finalScore+"  |  "+g.highScore, "Enter/R: restart  M: menu")
	case p.Pause:
		g.drawCenteredMessage(dst, "PAUSED", "P/Esc: resume  R: restart  M: menu")
	case p.Leaderboard:
		g.drawCenteredMessage(dst, "LEADERBOARD", "M: back")
	case p.Home:
		hs := fmt.Sprintf("High Score: %d", g.engine.Scores.HighScore())
		g.drawCenteredMessage(dst, Title, hs, "Enter: start  L: leaderboard  Q: quit")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := 4 + len(lines)
	boxX := core.Clamp((w-boxW)/2, 0, w)
	boxY := core.Clamp((h-boxH)/2, 0, h)
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCenteredColor(boxY+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l)
	}
}
