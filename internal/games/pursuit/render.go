package pursuit

import (
	"fmt"

	"github.com/vovakirdan/tui-pursuit/internal/core"
)

// Render draws the game to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall || g.engine == nil {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	snap := g.engine.Snapshot()

	g.renderFrame(dst)

	for _, obs := range snap.Obstacles {
		g.set(dst, obs, '#', core.ColorGray)
	}

	for _, t := range snap.Tokens {
		if t.Collected {
			continue
		}
		g.set(dst, t.Pos, '*', core.ColorBrightYellow)
	}

	for _, en := range snap.Enemies {
		if en.Alerted {
			g.set(dst, en.Pos, 'E', core.ColorBrightRed)
		} else {
			g.set(dst, en.Pos, 'e', core.ColorRed)
		}
	}

	if snap.State != StateLost {
		g.set(dst, snap.Player.Pos, '@', core.ColorBrightGreen)
	} else {
		g.set(dst, snap.Player.Pos, 'X', core.ColorBrightRed)
	}

	switch {
	case snap.State == StateWon:
		g.renderOverlay(dst, "You escaped!", fmt.Sprintf("Final Score: %d", g.score))
	case snap.State == StateLost:
		g.renderOverlay(dst, "Caught!", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.waveFlash > 0:
		text := fmt.Sprintf("Wave %d incoming!", g.latestWave)
		dst.DrawTextColored((dst.Width()-len(text))/2, g.mapOffsetY-1, text, core.ColorBrightRed)
	}
}

// set draws a rune at a world position translated into screen space.
func (g *Game) set(dst *core.Screen, p Position, r rune, c core.Color) {
	dst.SetColored(g.mapOffsetX+p.X, g.mapOffsetY+p.Y, r, c)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.engine != nil {
		snap := g.engine.Snapshot()
		hud = fmt.Sprintf(" Grid Pursuit | Score: %d  Tokens: %d/%d  Wave: %d  Moves: %d  Enemies: %d",
			g.score, snap.Player.Tokens, snap.Player.TokensToWin, snap.Wave, snap.Player.Moves, len(snap.Enemies))
	} else {
		hud = " Grid Pursuit"
	}

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderFrame draws the border wall around the playable interior.
func (g *Game) renderFrame(dst *core.Screen) {
	frame := core.NewRect(g.mapOffsetX, g.mapOffsetY, g.world.Width, g.world.Height)
	for x := frame.X; x < frame.Right(); x++ {
		dst.SetColored(x, frame.Y, '█', core.ColorGray)
		dst.SetColored(x, frame.Bottom()-1, '█', core.ColorGray)
	}
	for y := frame.Y; y < frame.Bottom(); y++ {
		dst.SetColored(frame.X, y, '█', core.ColorGray)
		dst.SetColored(frame.Right()-1, y, '█', core.ColorGray)
	}
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
