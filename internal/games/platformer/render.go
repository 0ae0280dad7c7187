package platformer

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

// Visual characters for rendering
const (
	GroundChar   = '█'
	MovingChar   = '▒'
	BouncingChar = '≈'
	BulletChar   = '•'
	HeartChar    = '♥'
	PlayerChar   = '▓'
)

// CoinFrames is the spin cycle of an uncollected coin.
var CoinFrames = []rune{'●', '◐', '│', '◑'}

// Leg glyph pairs of the player's run cycle.
var runLegs = []string{"/\\", "||", "\\/", "||"}

// Enemy glyphs by kind
var enemyGlyphs = map[levels.EnemyKind][2]rune{
	levels.EnemyPatrol:  {'▼', '▽'},
	levels.EnemyChaser:  {'◆', '◇'},
	levels.EnemyShooter: {'◉', '○'},
}

// HUD is the read-only status shown above the play field.
type HUD struct {
	Score          int
	RequiredScore  int
	HighScore      int
	Lives          int
	Level          int
	LevelName      string
	ElapsedSeconds float64
	Invincible     float64 // Seconds of invincibility left
	Kills          int
	Mode           Mode
}

// HUD returns the current status values.
func (g *Game) HUD() HUD {
	rate := float64(g.runtime.TickRate)
	return HUD{
		Score:          g.score,
		RequiredScore:  g.level.RequiredScore,
		HighScore:      max(g.highScore, g.score),
		Lives:          g.player.Lives,
		Level:          g.level.Number,
		LevelName:      g.level.Name,
		ElapsedSeconds: float64(g.tickCount) / rate,
		Invincible:     float64(g.player.Invincible) / rate,
		Kills:          g.kills,
		Mode:           g.mode,
	}
}

// viewport maps world units onto the cells below the HUD row.
type viewport struct {
	sx, sy float64
	ox, oy float64 // Shake offset in world units
	top    int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	return viewport{
		sx:  float64(dst.Width()) / g.cfg.World.Width,
		sy:  float64(dst.Height()-1) / g.cfg.World.Height,
		ox:  float64(g.effects.OffsetX),
		oy:  float64(g.effects.OffsetY),
		top: 1,
	}
}

// cell returns the cell containing the world point (x, y).
func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor((x + v.ox) * v.sx)), v.top + int(math.Floor((y+v.oy)*v.sy))
}

// rect returns the cells covered by a body, at least one cell in each axis.
func (v viewport) rect(b Body) core.Rect {
	x0, y0 := v.cell(b.X, b.Y)
	x1 := int(math.Ceil((b.Right() + v.ox) * v.sx))
	y1 := v.top + int(math.Ceil((b.Bottom()+v.oy)*v.sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.SetBackground(levels.Background(g.level.Background))
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorWhite)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorWhite)
		return
	}

	v := g.viewport(dst)
	g.renderFlash(dst)
	g.renderPlatforms(dst, v)
	g.renderCoins(dst, v)
	g.renderEnemies(dst, v)
	g.renderPlayer(dst, v)
	g.renderParticles(dst, v)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderFlash tints the play field while the damage flash is active.
func (g *Game) renderFlash(dst *core.Screen) {
	alpha := g.effects.FlashAlpha()
	if alpha == 0 {
		return
	}
	bg := core.ColorDarkRed
	if alpha > g.cfg.Effects.FlashAlpha/2 {
		bg = core.ColorRed
	}
	for y := 1; y < dst.Height(); y++ {
		for x := range dst.Width() {
			dst.Tint(x, y, bg)
		}
	}
}

func (g *Game) renderPlatforms(dst *core.Screen, v viewport) {
	for _, plat := range g.platforms {
		r := v.rect(plat.Body)
		glyph, color := GroundChar, core.ColorGreen
		switch plat.Kind {
		case levels.PlatformMoving:
			glyph, color = MovingChar, core.ColorBrown
		case levels.PlatformBouncing:
			glyph, color = BouncingChar, core.ColorYellow
		}
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				dst.SetColor(x, y, glyph, color)
			}
		}
	}
}

func (g *Game) renderCoins(dst *core.Screen, v viewport) {
	for _, c := range g.coins {
		x, y := v.cell(c.CenterX(), c.CenterY())
		if !c.Collected {
			dst.SetColor(x, y, CoinFrames[c.Frame()%len(CoinFrames)], c.Color())
			continue
		}
		glyph := '+'
		if c.Fade() < 0.5 {
			glyph = '·'
		}
		dst.SetColor(x, y, glyph, c.Color())
	}
}

func (g *Game) renderEnemies(dst *core.Screen, v viewport) {
	for _, e := range g.enemies {
		r := v.rect(e.Body)
		glyph := enemyGlyphs[e.Kind][e.Frame()%2]
		color := enemyColor(e)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				dst.SetColor(x, y, glyph, color)
			}
		}
		eye := r.X
		eyeGlyph := '<'
		if e.FacingRight {
			eye = r.Right() - 1
			eyeGlyph = '>'
		}
		dst.SetColor(eye, r.Y, eyeGlyph, core.ColorBrightWhite)

		for _, b := range e.Bullets {
			bx, by := v.cell(b.CenterX(), b.CenterY())
			dst.SetColor(bx, by, BulletChar, core.ColorBrightYellow)
		}
	}
}

func enemyColor(e *Enemy) core.Color {
	if e.Stunned > 0 && (e.Stunned/3)%2 == 0 {
		return core.ColorBrightWhite
	}
	switch e.Kind {
	case levels.EnemyChaser:
		return core.ColorMagenta
	case levels.EnemyShooter:
		return core.ColorOrange
	default:
		return core.ColorRed
	}
}

func (g *Game) renderPlayer(dst *core.Screen, v viewport) {
	p := g.player
	if !p.Visible() {
		return
	}
	r := v.rect(p.Body)
	color := core.ColorBlue
	if p.Invincible > 0 {
		color = core.ColorBrightCyan
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColor(x, y, PlayerChar, color)
		}
	}

	// Face on the top row, looking the way the player faces.
	face := r.X
	if p.FacingRight {
		face = r.Right() - 1
	}
	dst.SetColor(face, r.Y, '☻', core.ColorBrightWhite)

	if r.H < 2 {
		return
	}
	legs := "||"
	switch p.Anim {
	case AnimRun:
		legs = runLegs[p.Clip().Index()%len(runLegs)]
	case AnimJump:
		legs = "^^"
	}
	feet := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		dst.SetColor(x, feet, rune(legs[(x-r.X)%2]), color)
	}
}

func (g *Game) renderParticles(dst *core.Screen, v viewport) {
	for _, s := range g.systems {
		for _, pt := range s.Particles() {
			x, y := v.cell(pt.X, pt.Y)
			if y < v.top {
				continue
			}
			glyph := '·'
			switch {
			case pt.Alpha() < 0.35:
				glyph = '.'
			case pt.Size >= 3:
				glyph = '*'
			}
			dst.SetColor(x, y, glyph, pt.Color)
		}
	}
}

// renderHUD draws score, lives, level and time on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	h := g.HUD()
	for x := range dst.Width() {
		dst.SetCell(x, 0, core.Cell{Rune: ' ', Color: core.ColorWhite, Bg: core.ColorBlack})
	}

	score := fmt.Sprintf(" Score: %d/%d", h.Score, h.RequiredScore)
	dst.DrawTextColor(0, 0, score, core.ColorBrightYellow)

	lives := strings.Repeat(string(HeartChar), h.Lives)
	dst.DrawTextColor(utf8.RuneCountInString(score)+2, 0, lives, core.ColorBrightRed)

	title := fmt.Sprintf("%d: %s", h.Level, h.LevelName)
	if h.Invincible > 0 {
		title += fmt.Sprintf("  ★ %.1fs", h.Invincible)
	}
	dst.DrawTextCentered(0, title, core.ColorBrightWhite)

	right := fmt.Sprintf("Best: %d  %s ", h.HighScore, formatClock(h.ElapsedSeconds))
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(right), 0, right, core.ColorWhite)
}

// formatClock renders seconds as mm:ss.
func formatClock(secs float64) string {
	s := int(secs)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// renderOverlay draws the mode messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.mode {
	case ModePaused:
		g.drawCenteredBox(dst, "PAUSED", "P resume  R restart  B level menu", core.ColorBrightWhite)

	case ModeLevelComplete:
		subtitle := fmt.Sprintf("Score: %d  |  N next  R replay  B menu", g.score)
		g.drawCenteredBox(dst, "LEVEL COMPLETE!", subtitle, core.ColorBrightGreen)

	case ModeGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  R restart  B menu", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle, core.ColorBrightRed)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string, fg core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	r := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(r, core.Cell{Rune: ' ', Color: fg, Bg: core.ColorBlack})
	dst.DrawBox(r, fg)
	dst.DrawTextCentered(r.Y+1, title, fg)
	dst.DrawTextCentered(r.Y+3, subtitle, core.ColorWhite)
}
