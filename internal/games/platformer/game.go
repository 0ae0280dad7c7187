package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/particles"
)

// Mode is the session state machine.
type Mode int

const (
	ModePlaying Mode = iota
	ModePaused
	ModeLevelComplete
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeLevelComplete:
		return "level_complete"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game is the session orchestrator. It owns every entity, timer and particle
// system of the running level.
type Game struct {
	opts     Options
	catalog  *levels.Catalog
	audio    Audio
	progress Progress

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.PlatformerConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	// Level entities
	level     levels.Level
	player    *Player
	platforms []*Platform
	enemies   []*Enemy
	coins     []*Coin
	systems   []*particles.System
	effects   Effects

	// Rider state
	riding        *Platform
	bouncePending bool

	// Session state
	mode       Mode
	score      int
	highScore  int
	tickCount  int
	kills      int
	backToMenu bool

	// Layout
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game. Reset must be called before the first Step.
func New(opts Options) *Game {
	g := &Game{opts: opts, audio: opts.Audio, progress: opts.Progress, catalog: opts.Levels}
	if g.audio == nil {
		g.audio = nopAudio{}
	}
	if g.progress == nil {
		g.progress = nopProgress{}
	}
	if g.catalog == nil {
		g.catalog = levels.Active()
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Reset loads the tuning and (re)starts the level selected in Options.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = core.DefaultConfig().TickRate
	}

	g.cfg = loadConfig(g.opts)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness

	g.minScreenW = 40
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.loadLevel(g.opts.Level)
}

// Resize updates the layout after a terminal resize without touching the
// simulation.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// loadLevel builds the entities of level n and resets the session state.
func (g *Game) loadLevel(n int) {
	g.level = g.catalog.Get(n)
	cfg := g.cfg

	g.player = NewPlayer(g.level.Start.X, g.level.Start.Y, cfg)

	g.platforms = make([]*Platform, 0, len(g.level.Platforms))
	for _, spec := range g.level.Platforms {
		g.platforms = append(g.platforms, NewPlatform(spec, cfg.Platforms))
	}
	g.coins = make([]*Coin, 0, len(g.level.Coins))
	for _, spec := range g.level.Coins {
		g.coins = append(g.coins, NewCoin(spec, cfg.Coins))
	}
	g.enemies = make([]*Enemy, 0, len(g.level.Enemies))
	for _, spec := range g.level.Enemies {
		g.enemies = append(g.enemies, NewEnemy(spec, cfg.Enemies))
	}

	g.systems = nil
	g.effects = Effects{cfg: cfg.Effects}
	g.riding = nil
	g.bouncePending = false

	g.mode = ModePlaying
	g.score = 0
	g.kills = 0
	g.tickCount = 0
	g.backToMenu = false
	g.highScore = g.progress.HighScore()

	g.audio.PlayMusic()
}

// Restart replays the current level from scratch.
func (g *Game) Restart() {
	g.loadLevel(g.level.Number)
}

// NextLevel starts the level after the current one, wrapping to the first.
func (g *Game) NextLevel() {
	next := g.level.Number + 1
	if next > g.catalog.Count() {
		next = 1
	}
	g.loadLevel(next)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.mode {
	case ModePaused:
		switch {
		case in.Has(core.ActionPause):
			g.mode = ModePlaying
			g.audio.PlayMusic()
		case in.Has(core.ActionRestart):
			g.Restart()
		case in.Has(core.ActionBack), in.Has(core.ActionMenu):
			g.backToMenu = true
		}
		return core.StepResult{State: g.State()}

	case ModeLevelComplete:
		g.updateEffects()
		switch {
		case in.Has(core.ActionNext), in.Has(core.ActionConfirm):
			g.NextLevel()
		case in.Has(core.ActionRestart):
			g.Restart()
		case in.Has(core.ActionBack), in.Has(core.ActionMenu):
			g.backToMenu = true
		}
		return core.StepResult{State: g.State()}

	case ModeGameOver:
		g.updateEffects()
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			g.Restart()
		case in.Has(core.ActionBack), in.Has(core.ActionMenu):
			g.backToMenu = true
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) || in.Has(core.ActionMenu) {
		g.mode = ModePaused
		g.audio.StopMusic()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionRestart) {
		g.Restart()
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)
	g.updateWorld()
	g.resolveInteractions()
	g.checkFall()
	g.updateTimers()
	g.updateEffects()
	g.tickCount++
	g.evaluate()

	return core.StepResult{State: g.State()}
}

// applyInput turns the held actions into player velocity.
func (g *Game) applyInput(in core.InputFrame) {
	p := g.player
	p.Stop()
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		p.MoveLeft()
	case right && !left:
		p.MoveRight()
	}

	if g.bouncePending {
		g.bouncePending = false
		if p.launch(g.cfg.Physics.BouncePower) {
			g.onJump()
		}
	}
	if in.Has(core.ActionJump) && p.Jump() {
		g.onJump()
	}
}

// onJump emits the jump dust at the player's feet.
func (g *Game) onJump() {
	p := g.player
	g.spawn(particles.Jump(g.rng, p.CenterX(), p.Bottom()))
	g.audio.PlaySound(SoundJump)
}

// updateWorld advances platforms, coins, the player and enemies, then
// resolves the player against the platforms.
func (g *Game) updateWorld() {
	p := g.player
	world := g.cfg.World

	for _, plat := range g.platforms {
		plat.Update()
	}
	if g.riding != nil && p.OnGround {
		p.X += g.riding.DX
	}
	for _, c := range g.coins {
		c.Update()
	}

	p.Update(world, g.cfg.Physics)

	scale := g.difficulty.SpeedScale(g.score, g.tickCount)
	for _, e := range g.enemies {
		e.Update(p, world, scale)
	}

	ground := ResolvePlatforms(p, g.platforms)
	p.ClampToWorld(world)

	g.riding = nil
	if ground != nil {
		switch ground.Kind {
		case levels.PlatformMoving:
			g.riding = ground
		case levels.PlatformBouncing:
			g.bouncePending = true
		}
	}
	p.Animate()
}

// updateTimers counts down invincibility.
func (g *Game) updateTimers() {
	p := g.player
	if p.Invincible > 0 {
		p.Invincible--
		p.Flash++
	} else {
		p.Flash = 0
	}
}

// updateEffects advances shake, flash and particles and drops finished
// systems and coins.
func (g *Game) updateEffects() {
	g.effects.Update(g.rng)
	g.systems = particles.UpdateAll(g.systems)

	alive := g.coins[:0]
	for _, c := range g.coins {
		if !c.Finished() {
			alive = append(alive, c)
		}
	}
	for i := len(alive); i < len(g.coins); i++ {
		g.coins[i] = nil
	}
	g.coins = alive
}

// evaluate checks for game over and level completion.
func (g *Game) evaluate() {
	switch {
	case g.player.Lives <= 0:
		g.endGame()
	case len(g.coins) == 0 && g.score >= g.level.RequiredScore:
		g.completeLevel()
	}
}

func (g *Game) endGame() {
	g.mode = ModeGameOver
	g.audio.StopMusic()
	g.recordHighScore()
	g.progress.RecordRun(g.level.Number, g.score, false)
}

func (g *Game) completeLevel() {
	g.mode = ModeLevelComplete
	g.spawn(particles.Celebration(g.rng, g.cfg.World.Width/2, g.cfg.World.Height/2))
	g.audio.StopMusic()
	g.audio.PlaySound(SoundWin)
	g.progress.UnlockLevel(g.level.Number)
	g.recordHighScore()
	g.progress.RecordRun(g.level.Number, g.score, true)
}

// recordHighScore persists the score when it beats the best known score.
func (g *Game) recordHighScore() {
	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	g.progress.SaveHighScore(g.score)
}

func (g *Game) spawn(s *particles.System) {
	g.systems = append(g.systems, s)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.score,
		Level:         g.level.Number,
		GameOver:      g.mode == ModeGameOver,
		Paused:        g.mode == ModePaused,
		LevelComplete: g.mode == ModeLevelComplete,
		BackToMenu:    g.backToMenu,
	}
}

// Mode returns the session mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Level returns the descriptor of the running level.
func (g *Game) Level() levels.Level {
	return g.level
}

// Player returns the player.
func (g *Game) Player() *Player {
	return g.player
}

// SetVolume forwards a volume change to the audio collaborator.
func (g *Game) SetVolume(v float64) {
	g.audio.SetVolume(v)
}
