package platformer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

type recordingAudio struct {
	sounds []string
	music  int
	stops  int
	volume float64
}

func (a *recordingAudio) PlaySound(name string) { a.sounds = append(a.sounds, name) }
func (a *recordingAudio) PlayMusic()            { a.music++ }
func (a *recordingAudio) StopMusic()            { a.stops++ }
func (a *recordingAudio) SetVolume(v float64)   { a.volume = v }

func (a *recordingAudio) count(name string) int {
	n := 0
	for _, s := range a.sounds {
		if s == name {
			n++
		}
	}
	return n
}

type run struct {
	level, score int
	completed    bool
}

type recordingProgress struct {
	high     int
	saved    []int
	unlocked []int
	runs     []run
}

func (p *recordingProgress) HighScore() int { return p.high }
func (p *recordingProgress) SaveHighScore(score int) {
	p.saved = append(p.saved, score)
	p.high = score
}
func (p *recordingProgress) UnlockLevel(completed int) { p.unlocked = append(p.unlocked, completed) }
func (p *recordingProgress) RecordRun(level, score int, completed bool) {
	p.runs = append(p.runs, run{level, score, completed})
}

func newTestGame(t *testing.T, level int) (*Game, *recordingAudio, *recordingProgress) {
	t.Helper()
	cfg := testConfig()
	audio := &recordingAudio{}
	progress := &recordingProgress{}
	g := New(Options{
		Level:    level,
		Config:   &cfg,
		Levels:   levels.Default(),
		Audio:    audio,
		Progress: progress,
	})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g, audio, progress
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func TestNewGame(t *testing.T) {
	g, audio, _ := newTestGame(t, 1)

	if g.ID() != "platformer" {
		t.Errorf("ID = %q", g.ID())
	}
	if g.Mode() != ModePlaying {
		t.Errorf("mode = %v, want playing", g.Mode())
	}
	if g.Player().Lives != 3 {
		t.Errorf("lives = %d, want 3", g.Player().Lives)
	}
	if g.Level().Number != 1 {
		t.Errorf("level = %d, want 1", g.Level().Number)
	}
	if audio.music != 1 {
		t.Errorf("music should start with the level, got %d", audio.music)
	}
}

func TestOutOfRangeLevelStartsAtOne(t *testing.T) {
	for _, n := range []int{0, -1, 99} {
		g, _, _ := newTestGame(t, n)
		if g.Level().Number != 1 {
			t.Errorf("level %d: started level %d, want 1", n, g.Level().Number)
		}
	}
}

func TestPlayerSettlesOnStartPlatform(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	g.enemies = nil

	g.Step(idle())

	p := g.Player()
	if !p.OnGround {
		t.Fatal("player should land on the start platform in the first tick")
	}
	for _, plat := range g.platforms {
		if p.Rect().Overlaps(plat.Rect()) {
			t.Errorf("player overlaps platform %+v", plat.Rect())
		}
	}
}

func TestHurtFromLeft(t *testing.T) {
	g, audio, _ := newTestGame(t, 1)
	p := g.Player()
	aggressor := Body{X: p.X - 30, Y: p.Y, W: 40, H: 40}

	g.hurt(&aggressor)

	if p.Lives != 2 {
		t.Errorf("lives = %d, want 2", p.Lives)
	}
	if p.KnockbackVX <= 0 {
		t.Errorf("knockback = %v, want positive (away from the left)", p.KnockbackVX)
	}
	if p.VY != g.cfg.Combat.KnockbackUp {
		t.Errorf("VY = %v, want %v", p.VY, g.cfg.Combat.KnockbackUp)
	}
	if p.Invincible != 90 {
		t.Errorf("invincible = %d, want 90", p.Invincible)
	}
	if g.effects.FlashAlpha() != 150 {
		t.Errorf("flash alpha = %d, want 150", g.effects.FlashAlpha())
	}
	if g.effects.Shake != g.cfg.Effects.DamageShake {
		t.Errorf("shake = %d, want %d", g.effects.Shake, g.cfg.Effects.DamageShake)
	}
	if audio.count(SoundHurt) != 1 {
		t.Errorf("hurt sound played %d times", audio.count(SoundHurt))
	}
	if len(g.systems) != 1 {
		t.Errorf("hit particles not spawned")
	}
}

func TestHurtFromRight(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	p := g.Player()
	aggressor := Body{X: p.X + 30, Y: p.Y, W: 40, H: 40}

	g.hurt(&aggressor)

	if p.KnockbackVX >= 0 {
		t.Errorf("knockback = %v, want negative", p.KnockbackVX)
	}
}

// placeEnemy replaces the level's enemies with one enemy at (x, y).
func placeEnemy(g *Game, kind levels.EnemyKind, x, y float64) *Enemy {
	e := NewEnemy(levels.EnemySpec{X: x, Y: y, Kind: kind}, g.cfg.Enemies)
	g.enemies = []*Enemy{e}
	return e
}

func TestEnemyContactAndInvincibility(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	g.enemies = nil
	g.Step(idle()) // settle at (100, 390)

	placeEnemy(g, levels.EnemyPatrol, 120, 410)
	g.Step(idle())

	p := g.Player()
	if p.Lives != 2 {
		t.Fatalf("lives = %d, want 2 after touching the enemy", p.Lives)
	}
	if p.Invincible != g.cfg.Player.Invincibility-1 {
		t.Errorf("invincible = %d, want %d", p.Invincible, g.cfg.Player.Invincibility-1)
	}
	if p.KnockbackVX >= 0 {
		t.Errorf("enemy on the right should push left, knockback = %v", p.KnockbackVX)
	}

	// Invincibility only counts down and no life is lost while it lasts.
	prev := p.Invincible
	for p.Invincible > 0 {
		g.Step(idle())
		if p.Invincible != prev-1 {
			t.Fatalf("invincible went from %d to %d", prev, p.Invincible)
		}
		if p.Lives != 2 {
			t.Fatalf("lost a life while invincible")
		}
		prev = p.Invincible
	}
}

func TestInvinciblePlayerIgnoresEnemies(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	g.enemies = nil
	g.Step(idle())

	p := g.Player()
	p.Invincible = 50
	placeEnemy(g, levels.EnemyPatrol, 120, 410)
	g.Step(idle())

	if p.Lives != 3 {
		t.Errorf("lives = %d, want 3 while invincible", p.Lives)
	}
}

func TestStompKillsEnemy(t *testing.T) {
	g, audio, _ := newTestGame(t, 1)
	e := placeEnemy(g, levels.EnemyPatrol, 300, 400)

	p := g.Player()
	p.X, p.Y = 300, 345
	p.VY = 5
	g.Step(idle())

	if len(g.enemies) != 0 {
		t.Fatalf("stomped enemy should be removed, enemies=%d health=%d", len(g.enemies), e.Health)
	}
	if g.score != g.cfg.Combat.KillBonus {
		t.Errorf("score = %d, want %d", g.score, g.cfg.Combat.KillBonus)
	}
	if p.Lives != 3 {
		t.Errorf("stomp should not hurt, lives = %d", p.Lives)
	}
	if p.VY >= 0 {
		t.Errorf("player should bounce off the enemy, VY = %v", p.VY)
	}
	if audio.count(SoundEnemyDeath) != 1 {
		t.Errorf("enemy_death played %d times", audio.count(SoundEnemyDeath))
	}
}

func TestStompedChaserSurvivesWithoutHurting(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	e := placeEnemy(g, levels.EnemyChaser, 300, 400)

	p := g.Player()
	p.X, p.Y = 300, 345
	p.VY = 5
	g.Step(idle())

	if len(g.enemies) != 1 || e.Health != 1 {
		t.Fatalf("chaser should survive one stomp, enemies=%d health=%d", len(g.enemies), e.Health)
	}
	for range stunTicks {
		g.Step(idle())
	}
	if p.Lives != 3 {
		t.Errorf("stomping a chaser should not cost a life, lives = %d", p.Lives)
	}
}

func TestStunnedChaserHurtsOnSideContact(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	g.enemies = nil
	g.Step(idle())

	e := placeEnemy(g, levels.EnemyChaser, 120, 410)
	e.Stunned = stunTicks
	g.Step(idle())

	if p := g.Player(); p.Lives != 2 {
		t.Errorf("walking into a stunned chaser should hurt, lives = %d", p.Lives)
	}
}

func TestStunnedChaserIgnoredWhileRising(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	g.enemies = nil
	g.Step(idle())

	p := g.Player()
	e := placeEnemy(g, levels.EnemyChaser, p.X, p.Y)
	e.Stunned = stunTicks
	p.OnGround = false
	p.VY = g.cfg.Combat.StompBounce
	g.resolveEnemies()

	if p.Lives != 3 {
		t.Errorf("rising off a stunned chaser should not hurt, lives = %d", p.Lives)
	}
}

func TestStompHitsEveryEnemyUnderfoot(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	first := NewEnemy(levels.EnemySpec{X: 300, Y: 400, Kind: levels.EnemyPatrol}, g.cfg.Enemies)
	second := NewEnemy(levels.EnemySpec{X: 310, Y: 400, Kind: levels.EnemyPatrol}, g.cfg.Enemies)
	g.enemies = []*Enemy{first, second}

	p := g.Player()
	p.X, p.Y = 300, 345
	p.VY = 5
	p.OnGround = false
	g.resolveEnemies()

	if len(g.enemies) != 0 {
		t.Errorf("both enemies should be stomped, %d left", len(g.enemies))
	}
	if p.Lives != 3 {
		t.Errorf("a double stomp should not hurt, lives = %d", p.Lives)
	}
	if g.kills != 2 {
		t.Errorf("kills = %d, want 2", g.kills)
	}
}

func TestBulletHitRemovesBullet(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	g.enemies = nil
	g.Step(idle())

	p := g.Player()
	e := placeEnemy(g, levels.EnemyShooter, 700, 100)
	e.Cooldown = 1000
	e.Bullets = []*Bullet{{Body: Body{X: p.X - 4, Y: p.CenterY(), W: 8, H: 8}, Lifetime: 100}}

	g.Step(idle())

	if len(e.Bullets) != 0 {
		t.Errorf("bullet should be removed on hit, bullets=%d", len(e.Bullets))
	}
	if p.Lives != 2 {
		t.Errorf("lives = %d, want 2", p.Lives)
	}
	if p.KnockbackVX <= 0 {
		t.Errorf("bullet from the left should push right, knockback = %v", p.KnockbackVX)
	}
}

func TestCoinsCollectedWhileInvincible(t *testing.T) {
	g, audio, _ := newTestGame(t, 1)
	g.enemies = nil
	p := g.Player()
	p.Invincible = 60

	coin := g.coins[0]
	p.X, p.Y = coin.X, coin.Y
	g.Step(idle())

	if !coin.Collected {
		t.Fatal("coin should be collected while invincible")
	}
	if g.score != 10 {
		t.Errorf("score = %d, want 10", g.score)
	}
	if audio.count(SoundCoin) != 1 {
		t.Errorf("coin sound played %d times", audio.count(SoundCoin))
	}

	g.Step(idle())
	if g.score != 10 {
		t.Errorf("coin counted twice, score = %d", g.score)
	}
}

func TestFallRespawnsAtStart(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	g.cfg.World.FloorClamp = false
	g.enemies = nil
	g.platforms = nil

	p := g.Player()
	p.Y = g.cfg.World.Height + g.cfg.World.FallMargin
	p.VX = 5
	g.Step(idle())

	if p.Lives != 2 {
		t.Errorf("lives = %d, want 2 after falling", p.Lives)
	}
	if p.X != g.level.Start.X || p.Y != g.level.Start.Y {
		t.Errorf("player at (%v, %v), want start (%v, %v)", p.X, p.Y, g.level.Start.X, g.level.Start.Y)
	}
	if p.KnockbackVX != 0 || p.VX != 0 {
		t.Errorf("fall should not knock back, knockback=%v vx=%v", p.KnockbackVX, p.VX)
	}
}

func TestFallWhileInvincibleKeepsLives(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	g.cfg.World.FloorClamp = false
	g.enemies = nil
	g.platforms = nil

	p := g.Player()
	p.Invincible = 50
	p.Y = g.cfg.World.Height + g.cfg.World.FallMargin
	g.Step(idle())

	if p.Lives != 3 {
		t.Errorf("lives = %d, want 3 after falling while invincible", p.Lives)
	}
	if p.Invincible != 49 {
		t.Errorf("invincible = %d, want 49", p.Invincible)
	}
	if p.X != g.level.Start.X || p.Y != g.level.Start.Y {
		t.Errorf("player at (%v, %v), want start (%v, %v)", p.X, p.Y, g.level.Start.X, g.level.Start.Y)
	}
}

func TestGameOver(t *testing.T) {
	g, audio, progress := newTestGame(t, 2)
	progress.high = 10
	g.highScore = 10
	g.score = 40
	g.Player().Lives = 1

	g.hurt(nil)
	g.evaluate()

	if g.Mode() != ModeGameOver {
		t.Fatalf("mode = %v, want game over", g.Mode())
	}
	if !g.State().GameOver {
		t.Error("state should report game over")
	}
	if len(progress.saved) != 1 || progress.saved[0] != 40 {
		t.Errorf("high score saves = %v, want [40]", progress.saved)
	}
	if len(progress.runs) != 1 || progress.runs[0] != (run{2, 40, false}) {
		t.Errorf("runs = %v", progress.runs)
	}
	if len(progress.unlocked) != 0 {
		t.Errorf("game over must not unlock levels, got %v", progress.unlocked)
	}
	if audio.stops == 0 {
		t.Error("music should stop on game over")
	}

	snap := g.Snapshot()
	g.Step(core.FrameOf(core.ActionLeft, core.ActionJump))
	after := g.Snapshot()
	if snap.Player != after.Player || snap.Tick != after.Tick {
		t.Error("simulation should not advance after game over")
	}

	g.Step(core.FrameOf(core.ActionRestart))
	if g.Mode() != ModePlaying || g.Player().Lives != 3 || g.score != 0 {
		t.Errorf("restart should reset the level, mode=%v lives=%d score=%d", g.Mode(), g.Player().Lives, g.score)
	}
}

func TestHighScoreNotSavedWhenNotBeaten(t *testing.T) {
	g, _, progress := newTestGame(t, 1)
	progress.high = 500
	g.Restart()
	g.score = 40
	g.Player().Lives = 0
	g.evaluate()

	if len(progress.saved) != 0 {
		t.Errorf("high score should not be written, got %v", progress.saved)
	}
}

// collectAll walks the player onto every coin of the level.
func collectAll(t *testing.T, g *Game) {
	t.Helper()
	p := g.Player()
	for _, c := range append([]*Coin(nil), g.coins...) {
		p.X, p.Y = c.X, c.BaseY
		p.VX, p.VY, p.KnockbackVX = 0, 0, 0
		g.Step(idle())
		if !c.Collected {
			t.Fatalf("coin at (%v, %v) was not collected, player at (%v, %v)", c.X, c.BaseY, p.X, p.Y)
		}
	}
}

func TestLevelOneCompletesExactlyOnce(t *testing.T) {
	g, audio, progress := newTestGame(t, 1)
	g.enemies = nil

	collectAll(t, g)
	if g.score < g.level.RequiredScore {
		t.Fatalf("score %d below required %d", g.score, g.level.RequiredScore)
	}

	completions := 0
	prev := g.Mode()
	for range 200 {
		g.Step(idle())
		if g.Mode() == ModeLevelComplete && prev != ModeLevelComplete {
			completions++
		}
		prev = g.Mode()
	}

	if completions != 1 {
		t.Fatalf("level completed %d times, want 1", completions)
	}
	if !g.State().LevelComplete {
		t.Error("state should report level complete")
	}
	if audio.count(SoundWin) != 1 {
		t.Errorf("win sound played %d times", audio.count(SoundWin))
	}
	if len(progress.unlocked) != 1 || progress.unlocked[0] != 1 {
		t.Errorf("unlocks = %v, want [1]", progress.unlocked)
	}
	if len(progress.saved) != 1 || progress.saved[0] != 30 {
		t.Errorf("high score saves = %v, want [30]", progress.saved)
	}
	if len(progress.runs) != 1 || !progress.runs[0].completed {
		t.Errorf("runs = %v", progress.runs)
	}
}

func TestLevelNeedsRequiredScore(t *testing.T) {
	g, _, _ := newTestGame(t, 3)
	g.enemies = nil
	g.coins = nil
	g.score = g.level.RequiredScore - 1

	g.Step(idle())
	if g.Mode() == ModeLevelComplete {
		t.Fatal("level should not complete below the required score")
	}

	g.score = g.level.RequiredScore
	g.Step(idle())
	if g.Mode() != ModeLevelComplete {
		t.Errorf("mode = %v, want level complete", g.Mode())
	}
}

func TestNextLevelWraps(t *testing.T) {
	g, _, _ := newTestGame(t, 3)
	g.enemies = nil
	g.coins = nil
	g.score = g.level.RequiredScore
	g.Step(idle())
	if g.Mode() != ModeLevelComplete {
		t.Fatalf("mode = %v, want level complete", g.Mode())
	}

	g.Step(core.FrameOf(core.ActionNext))

	if g.Level().Number != 1 {
		t.Errorf("level after the last = %d, want 1", g.Level().Number)
	}
	if g.score != 0 || g.Player().Lives != 3 || g.Mode() != ModePlaying {
		t.Errorf("next level should reset the session, score=%d lives=%d mode=%v", g.score, g.Player().Lives, g.Mode())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g, audio, _ := newTestGame(t, 1)
	for range 10 {
		g.Step(idle())
	}

	g.Step(core.FrameOf(core.ActionPause))
	if g.Mode() != ModePaused || !g.State().Paused {
		t.Fatalf("mode = %v, want paused", g.Mode())
	}
	if audio.stops != 1 {
		t.Errorf("music stops = %d, want 1", audio.stops)
	}

	before := g.Snapshot()
	for range 30 {
		g.Step(core.FrameOf(core.ActionRight, core.ActionJump))
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("paused simulation changed")
	}

	g.Step(core.FrameOf(core.ActionPause))
	if g.Mode() != ModePlaying {
		t.Errorf("mode = %v, want playing after unpause", g.Mode())
	}
	if audio.music != 2 {
		t.Errorf("music starts = %d, want 2", audio.music)
	}
}

func TestBackToMenu(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	g.Step(core.FrameOf(core.ActionMenu))
	if g.Mode() != ModePaused {
		t.Fatalf("menu while playing should pause, mode=%v", g.Mode())
	}
	g.Step(core.FrameOf(core.ActionBack))
	if !g.State().BackToMenu {
		t.Error("back while paused should request the level menu")
	}
}

func TestRestartResetsLevel(t *testing.T) {
	g, _, _ := newTestGame(t, 2)
	for range 30 {
		g.Step(core.FrameOf(core.ActionRight))
	}
	g.score = 70

	g.Step(core.FrameOf(core.ActionRestart))

	p := g.Player()
	if g.score != 0 || p.X != g.level.Start.X || p.Y != g.level.Start.Y {
		t.Errorf("restart did not reset: score=%d pos=(%v, %v)", g.score, p.X, p.Y)
	}
	if g.Level().Number != 2 {
		t.Errorf("restart changed level to %d", g.Level().Number)
	}
}

func TestJumpEmitsDust(t *testing.T) {
	g, audio, _ := newTestGame(t, 1)
	g.enemies = nil
	g.Step(idle())

	g.Step(core.FrameOf(core.ActionJump))

	if g.Player().VY >= 0 {
		t.Errorf("player should be rising, VY = %v", g.Player().VY)
	}
	if audio.count(SoundJump) != 1 {
		t.Errorf("jump sound played %d times", audio.count(SoundJump))
	}
	if len(g.systems) == 0 {
		t.Error("jump should emit particles")
	}
}

func TestBouncingPlatformLaunchesRider(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	g.enemies = nil
	p := g.Player()
	p.X, p.Y = 300, 250-60

	g.Step(idle())
	if !p.OnGround {
		t.Fatal("player should land on the bouncing platform")
	}
	g.Step(idle())
	want := g.cfg.Physics.BouncePower + g.cfg.Physics.Gravity
	if p.VY != want {
		t.Errorf("VY = %v, want %v", p.VY, want)
	}
}

func TestMovingPlatformCarriesRider(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	g.enemies = nil
	p := g.Player()
	p.X, p.Y = 450, 350-60

	g.Step(idle())
	if !p.OnGround || g.riding == nil {
		t.Fatal("player should ride the moving platform")
	}
	x := p.X
	g.Step(idle())
	if p.X != x+g.riding.DX || g.riding.DX == 0 {
		t.Errorf("rider x = %v, want %v", p.X, x+g.riding.DX)
	}
}

// scriptedInput returns a deterministic input pattern for tick i.
func scriptedInput(i int) core.InputFrame {
	in := core.NewInputFrame()
	if i%120 < 70 {
		in.Set(core.ActionRight)
	} else {
		in.Set(core.ActionLeft)
	}
	if i%45 == 0 {
		in.Set(core.ActionJump)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	g1, _, _ := newTestGame(t, 2)
	g2, _, _ := newTestGame(t, 2)

	for i := range 900 {
		g1.Step(scriptedInput(i))
		g2.Step(scriptedInput(i))
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Errorf("determinism failed: hashes differ, run1=%d run2=%d", s1.Hash(), s2.Hash())
	}
	if s1.Score != s2.Score || s1.Lives != s2.Lives {
		t.Errorf("runs diverged: score %d/%d lives %d/%d", s1.Score, s2.Score, s1.Lives, s2.Lives)
	}
}

func TestSnapshotHashChangesWithState(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	a := g.Snapshot()
	g.Step(idle())
	b := g.Snapshot()
	if a.Hash() == b.Hash() {
		t.Error("hash should change after a tick")
	}
}

func TestParticlesTerminate(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	g.enemies = nil
	g.hurt(nil)
	g.completeLevel()

	for range 200 {
		g.Step(idle())
	}
	if len(g.systems) != 0 {
		t.Errorf("particle systems left: %d", len(g.systems))
	}
}

func TestRender(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	g.Step(idle())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 0/20") {
		t.Errorf("HUD missing score: %q", hud)
	}
	if !strings.Contains(hud, "Getting Started") {
		t.Errorf("HUD missing level name: %q", hud)
	}
	if !strings.Contains(hud, "♥♥♥") {
		t.Errorf("HUD missing lives: %q", hud)
	}
	out := screen.String()
	for _, want := range []rune{'☻', GroundChar, CoinFrames[0]} {
		if !strings.ContainsRune(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
	if screen.Background() != levels.Background("sky") {
		t.Errorf("background = %v", screen.Background())
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModePaused, "PAUSED"},
		{ModeLevelComplete, "LEVEL COMPLETE!"},
		{ModeGameOver, "GAME OVER"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			g, _, _ := newTestGame(t, 1)
			g.mode = tt.mode
			screen := core.NewScreen(80, 24)
			g.Render(screen)
			if !strings.Contains(screen.String(), tt.want) {
				t.Errorf("overlay %q not drawn", tt.want)
			}
		})
	}
}

func TestRenderTooSmall(t *testing.T) {
	cfg := testConfig()
	g := New(Options{Level: 1, Config: &cfg})
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small message")
	}
	before := g.Snapshot()
	g.Step(core.FrameOf(core.ActionRight))
	after := g.Snapshot()
	if after.Hash() != before.Hash() {
		t.Error("simulation should not run on a too-small screen")
	}
}

func TestHUD(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	for range 120 {
		g.Step(idle())
	}
	h := g.HUD()
	if h.ElapsedSeconds != 2 {
		t.Errorf("elapsed = %v, want 2", h.ElapsedSeconds)
	}
	if h.RequiredScore != 20 || h.LevelName != "Getting Started" {
		t.Errorf("unexpected HUD %+v", h)
	}
}
