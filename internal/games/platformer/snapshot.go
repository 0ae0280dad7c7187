package platformer

import "math"

// Snapshot is a flattened view of the session used for determinism checks
// and replays. Positions are stored as float bits so equal snapshots hash
// equally.
type Snapshot struct {
	Tick       uint64
	Level      int
	Mode       int
	Score      int
	Lives      int
	Kills      int
	Invincible int

	// Player state: X, Y, VX, VY, KnockbackVX
	Player [5]float64

	// Each enemy is 5 values: Kind, X, Y, Health, bullet count
	EnemyData []float64

	// Each coin is 3 values: X, Y, Collected
	CoinData []float64

	// Platform X positions
	PlatformX []float64

	Particles int
	Shake     int
	Flash     int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	snap := Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Level:      g.level.Number,
		Mode:       int(g.mode),
		Score:      g.score,
		Lives:      p.Lives,
		Kills:      g.kills,
		Invincible: p.Invincible,
		Player:     [5]float64{p.X, p.Y, p.VX, p.VY, p.KnockbackVX},
		Shake:      g.effects.Shake,
		Flash:      g.effects.Flash,
	}

	snap.EnemyData = make([]float64, 0, len(g.enemies)*5)
	for _, e := range g.enemies {
		snap.EnemyData = append(snap.EnemyData, float64(e.Kind), e.X, e.Y, float64(e.Health), float64(len(e.Bullets)))
	}

	snap.CoinData = make([]float64, 0, len(g.coins)*3)
	for _, c := range g.coins {
		collected := 0.0
		if c.Collected {
			collected = 1
		}
		snap.CoinData = append(snap.CoinData, c.X, c.Y, collected)
	}

	snap.PlatformX = make([]float64, 0, len(g.platforms))
	for _, plat := range g.platforms {
		snap.PlatformX = append(snap.PlatformX, plat.X)
	}

	for _, s := range g.systems {
		snap.Particles += s.Len()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Level)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Invincible) //#nosec G115 -- hash computation

	for _, v := range snap.Player {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.CoinData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.PlatformX {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(snap.Particles) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shake)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Flash)     //#nosec G115 -- hash computation

	return h
}
