package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/particles"
)

// resolveInteractions handles stomps, enemy and bullet contact, and coin
// pickups for the current tick.
func (g *Game) resolveInteractions() {
	g.resolveEnemies()
	g.resolveBullets()
	g.resolveCoins()
}

func (g *Game) resolveEnemies() {
	p := g.player
	combat := g.cfg.Combat
	// A stomp bounce must not turn later overlaps in the same tick into hits.
	vy := p.VY

	for i := 0; i < len(g.enemies); {
		if p.Invincible > 0 {
			return
		}
		e := g.enemies[i]
		if !p.Rect().Overlaps(e.Rect()) || (e.Stunned > 0 && vy < 0) {
			i++
			continue
		}

		if vy > 0 && p.Bottom() <= e.CenterY()+combat.StompTolerance {
			p.VY = combat.StompBounce
			if e.TakeDamage() == DamageKilled {
				g.killEnemy(e)
				g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
				continue
			}
			i++
			continue
		}

		g.hurt(&e.Body)
		i++
	}
}

func (g *Game) killEnemy(e *Enemy) {
	g.score += g.cfg.Combat.KillBonus
	g.kills++
	g.spawn(particles.EnemyDeath(g.rng, e.CenterX(), e.CenterY()))
	g.effects.AddShake(g.cfg.Effects.KillShake)
	g.audio.PlaySound(SoundEnemyDeath)
}

func (g *Game) resolveBullets() {
	p := g.player
	for _, e := range g.enemies {
		for j := 0; j < len(e.Bullets); j++ {
			if p.Invincible > 0 {
				return
			}
			b := e.Bullets[j]
			if !p.Rect().Overlaps(b.Rect()) {
				continue
			}
			e.RemoveBullet(j)
			j--
			g.hurt(&b.Body)
		}
	}
}

func (g *Game) resolveCoins() {
	p := g.player
	for _, c := range g.coins {
		if c.Collected || !p.Rect().Overlaps(c.Rect()) {
			continue
		}
		if !c.Collect() {
			continue
		}
		g.score += c.Value
		g.effects.AddShake(g.cfg.Effects.CoinShake)
		g.spawn(particles.Collect(g.rng, c.CenterX(), c.CenterY(), c.Color()))
		g.audio.PlaySound(SoundCoin)
	}
}

// hurt costs the player a life. A non-nil aggressor knocks the player away
// from it.
func (g *Game) hurt(from *Body) {
	p := g.player
	combat := g.cfg.Combat

	p.Lives--
	if p.Lives < 0 {
		p.Lives = 0
	}
	p.Invincible = g.cfg.Player.Invincibility
	p.Flash = 0

	g.spawn(particles.Hit(g.rng, p.CenterX(), p.CenterY()))
	g.effects.StartFlash()
	g.effects.AddShake(g.cfg.Effects.DamageShake)
	g.audio.PlaySound(SoundHurt)

	if from == nil {
		return
	}
	dir := 1.0
	if from.CenterX() > p.CenterX() {
		dir = -1
	}
	p.KnockbackVX = dir * combat.KnockbackSpeed
	p.VY = combat.KnockbackUp
}

// checkFall respawns a player that dropped out of the world. The fall costs
// a life unless the player is invincible.
func (g *Game) checkFall() {
	p := g.player
	world := g.cfg.World
	if p.Y <= world.Height+world.FallMargin {
		return
	}
	if p.Invincible == 0 {
		g.hurt(nil)
	}
	p.Respawn(g.level.Start.X, g.level.Start.Y)
	g.riding = nil
	g.bouncePending = false
}
