package platformer

// ResolvePlatforms separates the player from every overlapping platform and
// returns the platform the player landed on, if any.
//
// Each overlap is resolved along the axis the player was moving: a falling
// player lands on top, a rising player bumps its head, and horizontal motion
// pushes the player back out of the side. A player that was not moving is
// pushed out along the platform's own displacement.
func ResolvePlatforms(p *Player, platforms []*Platform) *Platform {
	p.OnGround = false
	var ground *Platform

	for _, plat := range platforms {
		if !p.Rect().Overlaps(plat.Rect()) {
			continue
		}
		h := p.VX + p.KnockbackVX

		switch {
		case p.VY > 0 && p.Bottom() <= plat.Bottom():
			p.SetBottom(plat.Y)
			p.VY = 0
			p.OnGround = true
			ground = plat
		case p.VY < 0:
			p.SetTop(plat.Bottom())
			p.VY = 0
		case h > 0:
			p.SetRight(plat.X)
		case h < 0:
			p.SetLeft(plat.Right())
		case plat.DX > 0:
			p.SetLeft(plat.Right())
		case plat.DX < 0:
			p.SetRight(plat.X)
		}
	}
	return ground
}
