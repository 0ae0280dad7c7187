package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/anim"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

// Coin is a collectible worth Value points.
type Coin struct {
	Body
	BaseY     float64
	Value     int
	Kind      levels.CoinKind
	Collected bool

	phase   float64
	spin    anim.Clock
	collect anim.Countdown
	cfg     config.CoinConfig
}

// NewCoin creates a coin from its level descriptor. Gold coins are always
// worth the configured gold value.
func NewCoin(spec levels.CoinSpec, cfg config.CoinConfig) *Coin {
	value := spec.Value
	if spec.Kind == levels.CoinGold {
		value = cfg.GoldValue
	}
	return &Coin{
		Body:  Body{X: spec.X, Y: spec.Y, W: cfg.Size, H: cfg.Size},
		BaseY: spec.Y,
		Value: value,
		Kind:  spec.Kind,
		spin:  anim.New(cfg.SpinFrames, cfg.SpinSpeed, true),
		cfg:   cfg,
	}
}

// Update bobs an uncollected coin or plays the collect animation.
func (c *Coin) Update() {
	if c.Collected {
		if c.collect.Tick() {
			c.Y -= c.cfg.CollectRise
		}
		return
	}
	c.phase += c.cfg.BobSpeed
	c.Y = c.BaseY + c.cfg.BobAmplitude*(1-math.Cos(c.phase))
	c.spin.Update()
}

// Collect marks the coin collected and reports whether this call did it.
func (c *Coin) Collect() bool {
	if c.Collected {
		return false
	}
	c.Collected = true
	c.collect = anim.Countdown(c.cfg.CollectTicks)
	return true
}

// Finished reports whether the collect animation is over.
func (c *Coin) Finished() bool {
	return c.Collected && !c.collect.Active()
}

// Frame returns the spin frame index.
func (c *Coin) Frame() int {
	return c.spin.Index()
}

// Fade returns the remaining opacity of a collected coin in [0, 1].
func (c *Coin) Fade() float64 {
	if !c.Collected {
		return 1
	}
	if c.cfg.CollectTicks <= 0 {
		return 0
	}
	return float64(c.collect) / float64(c.cfg.CollectTicks)
}

// Color returns the draw colour for the coin kind.
func (c *Coin) Color() core.Color {
	return CoinColor(c.Kind)
}

// CoinColor maps a coin kind to its colour.
func CoinColor(k levels.CoinKind) core.Color {
	switch k {
	case levels.CoinSilver:
		return core.ColorSilver
	case levels.CoinGold:
		return core.ColorOrange
	default:
		return core.ColorGold
	}
}
