// Package levels provides the hand-authored level catalog.
// Levels are YAML documents embedded in the binary; a directory of
// replacement files can be loaded at startup.
package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"gopkg.in/yaml.v3"
)

// PlatformKind is the closed set of platform behaviours.
type PlatformKind int

const (
	PlatformGround PlatformKind = iota
	PlatformMoving
	PlatformBouncing
)

var platformKinds = map[string]PlatformKind{
	"ground":   PlatformGround,
	"moving":   PlatformMoving,
	"bouncing": PlatformBouncing,
}

func (k PlatformKind) String() string {
	switch k {
	case PlatformGround:
		return "ground"
	case PlatformMoving:
		return "moving"
	case PlatformBouncing:
		return "bouncing"
	default:
		return "unknown"
	}
}

// UnmarshalYAML decodes a platform type name.
func (k *PlatformKind) UnmarshalYAML(node *yaml.Node) error {
	return decodeKind(node, platformKinds, k)
}

// CoinKind is the closed set of coin types.
type CoinKind int

const (
	CoinNormal CoinKind = iota
	CoinSilver
	CoinGold
)

var coinKinds = map[string]CoinKind{
	"normal": CoinNormal,
	"silver": CoinSilver,
	"gold":   CoinGold,
}

func (k CoinKind) String() string {
	switch k {
	case CoinNormal:
		return "normal"
	case CoinSilver:
		return "silver"
	case CoinGold:
		return "gold"
	default:
		return "unknown"
	}
}

// UnmarshalYAML decodes a coin type name.
func (k *CoinKind) UnmarshalYAML(node *yaml.Node) error {
	return decodeKind(node, coinKinds, k)
}

// EnemyKind is the closed set of enemy behaviours.
type EnemyKind int

const (
	EnemyPatrol EnemyKind = iota
	EnemyChaser
	EnemyShooter
)

var enemyKinds = map[string]EnemyKind{
	"patrol":  EnemyPatrol,
	"chaser":  EnemyChaser,
	"shooter": EnemyShooter,
}

func (k EnemyKind) String() string {
	switch k {
	case EnemyPatrol:
		return "patrol"
	case EnemyChaser:
		return "chaser"
	case EnemyShooter:
		return "shooter"
	default:
		return "unknown"
	}
}

// UnmarshalYAML decodes an enemy type name.
func (k *EnemyKind) UnmarshalYAML(node *yaml.Node) error {
	return decodeKind(node, enemyKinds, k)
}

func decodeKind[K any](node *yaml.Node, names map[string]K, dst *K) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	k, ok := names[s]
	if !ok {
		return fmt.Errorf("line %d: unknown type %q", node.Line, s)
	}
	*dst = k
	return nil
}

// Point is a position in world units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlatformSpec places one platform.
type PlatformSpec struct {
	X    float64      `yaml:"x"`
	Y    float64      `yaml:"y"`
	W    float64      `yaml:"w"`
	H    float64      `yaml:"h"`
	Kind PlatformKind `yaml:"type"`
}

// CoinSpec places one coin.
type CoinSpec struct {
	X     float64  `yaml:"x"`
	Y     float64  `yaml:"y"`
	Value int      `yaml:"value"`
	Kind  CoinKind `yaml:"type"`
}

// EnemySpec places one enemy.
type EnemySpec struct {
	X    float64   `yaml:"x"`
	Y    float64   `yaml:"y"`
	Kind EnemyKind `yaml:"type"`
}

// Level is an immutable level descriptor.
type Level struct {
	Number        int            `yaml:"number"`
	Name          string         `yaml:"name"`
	Background    string         `yaml:"background"`
	RequiredScore int            `yaml:"required_score"`
	Start         Point          `yaml:"start"`
	Platforms     []PlatformSpec `yaml:"platforms"`
	Coins         []CoinSpec     `yaml:"coins"`
	Enemies       []EnemySpec    `yaml:"enemies"`
}

// TotalCoinValue returns the score available from coins, with gold coins
// counted at goldValue.
func (l Level) TotalCoinValue(goldValue int) int {
	total := 0
	for _, c := range l.Coins {
		if c.Kind == CoinGold {
			total += goldValue
			continue
		}
		total += c.Value
	}
	return total
}

func (l Level) clone() Level {
	c := l
	c.Platforms = append([]PlatformSpec(nil), l.Platforms...)
	c.Coins = append([]CoinSpec(nil), l.Coins...)
	c.Enemies = append([]EnemySpec(nil), l.Enemies...)
	return c
}

func (l Level) validate() error {
	if l.Number < 1 {
		return fmt.Errorf("level number %d must be positive", l.Number)
	}
	if l.Name == "" {
		return fmt.Errorf("level %d has no name", l.Number)
	}
	if l.RequiredScore < 0 {
		return fmt.Errorf("level %d: negative required score", l.Number)
	}
	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("level %d: platform %d has empty size", l.Number, i)
		}
	}
	return nil
}

// backgrounds maps background ids to colors.
var backgrounds = map[string]core.Color{
	"sky":    core.ColorSkyBlue,
	"forest": core.ColorForest,
	"danger": core.ColorDarkRed,
}

// DefaultBackground is used for unknown background ids.
const DefaultBackground = core.ColorSkyBlue

// Background returns the color for a background id.
func Background(id string) core.Color {
	if c, ok := backgrounds[id]; ok {
		return c
	}
	return DefaultBackground
}
