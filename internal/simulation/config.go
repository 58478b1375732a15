// Package simulation turns input frames into state changes. It owns the
// movement rules and drives the interaction engine once per frame.
package simulation

// Config holds the tunable simulation rules.
type Config struct {
	// Step is how far one arrow key press moves the player, in world units.
	Step float32 `yaml:"step" validate:"gt=0,lte=2"`
}

// DefaultConfig returns the rules the puzzle was laid out for.
func DefaultConfig() Config {
	return Config{
		Step: 0.5,
	}
}
