package maze

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidProbability is returned for a percentage outside [0, 100].
	ErrInvalidProbability = errors.New("maze: probability must be within 0..100 percent")
	// ErrStallingBranchProb is returned for a zero branch chance, which
	// disables recovery and lets growth die out before the grid is spanned.
	ErrStallingBranchProb = errors.New("maze: branch_prob must be at least 1 percent")
)

// Params holds the growth probabilities, in whole percent.
type Params struct {
	// BranchProb is the chance an Invite falls back to Seed, and the chance
	// a Connected cell reseeds during recovery.
	BranchProb int
	// TurnProb is the chance a Seed proposes to keep growing straight away
	// from its parent before falling back to a random direction.
	TurnProb int
}

// DefaultParams returns the standard growth probabilities.
func DefaultParams() Params {
	return Params{BranchProb: 5, TurnProb: 10}
}

// Config controls the generated maze.
type Config struct {
	Dimension int
	Origin    Pos
	Seed      int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Dimension: 5,
		Seed:      1337,
		Params:    DefaultParams(),
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values leave the default in place; parsed values are kept as
// given so Validate can reject them.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["dim"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Dimension = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["origin"]; ok {
		if parsed, err := ParsePos(v); err == nil {
			c.Origin = parsed
		}
	}
	if v, ok := cfg["branch_prob"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.BranchProb = parsed
		}
	}
	if v, ok := cfg["turn_prob"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.TurnProb = parsed
		}
	}
	return c
}

// Validate checks that the config describes a grid that can be built.
func (c Config) Validate() error {
	if c.Dimension <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDimension, c.Dimension)
	}
	for _, v := range c.Origin {
		if v < 0 || v >= c.Dimension {
			return fmt.Errorf("%w: %v in grid of size %d", ErrOriginOutOfBounds, c.Origin, c.Dimension)
		}
	}
	if c.Params.BranchProb < 0 || c.Params.BranchProb > 100 {
		return fmt.Errorf("branch_prob %d: %w", c.Params.BranchProb, ErrInvalidProbability)
	}
	if c.Params.BranchProb == 0 {
		return ErrStallingBranchProb
	}
	if c.Params.TurnProb < 0 || c.Params.TurnProb > 100 {
		return fmt.Errorf("turn_prob %d: %w", c.Params.TurnProb, ErrInvalidProbability)
	}
	return nil
}

// ParsePos parses "x,y,z" into a Pos.
func ParsePos(s string) (Pos, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Pos{}, fmt.Errorf("position %q: want x,y,z", s)
	}
	var p Pos
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Pos{}, fmt.Errorf("position %q: %w", s, err)
		}
		p[i] = v
	}
	return p, nil
}

// FormatPos renders p in the form ParsePos accepts.
func FormatPos(p Pos) string {
	return fmt.Sprintf("%d,%d,%d", p[0], p[1], p[2])
}
