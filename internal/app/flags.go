package app

import (
	"flag"
	"strconv"
	"strings"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one override.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters shared by the commands.
type Config struct {
	Sim    string
	Dim    int
	Seed   int64
	Origin string
	Set    KVList
	Scale  int
	TPS    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "maze", Dim: 5, Seed: 1337, Origin: "0,0,0", Scale: 16, TPS: 10}
}

// Bind attaches the generator configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Dim, "dim", c.Dim, "edge length of the maze cube")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the growth random source")
	fs.StringVar(&c.Origin, "origin", c.Origin, "root cell as x,y,z")
	fs.Var(&c.Set, "set", "parameter override in key=value form (repeatable)")
}

// BindSim attaches the -sim selector for commands that build their sim from
// the registry.
func (c *Config) BindSim(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
}

// BindView attaches pacing and display flags.
func (c *Config) BindView(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

// SimConfig returns the flag-style map handed to a sim factory. Overrides
// from -set win over the dedicated flags.
func (c *Config) SimConfig() map[string]string {
	out := map[string]string{
		"dim":    strconv.Itoa(c.Dim),
		"seed":   strconv.FormatInt(c.Seed, 10),
		"origin": c.Origin,
	}
	for _, kv := range c.Set {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}
