package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Rows     int
	Cols     int
	CellSize float64
	Wrap     bool
	Pattern  string
	Scale    int
	TPS      int
	Seed     int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:     128,
		Cols:     128,
		CellSize: 1,
		Wrap:     true,
		Pattern:  "random",
		Scale:    4,
		TPS:      30,
		Seed:     42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.Float64Var(&c.CellSize, "cell-size", c.CellSize, "cell size in world units")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "wrap edges toroidally")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern name")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized patterns")
}
