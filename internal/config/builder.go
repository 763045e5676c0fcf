package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPlayers sets the number of seats.
func (b *ConfigBuilder) WithPlayers(n int) *ConfigBuilder {
	b.cfg.Rules.Players = n
	return b
}

// WithNames sets the player names by seat.
func (b *ConfigBuilder) WithNames(names ...string) *ConfigBuilder {
	b.cfg.Rules.Names = names
	return b
}

// WithSeed sets the dice seed.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Rules.Seed = seed
	return b
}

// WithExtraTurns sets the bonus-roll policy.
func (b *ConfigBuilder) WithExtraTurns(onSix, onCapture bool) *ConfigBuilder {
	b.cfg.Rules.ExtraTurnOnSix = onSix
	b.cfg.Rules.ExtraTurnOnCapture = onCapture
	return b
}

// WithMaxConsecutiveSixes sets the consecutive-six forfeit limit.
func (b *ConfigBuilder) WithMaxConsecutiveSixes(n int) *ConfigBuilder {
	b.cfg.Rules.MaxConsecutiveSixes = n
	return b
}

// WithMaxTurns caps the length of a game.
func (b *ConfigBuilder) WithMaxTurns(n int) *ConfigBuilder {
	b.cfg.Rules.MaxTurns = n
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithColour enables or disables console colours.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Render.Colour = enabled
	return b
}

// WithPNG sets the PNG snapshot path and size.
func (b *ConfigBuilder) WithPNG(path string, size int) *ConfigBuilder {
	b.cfg.Render.PNGPath = path
	b.cfg.Render.PNGSize = size
	return b
}

// WithSimulation sets the number of games and workers.
func (b *ConfigBuilder) WithSimulation(games, workers int) *ConfigBuilder {
	b.cfg.Simulation.Games = games
	b.cfg.Simulation.Workers = workers
	return b
}

// WithStrategy sets the bot strategy.
func (b *ConfigBuilder) WithStrategy(name string) *ConfigBuilder {
	b.cfg.Simulation.Strategy = name
	return b
}

// WithRecord sets the game record path and format.
func (b *ConfigBuilder) WithRecord(path, format string) *ConfigBuilder {
	b.cfg.Record.Path = path
	b.cfg.Record.Format = format
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output = w
	return b
}

// WithInput sets the input reader.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.Input = r
	return b
}
