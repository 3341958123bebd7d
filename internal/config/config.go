// Package config provides YAML-based configuration loading for the
// happyweed tools.
package config

// Config is the root configuration for the CLI and the SSH server.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Render    RenderConfig    `yaml:"render"`
	Storage   StorageConfig   `yaml:"storage"`
	Server    ServerConfig    `yaml:"server"`
}

// GeneratorConfig tunes the generation pipeline. The defaults reproduce
// the shipped game exactly; anything else is for exploration.
type GeneratorConfig struct {
	// DefaultSet is the set opened when none is given on the command
	// line.
	DefaultSet int `yaml:"default_set"`

	// GridHeight is the backing buffer height in rows. The playfield
	// window is always 12 rows; a larger buffer only adds scroll room.
	GridHeight int `yaml:"grid_height"`

	// StepCap bounds the carve walk. Values above the engine's own cap
	// are clamped down to it.
	StepCap int `yaml:"step_cap"`

	// TickBudget is the carve watchdog budget in ticks. Zero keeps the
	// engine default; the watchdog only arms when a tick source is set.
	TickBudget int `yaml:"tick_budget"`
}

// RenderConfig controls terminal output of grids.
type RenderConfig struct {
	// RawCodes prints numeric tile codes instead of styled glyphs.
	RawCodes bool `yaml:"raw_codes"`

	// Color enables styled output. Off suits pipes and dumb terminals.
	Color bool `yaml:"color"`
}

// StorageConfig locates the run database and batch output.
type StorageConfig struct {
	// Path is the sqlite file. Empty means ~/.happyweed/runs.db.
	Path string `yaml:"path"`

	// GoldensDir, when set, is where batch generation also writes TSV
	// files.
	GoldensDir string `yaml:"goldens_dir"`
}

// ServerConfig configures the SSH browser.
type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
}
