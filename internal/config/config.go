package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/AvengeMedia/dankpalette/internal/score"
	"github.com/AvengeMedia/dankpalette/internal/theme"
)

const (
	envPrefix  = "DANKPAL"
	envConfig  = "DANKPAL_CONFIG"
	appDir     = "dankpalette"
	configName = "config"
)

// Config holds CLI defaults. Flags override these.
type Config struct {
	Mode      string       `mapstructure:"mode"`
	Seed      string       `mapstructure:"seed"`
	SeedColor string       `mapstructure:"seed_color"`
	DarkFirst bool         `mapstructure:"dark_first"`
	Light     theme.Levels `mapstructure:"light"`
	// Dark is only used when SplitDark is set; otherwise both modes share
	// the light levels.
	Dark      theme.Levels  `mapstructure:"dark"`
	SplitDark bool          `mapstructure:"split_dark"`
	Output    OutputConfig  `mapstructure:"output"`
	Log       LogConfig     `mapstructure:"log"`
	Score     score.Weights `mapstructure:"score"`
	Dank16    Dank16Config  `mapstructure:"dank16"`
}

type OutputConfig struct {
	Format  string `mapstructure:"format"`
	Preview bool   `mapstructure:"preview"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Dank16Config struct {
	Contrast string `mapstructure:"contrast"`
}

// Options converts the config into engine options.
func (c Config) Options() theme.Options {
	opts := theme.Options{
		Mode:      theme.ParseHarmonyMode(c.Mode),
		Seed:      c.Seed,
		SeedColor: c.SeedColor,
		Light:     c.Light,
		DarkFirst: c.DarkFirst,
	}
	if c.SplitDark {
		dark := c.Dark
		opts.Dark = &dark
	}
	return opts
}

// Path returns the config file location: DANKPAL_CONFIG when set, otherwise
// config.toml under the XDG config directory.
func Path() string {
	if p := os.Getenv(envConfig); p != "" {
		return p
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, appDir, configName+".toml")
}

func setDefaults(v *viper.Viper) {
	w := score.DefaultWeights()

	v.SetDefault("mode", string(theme.Analogous))
	v.SetDefault("seed", "")
	v.SetDefault("seed_color", "")
	v.SetDefault("dark_first", false)
	for _, side := range []string{"light", "dark"} {
		v.SetDefault(side+".saturation", 0)
		v.SetDefault(side+".contrast", 0)
		v.SetDefault(side+".brightness", 0)
	}
	v.SetDefault("split_dark", false)
	v.SetDefault("output.format", "text")
	v.SetDefault("output.preview", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("score.contrast", w.Contrast)
	v.SetDefault("score.harmony", w.Harmony)
	v.SetDefault("score.chroma_balance", w.ChromaBalance)
	v.SetDefault("score.usability", w.Usability)
	v.SetDefault("score.aesthetic", w.Aesthetic)
	v.SetDefault("dank16.contrast", "dps")
}

// Store reads and writes the config file on a filesystem.
type Store struct {
	fs   afero.Fs
	path string
}

func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// DefaultStore uses the OS filesystem and Path().
func DefaultStore() *Store {
	return NewStore(afero.NewOsFs(), Path())
}

// Load reads configuration from the default store.
func Load() (Config, error) {
	return DefaultStore().Load()
}

// Load reads configuration from file and env. Env var overrides use prefix
// DANKPAL_, with dots in keys replaced by underscores. A missing file is not
// an error.
func (s *Store) Load() (Config, error) {
	v := viper.New()
	v.SetFs(s.fs)
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(s.path)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read config %s: %w", s.path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Light = c.Light.Clamped()
	c.Dark = c.Dark.Clamped()
	return c, nil
}

// SaveLevels writes the given levels to the config file, keeping whatever
// else it already holds. The tuner uses it to persist a session.
func (s *Store) SaveLevels(light, dark theme.Levels, splitDark bool) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetFs(s.fs)
	v.SetConfigType("toml")
	v.SetConfigFile(s.path)
	if _, err := s.fs.Stat(s.path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", s.path, err)
		}
	}

	set := func(side string, lv theme.Levels) {
		v.Set(side+".saturation", lv.Saturation)
		v.Set(side+".contrast", lv.Contrast)
		v.Set(side+".brightness", lv.Brightness)
	}
	set("light", light)
	set("dark", dark)
	v.Set("split_dark", splitDark)

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
