package config

import (
	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagFile  = "file"
	FlagWidth = "width"
	FlagPlain = "plain"
)

// Flags holds the values bound to a flag set. Only flags the user actually
// set override the loaded configuration. The config file path and verbosity
// come from the standard command flags and are passed to Resolve.
type Flags struct {
	fs *pflag.FlagSet

	dataFile string
	width    int
	plain    bool
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.dataFile, FlagFile, DefaultDataFile, "JSON file holding the enrollment list")
	fs.IntVar(&f.width, FlagWidth, DefaultSeparatorWidth, "Width of the separator line around listings")
	fs.BoolVar(&f.plain, FlagPlain, false, "Disable colored output")
	return f
}

// Apply overrides cfg with every flag that was explicitly changed.
func (f *Flags) Apply(cfg *Config) {
	if f.fs.Changed(FlagFile) {
		cfg.DataFile = f.dataFile
	}
	if f.fs.Changed(FlagWidth) {
		cfg.SeparatorWidth = f.width
	}
	if f.fs.Changed(FlagPlain) {
		cfg.Plain = f.plain
	}
}

// Resolve loads configFile, or the config discovered in dir when configFile
// is empty, applies the changed flags and validates the result.
func (f *Flags) Resolve(dir, configFile string) (Config, string, error) {
	var (
		cfg  Config
		path string
		err  error
	)
	if configFile != "" {
		path = configFile
		cfg, err = LoadFile(path)
	} else {
		cfg, path, err = Load(dir)
	}
	if err != nil {
		return Config{}, "", err
	}

	f.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}
