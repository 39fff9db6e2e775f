package p4errgen

import (
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/p4ic4idea/p4errgen/javagen"
	"github.com/p4ic4idea/p4errgen/msgcodes"
	"github.com/pkg/errors"
)

const (
	// DefaultInput is the message source, relative to the root of the Perforce C++ sources.
	DefaultInput = "msgs/msgdm.cc"

	// DefaultOutput is the generated Java file, relative to the p4java project directory.
	DefaultOutput = "src/main/java/com/perforce/p4java/server/IServerMessageCode.java"
)

// Config of the generation. Fields can be set from a TOML file, see LoadConfig.
type Config struct {
	// Input file, relative to the source directory (unless absolute).
	Input string `toml:"input"`

	// Output file, relative to the tool directory (unless absolute). Its directory must exist.
	Output string `toml:"output"`

	// Package, Interface and ImportPackage of the generated Java code.
	Package       string `toml:"package"`
	Interface     string `toml:"interface"`
	ImportPackage string `toml:"import_package"`

	// Generator named in the "DO NOT EDIT" warning.
	Generator string `toml:"generator"`

	// Naming style of the constants: "runs" or "legacy".
	Naming javagen.NamingStyle `toml:"naming"`

	// EscapeText makes message texts safe for Javadoc. Default is to copy them verbatim.
	EscapeText bool `toml:"escape_text"`

	// Symbols adds (or overrides) symbolic tokens: token -> qualified Java name, e.g.:
	// ES_X3SERVER = "MessageSubsystemCode.ES_X3SERVER"
	Symbols map[string]string `toml:"symbols"`
}

// DefaultConfig generates p4java's IServerMessageCode from msgs/msgdm.cc.
func DefaultConfig() Config {
	opts := javagen.DefaultOptions()
	return Config{
		Input:         DefaultInput,
		Output:        DefaultOutput,
		Package:       opts.Package,
		Interface:     opts.Interface,
		ImportPackage: opts.ImportPackage,
		Generator:     opts.Generator,
		Naming:        opts.Naming,
		EscapeText:    opts.EscapeText,
	}
}

// LoadConfig reads a TOML configuration file on top of DefaultConfig.
// Unknown keys are reported as errors.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read configuration from %q", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		slices.Sort(keys)
		return Config{}, errors.Errorf("unknown keys in configuration %q: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Input == "" || cfg.Output == "" {
		return Config{}, errors.Errorf("configuration %q: input and output can't be empty", path)
	}
	return cfg, nil
}

// EmitterOptions converts the configuration to the javagen.Options.
func (cfg Config) EmitterOptions() (javagen.Options, error) {
	symbols := msgcodes.DefaultSymbols()
	if len(cfg.Symbols) > 0 {
		var err error
		symbols, err = symbols.With(cfg.Symbols)
		if err != nil {
			return javagen.Options{}, errors.WithMessage(err, "invalid symbols in configuration")
		}
	}
	return javagen.Options{
		Package:       cfg.Package,
		Interface:     cfg.Interface,
		ImportPackage: cfg.ImportPackage,
		Generator:     cfg.Generator,
		Symbols:       symbols,
		Naming:        cfg.Naming,
		EscapeText:    cfg.EscapeText,
	}, nil
}
