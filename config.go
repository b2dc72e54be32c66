package csv2tsv

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("csv2tsv: invalid configuration")

// Config controls a single conversion. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// Quote is the CSV quote character. Default is '"'.
	Quote byte
	// CSVDelim is the CSV field delimiter. Default is ','.
	CSVDelim byte
	// TSVDelim is the TSV field delimiter written to the output. Default is '\t'.
	TSVDelim byte
	// TSVDelimReplacement replaces TSVDelim bytes found in field data. Default is " ".
	TSVDelimReplacement string
	// NewlineReplacement replaces CR, LF and CRLF found in quoted fields. Default is " ".
	NewlineReplacement string
	// SkipRecords suppresses output of the leading records of the input.
	SkipRecords int
	// DiscardBOM drops a leading UTF-8 byte order mark. Default is true.
	DiscardBOM bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Quote:               '"',
		CSVDelim:            ',',
		TSVDelim:            '\t',
		TSVDelimReplacement: " ",
		NewlineReplacement:  " ",
		DiscardBOM:          true,
	}
}

// Validate rejects configurations that would produce ambiguous output.
func (c Config) Validate() error {
	chars := []struct {
		name string
		b    byte
	}{
		{"quote", c.Quote},
		{"CSV delimiter", c.CSVDelim},
		{"TSV delimiter", c.TSVDelim},
	}
	for i, ch := range chars {
		if ch.b == '\n' || ch.b == '\r' {
			return errors.Wrapf(ErrInvalidConfig, "%s cannot be a newline character", ch.name)
		}
		if ch.b >= 0x80 {
			return errors.Wrapf(ErrInvalidConfig, "%s must be a single-byte ASCII character", ch.name)
		}
		for _, other := range chars[:i] {
			if other.b == ch.b {
				return errors.Wrapf(ErrInvalidConfig, "%s and %s must be different characters", other.name, ch.name)
			}
		}
	}

	repls := []struct {
		name string
		s    string
	}{
		{"TSV delimiter replacement", c.TSVDelimReplacement},
		{"newline replacement", c.NewlineReplacement},
	}
	for _, r := range repls {
		if strings.ContainsAny(r.s, "\r\n") {
			return errors.Wrapf(ErrInvalidConfig, "%s cannot contain newlines", r.name)
		}
		if strings.IndexByte(r.s, c.TSVDelim) >= 0 {
			return errors.Wrapf(ErrInvalidConfig, "%s cannot contain the TSV delimiter", r.name)
		}
	}

	if c.SkipRecords < 0 {
		return errors.Wrapf(ErrInvalidConfig, "skip records must be non-negative, got %d", c.SkipRecords)
	}
	return nil
}

// fileConfig is the YAML form of Config. Pointers distinguish unset keys.
type fileConfig struct {
	Quote              *string `yaml:"quote"`
	CSVDelim           *string `yaml:"csv_delim"`
	TSVDelim           *string `yaml:"tsv_delim"`
	TabReplacement     *string `yaml:"tab_replacement"`
	NewlineReplacement *string `yaml:"newline_replacement"`
	KeepBOM            *bool   `yaml:"keep_bom"`
}

// ParseConfig decodes a YAML configuration on top of DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	var fc fileConfig
	if err := yaml.UnmarshalStrict(data, &fc); err != nil {
		return cfg, errors.Wrap(err, "csv2tsv: decoding config")
	}

	chars := []struct {
		key string
		src *string
		dst *byte
	}{
		{"quote", fc.Quote, &cfg.Quote},
		{"csv_delim", fc.CSVDelim, &cfg.CSVDelim},
		{"tsv_delim", fc.TSVDelim, &cfg.TSVDelim},
	}
	for _, ch := range chars {
		if ch.src == nil {
			continue
		}
		if len(*ch.src) != 1 {
			return cfg, errors.Wrapf(ErrInvalidConfig, "%s must be a single character, got %q", ch.key, *ch.src)
		}
		*ch.dst = (*ch.src)[0]
	}
	if fc.TabReplacement != nil {
		cfg.TSVDelimReplacement = *fc.TabReplacement
	}
	if fc.NewlineReplacement != nil {
		cfg.NewlineReplacement = *fc.NewlineReplacement
	}
	if fc.KeepBOM != nil {
		cfg.DiscardBOM = !*fc.KeepBOM
	}

	return cfg, cfg.Validate()
}

// LoadConfig reads and parses the YAML configuration file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), errors.Wrapf(err, "csv2tsv: reading config %s", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return cfg, errors.Wrapf(err, "csv2tsv: config %s", path)
	}
	return cfg, nil
}
