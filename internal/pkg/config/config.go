package config

import (
	"encoding/json"
	"os"

	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/netsec-ethz/isorange/internal/pkg/interval"
)

// Output encodings
const (
	OutputText = "text"
	OutputCBOR = "cbor"
)

// Config lists the settings of the isorange command, see the flag descriptions in AddFlags for
// detail.
type Config struct {
	Slashes         bool
	RomanMonths     bool
	Output          string
	LogLevel        string
	ContinueOnError bool
}

//Default returns the configuration used when neither a file nor flags set a value.
func Default() Config {
	return Config{
		Output:   OutputText,
		LogLevel: log.LvlInfo.String(),
	}
}

//Load loads configuration information from configPath. Values missing in the file keep their
//defaults.
func Load(configPath string) (Config, error) {
	config := Default()
	file, err := os.ReadFile(configPath)
	if err != nil {
		log.Error("Could not open config file...", "path", configPath, "error", err)
		return Config{}, errors.Wrap(err, "could not load config")
	}
	if err = json.Unmarshal(file, &config); err != nil {
		log.Error("Could not unmarshal json format of config", "error", err)
		return Config{}, errors.Wrapf(err, "could not parse config %s", configPath)
	}
	if err = config.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", configPath)
	}
	return config, nil
}

//Validate checks that the output encoding and the log level are known.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputCBOR:
	default:
		return errors.Errorf("unknown output encoding %q, expected %s or %s", c.Output, OutputText, OutputCBOR)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

//Level returns the configured log level.
func (c Config) Level() (log.Lvl, error) {
	lvl, err := log.LvlFromString(c.LogLevel)
	if err != nil {
		return lvl, errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	return lvl, nil
}

//Style returns the rendering style selected by c.
func (c Config) Style() interval.Style {
	return interval.Style{Slashes: c.Slashes, RomanMonths: c.RomanMonths}
}

//AddFlags registers flags on fs that are stored in c.
func AddFlags(fs *pflag.FlagSet, c *Config) {
	fs.BoolVarP(&c.Slashes, "slashes", "s", c.Slashes, `swap dashes and slashes, use a space instead of T
and drop the Z suffix. The result is no longer ISO 8601 but easier to read`)
	fs.BoolVarP(&c.RomanMonths, "roman", "r", c.RomanMonths, "write months as Roman numerals, only together with --slashes")
	fs.StringVarP(&c.Output, "output", "o", c.Output, "output encoding, text or cbor")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level, one of crit, error, warn, info, debug")
	fs.BoolVar(&c.ContinueOnError, "continue", c.ContinueOnError, "keep going after a rejected request in batch mode")
}

//Override copies every value that was set on the command line from flags into c.
func (c *Config) Override(fs *pflag.FlagSet, flags Config) {
	if fs.Changed("slashes") {
		c.Slashes = flags.Slashes
	}
	if fs.Changed("roman") {
		c.RomanMonths = flags.RomanMonths
	}
	if fs.Changed("output") {
		c.Output = flags.Output
	}
	if fs.Changed("log-level") {
		c.LogLevel = flags.LogLevel
	}
	if fs.Changed("continue") {
		c.ContinueOnError = flags.ContinueOnError
	}
}
