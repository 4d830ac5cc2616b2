package main

import (
	"crypto/ed25519"
	"os"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/yieldex"
)

const (
	encodingHex    = "hex"
	encodingBase64 = "base64"
	encodingBase58 = "base58"

	outputYAML = "yaml"
	outputJSON = "json"
)

// Config is loaded from an optional YAML file, then the environment, then
// command line flags.
type Config struct {
	LogLevel string `mapstructure:"log_level"`

	// ProgramID is the base58 address instructions in decoded transactions
	// must be addressed to.
	ProgramID string `mapstructure:"program_id"`

	// Encoding of positional input: hex, base64 or base58.
	Encoding string `mapstructure:"encoding"`

	// Output format: yaml or json.
	Output string `mapstructure:"output"`
}

var defaultConfig = Config{
	LogLevel:  "warn",
	ProgramID: base58.Encode(yieldex.PROGRAM_ID),
	Encoding:  encodingHex,
	Output:    outputYAML,
}

func newViper() *viper.Viper {
	v := viper.New()

	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("program_id", "YIELDEX_PROGRAM_ID")
	_ = v.BindEnv("encoding", "YIELDEX_ENCODING")
	_ = v.BindEnv("output", "YIELDEX_OUTPUT")

	return v
}

// loadConfig reads the config file at path when it exists. A missing file is
// only an error when required is set.
func loadConfig(v *viper.Viper, path string, required bool) (Config, error) {
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config %s", path)
		}
	} else if !os.IsNotExist(err) || required {
		return Config{}, errors.Wrapf(err, "failed to check config %s", path)
	}

	config := defaultConfig
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal config")
	}
	return config, nil
}

func (c Config) validate() error {
	switch c.Encoding {
	case encodingHex, encodingBase64, encodingBase58:
	default:
		return errors.Errorf("unsupported encoding %q", c.Encoding)
	}

	switch c.Output {
	case outputYAML, outputJSON:
	default:
		return errors.Errorf("unsupported output %q", c.Output)
	}

	if _, err := c.programID(); err != nil {
		return err
	}
	return nil
}

func (c Config) programID() (ed25519.PublicKey, error) {
	key, err := base58.Decode(c.ProgramID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid program id %q", c.ProgramID)
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, errors.Errorf("invalid program id %q: %d bytes", c.ProgramID, len(key))
	}
	return key, nil
}
