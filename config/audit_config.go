package config

import (
	"fmt"
	"reflect"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"
	yaml "gopkg.in/yaml.v2"

	"github.com/pivotal-cf/smartguard/dataset"
	"github.com/pivotal-cf/smartguard/patterns"
)

func LoadAuditConfig(bs []byte) (*AuditConfig, error) {
	c := &AuditConfig{}
	err := yaml.UnmarshalStrict(bs, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

type AuditConfig struct {
	CommonPasswordsPath string   `long:"common-passwords" description:"wordlist of known leaked passwords; plain text, .zip or .tgz (default: built-in list)" value-name:"PATH" yaml:"common_passwords_path"`
	SubstitutionsPath   string   `long:"substitutions" description:"symbol=letter substitutions, one per line (default: built-in mapping)" value-name:"PATH" yaml:"substitutions_path"`
	KeyboardPatterns    []string `long:"keyboard-pattern" description:"keyboard row to detect; may be repeated (default: QWERTY rows)" value-name:"ROW" yaml:"keyboard_patterns"`
	SpecialCharacters   string   `long:"special-characters" description:"characters that count as symbols" value-name:"CHARS" yaml:"special_characters"`
	LogLevel            string   `long:"log-level" description:"debug, info, error or fatal (default: info)" value-name:"LEVEL" yaml:"log_level"`
}

// Merge overwrites c with every value set on other.
func (c *AuditConfig) Merge(other *AuditConfig) {
	merge(reflect.ValueOf(c).Elem(), reflect.ValueOf(other).Elem())
}

// ApplyDefaults fills in anything left unset.
func (c *AuditConfig) ApplyDefaults() {
	if len(c.KeyboardPatterns) == 0 {
		c.KeyboardPatterns = append([]string{}, patterns.DefaultKeyboardRows...)
	}

	if c.SpecialCharacters == "" {
		c.SpecialCharacters = dataset.DefaultSpecialCharacters
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *AuditConfig) Validate() error {
	var result error

	for i, pattern := range c.KeyboardPatterns {
		if pattern == "" {
			result = multierror.Append(result, fmt.Errorf("keyboard pattern %d is empty", i+1))
			continue
		}

		if pattern != strings.ToLower(pattern) {
			result = multierror.Append(result, fmt.Errorf("keyboard pattern '%s' must be lower-case", pattern))
		}
	}

	if _, err := c.LagerLogLevel(); err != nil {
		result = multierror.Append(result, err)
	}

	return result
}

func (c *AuditConfig) LagerLogLevel() (lager.LogLevel, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return lager.DEBUG, nil
	case "info", "":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	}

	return lager.INFO, fmt.Errorf("unknown log level '%s'", c.LogLevel)
}
