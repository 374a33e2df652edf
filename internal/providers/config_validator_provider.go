package providers

import (
	"drinkdays/internal/structures"
	"fmt"
	"github.com/gookit/validate"
)

type ConfigValidatorInterface interface {
	Validate() error
}

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) ConfigValidatorInterface {
	return &CnfValidator{conf: conf}
}

// Validate checks each section separately so the error names the section.
func (c *CnfValidator) Validate() error {
	sections := []struct {
		name string
		data interface{}
	}{
		{"webServer", &c.conf.WebServer},
		{"storage", &c.conf.Storage},
		{"logger", &c.conf.Logger},
	}
	for _, s := range sections {
		v := validate.Struct(s.data)
		if !v.Validate() {
			return fmt.Errorf("config section %s: %s", s.name, v.Errors.One())
		}
	}
	if c.conf.Cache.Enabled && c.conf.Cache.Size <= 0 {
		return fmt.Errorf("config section cache: size must be positive when enabled")
	}
	if c.conf.Cache.TTL < 0 {
		return fmt.Errorf("config section cache: ttl must not be negative")
	}
	return nil
}
