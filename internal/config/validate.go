package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0 (got %v)", c.Server.ShutdownTimeout)
	}

	if err := c.Dictionary.validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}

	return nil
}

func (c *DictionaryConfig) validate() error {
	if c.CreateMissing && !c.AllowMissing {
		return fmt.Errorf("create_missing requires allow_missing")
	}
	if c.Replacement != "" && c.CreateMissing {
		return fmt.Errorf("replacement and create_missing are mutually exclusive")
	}
	return nil
}
