package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Push.Enabled && c.Push.APIKey == "" {
		return fmt.Errorf("push.api_key (FCM_API_KEY) is required while push is enabled")
	}

	if c.Storage.ImageDir == "" {
		return fmt.Errorf("storage.image_dir must not be empty")
	}
	if c.Storage.MaxUploadBytes <= 0 {
		return fmt.Errorf("storage.max_upload_bytes must be > 0 (got %d)", c.Storage.MaxUploadBytes)
	}

	if c.Live.ReadLimit <= 0 {
		return fmt.Errorf("live.read_limit must be > 0 (got %d)", c.Live.ReadLimit)
	}

	return nil
}
