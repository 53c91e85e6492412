package config

import (
	"github.com/spf13/viper"

	"github.com/cpTheAideveloper/geminimultilingual/internal/metadata"
)

// ServeConfig carries the serve settings that may come from the environment.
// The values only seed flag defaults, so an explicit flag always wins.
type ServeConfig struct {
	Addr    string
	Model   string
	LogFile string
	Debug   bool
}

// LoadServe reads GEMINIML_* environment variables, falling back to the
// built-in defaults. Empty environment values count as unset.
func LoadServe() ServeConfig {
	v := viper.New()
	v.SetEnvPrefix("GEMINIML")
	v.AutomaticEnv()

	v.SetDefault("ADDR", ":8080")
	v.SetDefault("MODEL", metadata.DefaultModelID)
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("DEBUG", false)

	return ServeConfig{
		Addr:    v.GetString("ADDR"),
		Model:   v.GetString("MODEL"),
		LogFile: v.GetString("LOG_FILE"),
		Debug:   v.GetBool("DEBUG"),
	}
}
