package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/core/config"
	"github.com/msto63/textkit/foundation/utils/tablex"
)

const appName = "textkit"

// defaults mirrors the documented configuration keys.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "text",
		},
		"align": map[string]interface{}{
			"least_blank": 4,
			"tab_width":   4,
			"separator":   "",
			"east_asian":  false,
		},
		"table": map[string]interface{}{
			"max_col_width": tablex.DefaultMaxColWidth,
			"border":        "normal",
			"shorten":       true,
		},
		"width": map[string]interface{}{
			"ambiguous_wide": runtime.GOOS == "windows",
		},
		"shorten": map[string]interface{}{
			"width":       200,
			"placeholder": "...",
		},
	}
}

func configRules() config.ValidationRules {
	return config.ValidationRules{
		"log.level":            {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error", "fatal"}},
		"log.format":           {Type: "string", OneOf: []string{"text", "json", "logfmt", "console"}},
		"align.least_blank":    {Type: "int", Min: config.Bound(1), Max: config.Bound(1000)},
		"align.tab_width":      {Type: "int", Min: config.Bound(1), Max: config.Bound(64)},
		"align.separator":      {Type: "string"},
		"align.east_asian":     {Type: "bool"},
		"table.max_col_width":  {Type: "int", Min: config.Bound(0)},
		"table.border":         {Type: "string", OneOf: tablex.Borders()},
		"table.shorten":        {Type: "bool"},
		"width.ambiguous_wide": {Type: "bool"},
		"shorten.width":        {Type: "int", Min: config.Bound(0)},
		"shorten.placeholder":  {Type: "string"},
	}
}

// loadConfig reads path, or discovers textkit.toml / textkit.yaml when path
// is empty. A missing discovered file is not an error.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadWithOptions(path, config.LoadOptions{
			EnvPrefix: appName,
			Defaults:  defaults(),
		})
	}

	options := config.DefaultDiscoveryOptions(appName)
	options.Defaults = defaults()
	return config.Discover(options)
}

// The setting helpers prefer an explicitly set flag over the configuration.

func (a *app) intSetting(cmd *cobra.Command, flag, key string) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	return a.cfg.GetInt(key)
}

func (a *app) stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return a.cfg.GetString(key)
}

func (a *app) boolSetting(cmd *cobra.Command, flag, key string) bool {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetBool(flag)
		return v
	}
	return a.cfg.GetBool(key)
}
