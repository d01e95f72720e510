package models

// Settings represents the application configuration
type Settings struct {
	Catalog string          `yaml:"catalog,omitempty"` // catalog file; empty uses the built-in catalog
	UI      UISettings      `yaml:"ui"`
	Logging LoggingSettings `yaml:"logging"`
}

// UISettings controls UI preferences
type UISettings struct {
	Mouse      bool `yaml:"mouse"`
	PanelWidth int  `yaml:"panel_width"`
	StartOpen  bool `yaml:"start_open"`
}

// LoggingSettings controls the debug log
type LoggingSettings struct {
	Dir    string `yaml:"dir,omitempty"`
	Level  string `yaml:"level"`  // "debug", "info", "warn" or "error"
	Format string `yaml:"format"` // "json" or "text"
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			Mouse:      true,
			PanelWidth: 44,
			StartOpen:  false,
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "json",
		},
	}
}
