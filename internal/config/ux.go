package config

// UIConfig holds terminal output configuration.
type UIConfig struct {
	// Theme selects the color palette: auto, light or dark.
	Theme string `json:"theme" yaml:"theme"`

	// Precision is the number of decimals shown for coordinates.
	Precision int `json:"precision" yaml:"precision"`

	// ShowPoints toggles the vertex table under each parsed shape.
	ShowPoints bool `json:"show_points" yaml:"show_points"`

	// HistorySize caps the interactive session scrollback (0 = default).
	HistorySize int `json:"history_size,omitempty" yaml:"history_size,omitempty"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:       "auto",
		Precision:   2,
		ShowPoints:  true,
		HistorySize: 50,
	}
}

// GetHistorySize returns HistorySize with the default applied.
func (c *UIConfig) GetHistorySize() int {
	if c.HistorySize <= 0 {
		return 50
	}
	return c.HistorySize
}
