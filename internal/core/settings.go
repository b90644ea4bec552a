package core

// Settings is process-wide display configuration: currency units and
// rates, the spending cap and the UI theme. It only ever affects how
// values are presented; stored amounts stay in the base unit.
type Settings struct {
	BaseUnit    string             `json:"baseUnit" yaml:"baseUnit"`
	DisplayUnit string             `json:"displayUnit" yaml:"displayUnit"`
	Rates       map[string]float64 `json:"rates" yaml:"rates"`
	Cap         float64            `json:"cap" yaml:"cap"`
	Theme       string             `json:"theme" yaml:"theme"`
}

// DefaultSettings mirrors the out-of-the-box configuration: dollars as the
// base and display unit, euro and franc rates, no cap, light theme.
func DefaultSettings() Settings {
	return Settings{
		BaseUnit:    "$",
		DisplayUnit: "$",
		Rates: map[string]float64{
			"$": 1,
			"€": 0.93,
			"F": 600,
		},
		Cap:   0,
		Theme: "light",
	}
}

// Normalize fills gaps left by partial settings payloads: the base unit's
// own rate is pinned to 1, the display unit falls back to the base unit
// and the theme defaults to light.
func (s Settings) Normalize() Settings {
	if s.BaseUnit == "" {
		s.BaseUnit = "$"
	}
	if s.DisplayUnit == "" {
		s.DisplayUnit = s.BaseUnit
	}
	if s.Rates == nil {
		s.Rates = make(map[string]float64)
	}
	s.Rates[s.BaseUnit] = 1
	if s.Theme == "" {
		s.Theme = "light"
	}
	return s
}
