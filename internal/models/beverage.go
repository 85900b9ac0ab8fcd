package models

// Beverage is a common drink and its typical caffeine content
type Beverage struct {
	Name       string `toml:"name" json:"name"`
	CaffeineMg int    `toml:"caffeine_mg" json:"caffeine_mg"`
}
