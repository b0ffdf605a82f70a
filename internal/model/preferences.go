package model

// Preferences holds user preferences shared across ecosystems.
type Preferences struct {
	// Model is the selected model id. Empty means not set.
	Model string

	// Custom is reserved for forward compatibility and is currently unused.
	Custom map[string]string
}

// IsZero reports whether no preference is set.
func (p Preferences) IsZero() bool {
	return p.Model == "" && len(p.Custom) == 0
}
