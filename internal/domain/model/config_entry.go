package model

// ConfigEntry is one key/value setting stored by the pipeline. Secret values
// are write-only from the console's point of view and render masked.
type ConfigEntry struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	IsSecret bool   `json:"is_secret"`
}

// DisplayValue returns the value suitable for rendering, masking secrets.
func (e ConfigEntry) DisplayValue() string {
	if e.IsSecret && e.Value != "" {
		return "••••••••"
	}
	return e.Value
}
