package filter

// Defaults returns the filters added by Manager.AddDefaultFilters unless
// WithDefaults replaces the discovery function.
func Defaults() []Filter {
	return []Filter{NewPlaceholder()}
}
