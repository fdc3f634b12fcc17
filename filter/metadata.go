package filter

import "github.com/0xalexb/hjarta-config/property"

// HideMetadata drops flattened metadata entries (keys starting with
// property.MetaPrefix) from bulk enumerations. Single-key lookups pass through.
type HideMetadata struct{}

// Filter implements Filter.
func (HideMetadata) Filter(value *property.Value, fc *Context) (*property.Value, error) {
	if !fc.SinglePropertyScoped() && property.IsMetaKey(value.Key()) {
		return nil, nil //nolint:nilnil // suppressed
	}

	return value, nil
}

// Name implements Named.
func (HideMetadata) Name() string {
	return "hide-metadata"
}

// Description implements Described.
func (HideMetadata) Description() string {
	return "removes " + property.MetaPrefix + "-prefixed metadata entries from enumerations"
}
