package convert

import (
	"strings"
	"unicode/utf8"
)

// BoolConverter accepts true/false, yes/no, y/n, on/off, t/f and 1/0, ignoring case.
type BoolConverter struct{}

// Convert implements Converter.
func (c BoolConverter) Convert(value string, cc *Context) (bool, bool) {
	cc.AddSupportedFormats(c, "true", "false", "yes", "no", "y", "n", "on", "off", "t", "f", "1", "0")

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "y", "on", "t", "1":
		return true, true
	case "false", "no", "n", "off", "f", "0":
		return false, true
	default:
		return false, false
	}
}

// StringConverter returns the value unchanged.
type StringConverter struct{}

// Convert implements Converter.
func (StringConverter) Convert(value string, _ *Context) (string, bool) {
	return value, true
}

// BytesConverter returns the raw bytes of the value.
type BytesConverter struct{}

// Convert implements Converter.
func (BytesConverter) Convert(value string, _ *Context) ([]byte, bool) {
	return []byte(value), true
}

// RuneConverter accepts a single character. It is registered after the int32
// converter, so numeric values keep their integer meaning.
type RuneConverter struct{}

// Convert implements Converter.
func (c RuneConverter) Convert(value string, cc *Context) (rune, bool) {
	cc.AddSupportedFormats(c, "<single character>")

	if utf8.RuneCountInString(value) != 1 {
		return 0, false
	}

	r, _ := utf8.DecodeRuneInString(value)

	return r, true
}
