package convert

import (
	"net/netip"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// LocaleConverter parses BCP 47 language tags; underscores are accepted as
// separators ("de_DE").
type LocaleConverter struct{}

// Convert implements Converter.
func (c LocaleConverter) Convert(value string, cc *Context) (language.Tag, bool) {
	cc.AddSupportedFormats(c, "<language>", "<language>_<country>", "<language>-<country>")

	s := strings.TrimSpace(value)
	if s == "" {
		return language.Und, false
	}

	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, false
	}

	return tag, true
}

// URLConverter parses URLs and URIs.
type URLConverter struct{}

// Convert implements Converter.
func (c URLConverter) Convert(value string, cc *Context) (*url.URL, bool) {
	cc.AddSupportedFormats(c, "<scheme>://<host>/<path>", "<path>")

	s := strings.TrimSpace(value)
	if s == "" {
		return nil, false
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, false
	}

	return u, true
}

// AddrConverter parses IPv4 and IPv6 addresses.
type AddrConverter struct{}

// Convert implements Converter.
func (c AddrConverter) Convert(value string, cc *Context) (netip.Addr, bool) {
	cc.AddSupportedFormats(c, "<ipv4>", "<ipv6>")

	addr, err := netip.ParseAddr(strings.TrimSpace(value))
	if err != nil {
		return netip.Addr{}, false
	}

	return addr, true
}

// RegexpConverter compiles regular expressions.
type RegexpConverter struct{}

// Convert implements Converter.
func (c RegexpConverter) Convert(value string, cc *Context) (*regexp.Regexp, bool) {
	cc.AddSupportedFormats(c, "<regexp>")

	re, err := regexp.Compile(value)
	if err != nil {
		return nil, false
	}

	return re, true
}
