package convert

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xhit/go-str2duration/v2"
)

// isoDurationPattern matches ISO-8601 durations such as P1DT2H or PT0.5S.
var isoDurationPattern = regexp.MustCompile(
	`^([-+])?P(?:(\d+)W)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:[.,]\d+)?)S)?)?$`)

// DurationConverter parses Go durations ("1h30m"), day and week units ("2d12h", "1w")
// and ISO-8601 durations ("PT15M", "P1DT2H").
type DurationConverter struct{}

// Convert implements Converter.
func (c DurationConverter) Convert(value string, cc *Context) (time.Duration, bool) {
	cc.AddSupportedFormats(c, "<duration> e.g. 1h30m", "<days>d<hours>h, <weeks>w", "ISO-8601 e.g. PT15M, P1DT2H")

	s := strings.TrimSpace(value)

	d, err := time.ParseDuration(s)
	if err == nil {
		return d, true
	}

	d, err = str2duration.ParseDuration(s)
	if err == nil {
		return d, true
	}

	return parseISODuration(s)
}

func parseISODuration(s string) (time.Duration, bool) {
	m := isoDurationPattern.FindStringSubmatch(strings.ToUpper(s))
	if m == nil || strings.HasSuffix(m[0], "P") || strings.HasSuffix(m[0], "T") {
		return 0, false
	}

	units := []time.Duration{7 * 24 * time.Hour, 24 * time.Hour, time.Hour, time.Minute}

	var total time.Duration

	for i, unit := range units {
		if m[i+2] == "" {
			continue
		}

		n, err := strconv.ParseInt(m[i+2], 10, 64)
		if err != nil {
			return 0, false
		}

		total += time.Duration(n) * unit
	}

	if m[6] != "" {
		seconds, err := strconv.ParseFloat(strings.ReplaceAll(m[6], ",", "."), 64)
		if err != nil {
			return 0, false
		}

		total += time.Duration(seconds * float64(time.Second))
	}

	if m[1] == "-" {
		total = -total
	}

	return total, true
}

// TimeLayouts are tried in order by TimeConverter.
//
//nolint:gochecknoglobals // read-only list of layouts
var TimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	time.DateOnly,
	time.RFC1123Z,
	time.RFC1123,
}

// TimeConverter parses timestamps using TimeLayouts.
type TimeConverter struct{}

// Convert implements Converter.
func (c TimeConverter) Convert(value string, cc *Context) (time.Time, bool) {
	cc.AddSupportedFormats(c, TimeLayouts...)

	s := strings.TrimSpace(value)

	for _, layout := range TimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
