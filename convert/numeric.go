package convert

import (
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of floating point types.
type Float interface {
	~float32 | ~float64
}

// IntConverter parses decimal or 0x-prefixed hexadecimal integers with an optional
// sign, plus the MIN/MIN_VALUE and MAX/MAX_VALUE sentinels.
type IntConverter[T Signed] struct{}

// Convert implements Converter.
func (c IntConverter[T]) Convert(value string, cc *Context) (T, bool) {
	cc.AddSupportedFormats(c, "<int>", "MIN_VALUE", "MIN", "MAX_VALUE", "MAX", "0x<hex>", "-0x<hex>")

	n, ok := parseSigned(value, reflect.TypeFor[T]().Bits())
	if !ok {
		return 0, false
	}

	return T(n), true
}

// UintConverter parses unsigned integers like IntConverter; MIN is zero.
type UintConverter[T Unsigned] struct{}

// Convert implements Converter.
func (c UintConverter[T]) Convert(value string, cc *Context) (T, bool) {
	cc.AddSupportedFormats(c, "<uint>", "MIN_VALUE", "MIN", "MAX_VALUE", "MAX", "0x<hex>")

	n, ok := parseUnsigned(value, reflect.TypeFor[T]().Bits())
	if !ok {
		return 0, false
	}

	return T(n), true
}

// FloatConverter parses floating point literals and the MIN_VALUE (smallest
// positive value), MAX_VALUE, NAN, POSITIVE_INFINITY and NEGATIVE_INFINITY
// sentinels. Values that are not float literals are retried as integers, so
// "0xFF" yields 255.
type FloatConverter[T Float] struct{}

// Convert implements Converter.
func (c FloatConverter[T]) Convert(value string, cc *Context) (T, bool) {
	cc.AddSupportedFormats(c, "<float>", "MIN_VALUE", "MIN", "MAX_VALUE", "MAX",
		"NAN", "POSITIVE_INFINITY", "NEGATIVE_INFINITY")

	bits := reflect.TypeFor[T]().Bits()
	trimmed := strings.TrimSpace(value)

	if sentinel, ok := floatSentinel(trimmed, bits); ok {
		return T(sentinel), true
	}

	f, err := strconv.ParseFloat(trimmed, bits)
	if err == nil {
		return T(f), true
	}

	n, ok := IntConverter[int64]{}.Convert(trimmed, cc)
	if !ok {
		return 0, false
	}

	return T(n), true
}

// BigIntConverter parses arbitrary size integers; base prefixes 0x, 0o and 0b are honored.
type BigIntConverter struct{}

// Convert implements Converter.
func (c BigIntConverter) Convert(value string, cc *Context) (*big.Int, bool) {
	cc.AddSupportedFormats(c, "<bigint>", "0x<hex>", "0o<octal>", "0b<binary>")

	n, ok := new(big.Int).SetString(strings.TrimSpace(value), 0)
	if !ok {
		return nil, false
	}

	return n, true
}

// DecimalConverter parses arbitrary precision decimals, falling back to BigIntConverter.
type DecimalConverter struct{}

// Convert implements Converter.
func (c DecimalConverter) Convert(value string, cc *Context) (decimal.Decimal, bool) {
	cc.AddSupportedFormats(c, "<decimal>", "<decimal>e<exp>")

	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err == nil {
		return d, true
	}

	n, ok := BigIntConverter{}.Convert(value, cc)
	if !ok {
		return decimal.Zero, false
	}

	return decimal.NewFromBigInt(n, 0), true
}

func floatSentinel(s string, bits int) (float64, bool) {
	smallest, largest := math.SmallestNonzeroFloat64, math.MaxFloat64
	if bits == 32 {
		smallest, largest = math.SmallestNonzeroFloat32, math.MaxFloat32
	}

	switch strings.ToUpper(s) {
	case "MIN", "MIN_VALUE":
		return smallest, true
	case "MAX", "MAX_VALUE":
		return largest, true
	case "NAN":
		return math.NaN(), true
	case "POSITIVE_INFINITY":
		return math.Inf(1), true
	case "NEGATIVE_INFINITY":
		return math.Inf(-1), true
	default:
		return 0, false
	}
}

func parseSigned(value string, bits int) (int64, bool) {
	s := strings.TrimSpace(value)

	switch strings.ToUpper(s) {
	case "MIN", "MIN_VALUE":
		return math.MinInt64 >> (64 - bits), true
	case "MAX", "MAX_VALUE":
		return math.MaxInt64 >> (64 - bits), true
	}

	digits, negative := cutSign(s)

	if hex, ok := cutHexPrefix(digits); ok {
		magnitude, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return 0, false
		}

		limit := uint64(1) << (bits - 1)

		if negative {
			if magnitude > limit {
				return 0, false
			}

			return -int64(magnitude), true //nolint:gosec // range checked above
		}

		if magnitude >= limit {
			return 0, false
		}

		return int64(magnitude), true
	}

	n, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return 0, false
	}

	return n, true
}

func parseUnsigned(value string, bits int) (uint64, bool) {
	s := strings.TrimSpace(value)

	switch strings.ToUpper(s) {
	case "MIN", "MIN_VALUE":
		return 0, true
	case "MAX", "MAX_VALUE":
		return math.MaxUint64 >> (64 - bits), true
	}

	digits, negative := cutSign(s)
	if negative {
		return 0, false
	}

	base := 10
	if hex, ok := cutHexPrefix(digits); ok {
		digits, base = hex, 16
	}

	n, err := strconv.ParseUint(digits, base, bits)
	if err != nil {
		return 0, false
	}

	return n, true
}

func cutSign(s string) (string, bool) {
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return rest, true
	}

	return strings.TrimPrefix(s, "+"), false
}

func cutHexPrefix(s string) (string, bool) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return rest, true
	}

	return strings.CutPrefix(s, "0X")
}
