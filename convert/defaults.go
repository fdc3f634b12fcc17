package convert

import (
	"math/big"
	"net/netip"
	"net/url"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// RegisterDefaults registers the built-in converters on r.
func RegisterDefaults(r *Registry) *Registry {
	Register[bool](r, BoolConverter{})
	Register[string](r, StringConverter{})
	Register[[]byte](r, BytesConverter{})

	Register[int](r, IntConverter[int]{})
	Register[int8](r, IntConverter[int8]{})
	Register[int16](r, IntConverter[int16]{})
	Register[int32](r, IntConverter[int32]{})
	Register[rune](r, RuneConverter{})
	Register[int64](r, IntConverter[int64]{})
	Register[uint](r, UintConverter[uint]{})
	Register[uint8](r, UintConverter[uint8]{})
	Register[uint16](r, UintConverter[uint16]{})
	Register[uint32](r, UintConverter[uint32]{})
	Register[uint64](r, UintConverter[uint64]{})
	Register[float32](r, FloatConverter[float32]{})
	Register[float64](r, FloatConverter[float64]{})
	Register[*big.Int](r, BigIntConverter{})
	Register[decimal.Decimal](r, DecimalConverter{})

	Register[time.Duration](r, DurationConverter{})
	Register[time.Time](r, TimeConverter{})

	Register[currency.Unit](r, CurrencyConverter{})
	Register[language.Tag](r, LocaleConverter{})
	Register[*url.URL](r, URLConverter{})
	Register[netip.Addr](r, AddrConverter{})
	Register[*regexp.Regexp](r, RegexpConverter{})

	return r
}

// NewDefaultRegistry returns a Registry with the built-in converters.
func NewDefaultRegistry() *Registry {
	return RegisterDefaults(NewRegistry())
}
