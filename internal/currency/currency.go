package currency

import (
	"strings"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Reference is the currency every stored amount is expressed in
const Reference = "XOF"

// units of each currency per one XOF
var ratesFromXOF = map[string]decimal.Decimal{
	"XOF": decimal.NewFromInt(1),
	"EUR": decimal.NewFromInt(1).DivRound(decimal.RequireFromString("655.957"), 12),
	"USD": decimal.NewFromInt(1).DivRound(decimal.NewFromInt(600), 12),
	"GBP": decimal.NewFromInt(1).DivRound(decimal.NewFromInt(760), 12),
	"NGN": decimal.RequireFromString("2.5"),
	"GHS": decimal.RequireFromString("0.02"),
	"MAD": decimal.RequireFromString("0.0165"),
}

var countryCurrency = map[string]string{
	"CI": "XOF", "SN": "XOF", "ML": "XOF", "BF": "XOF", "BJ": "XOF", "TG": "XOF", "NE": "XOF", "GW": "XOF",
	"FR": "EUR", "BE": "EUR", "DE": "EUR", "ES": "EUR", "IT": "EUR", "PT": "EUR", "NL": "EUR",
	"US": "USD",
	"GB": "GBP",
	"NG": "NGN",
	"GH": "GHS",
	"MA": "MAD",
}

type style struct {
	tag    language.Tag
	symbol string
	prefix bool
}

var styles = map[string]style{
	"XOF": {tag: language.French, symbol: "FCFA"},
	"EUR": {tag: language.French, symbol: "€"},
	"USD": {tag: language.AmericanEnglish, symbol: "$", prefix: true},
	"GBP": {tag: language.BritishEnglish, symbol: "£", prefix: true},
	"NGN": {tag: language.MustParse("en-NG"), symbol: "₦", prefix: true},
	"GHS": {tag: language.MustParse("en-GH"), symbol: "GH₵", prefix: true},
	"MAD": {tag: language.MustParse("fr-MA"), symbol: "MAD"},
}

// Converter turns reference-currency amounts into display prices. Rates are static.
type Converter struct {
	reference string
}

// NewConverter creates a converter whose stored amounts are in reference. An unknown
// reference falls back to XOF.
func NewConverter(reference string) *Converter {
	ref := strings.ToUpper(reference)
	if _, ok := ratesFromXOF[ref]; !ok {
		ref = Reference
	}
	return &Converter{reference: ref}
}

// ReferenceCode returns the currency stored amounts are expressed in
func (c *Converter) ReferenceCode() string {
	return c.reference
}

// Supported reports whether code has a known rate
func Supported(code string) bool {
	_, ok := ratesFromXOF[strings.ToUpper(code)]
	return ok
}

// Supports is Supported as a method, for callers holding a converter
func (c *Converter) Supports(code string) bool {
	return Supported(code)
}

// Resolve picks the display currency for u: the explicit preference, else the currency of the
// user's country, else the reference currency
func (c *Converter) Resolve(u models.User) string {
	if pref := strings.ToUpper(u.PreferredCurrency); Supported(pref) {
		return pref
	}
	if code, ok := countryCurrency[strings.ToUpper(u.CountryCode)]; ok {
		return code
	}
	return c.reference
}

// Convert expresses amount, given in the reference currency, in code
func (c *Converter) Convert(amount float64, code string) decimal.Decimal {
	target := strings.ToUpper(code)
	if !Supported(target) {
		target = c.reference
	}
	rate := ratesFromXOF[target].DivRound(ratesFromXOF[c.reference], 12)
	return decimal.NewFromFloat(amount).Mul(rate)
}

// FormatIn renders amount converted to code, with no fraction digits and the grouping of the
// currency's locale
func (c *Converter) FormatIn(amount float64, code string) string {
	target := strings.ToUpper(code)
	if !Supported(target) {
		target = c.reference
	}
	whole := c.Convert(amount, target).Round(0).IntPart()
	st := styles[target]

	p := message.NewPrinter(st.tag)
	if st.prefix {
		if whole < 0 {
			return "-" + st.symbol + p.Sprintf("%d", -whole)
		}
		return st.symbol + p.Sprintf("%d", whole)
	}
	return p.Sprintf("%d", whole) + " " + st.symbol
}

// Format renders amount in the display currency of u
func (c *Converter) Format(amount float64, u models.User) string {
	return c.FormatIn(amount, c.Resolve(u))
}
