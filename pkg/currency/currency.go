// Package currency defines currency codes and the table of supported
// exchange pairs. Conversion direction is resolved from the table, so
// supporting another pair is a matter of adding entries, not branches.
package currency

// Code is an ISO 4217 currency code.
type Code string

const (
	// PLN is the domestic currency.
	PLN Code = "PLN"
	// USD is the foreign currency quoted against PLN.
	USD Code = "USD"
)

// DisplayDecimals is the number of fractional digits exposed at the API
// boundary. Stored balances keep full precision.
const DisplayDecimals = 2

// RateRule describes how a bid/ask quote is applied to compute the amount
// of source currency spent for a requested amount of target currency.
type RateRule int

const (
	// MultiplyAsk buys the foreign currency: debit = amount × ask, kept at
	// full precision.
	MultiplyAsk RateRule = iota
	// DivideBid sells the foreign currency back: debit = amount ÷ bid,
	// rounded half-up to 4 fractional digits.
	DivideBid
)

// Direction is one resolved conversion: the currency being acquired, the
// currency being spent, and the rule for applying the quote.
type Direction struct {
	Target Code
	Source Code
	Rule   RateRule
}

// directions keys each supported target currency to its conversion. The
// quote is always for the foreign leg of the pair.
var directions = map[Code]Direction{
	USD: {Target: USD, Source: PLN, Rule: MultiplyAsk},
	PLN: {Target: PLN, Source: USD, Rule: DivideBid},
}

// ResolveDirection returns the conversion for the given target currency.
// The second return value reports whether the target is supported.
func ResolveDirection(target Code) (Direction, bool) {
	d, ok := directions[target]
	return d, ok
}

// IsSupported reports whether the code participates in a supported pair.
func IsSupported(code Code) bool {
	_, ok := directions[code]
	return ok
}

// ListSupported returns the codes of all supported currencies.
func ListSupported() []Code {
	codes := make([]Code, 0, len(directions))
	for code := range directions {
		codes = append(codes, code)
	}
	return codes
}
