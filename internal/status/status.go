// Package status maps an available amount onto a qualitative reading for
// display. It is a presentation concern: the calculation itself carries no
// notion of healthy or low.
package status

// Status is the qualitative reading of an available amount.
type Status string

const (
	Negative Status = "negative"
	Zero     Status = "zero"
	Low      Status = "low"
	Healthy  Status = "healthy"
)

// DefaultLowThreshold is the default exclusive upper bound of the low band,
// in whole currency units.
const DefaultLowThreshold int64 = 100

// For maps an available amount to its reading. lowBelow is the
// caller-configured threshold under which a positive amount reads as low.
func For(available, lowBelow int64) Status {
	switch {
	case available < 0:
		return Negative
	case available == 0:
		return Zero
	case available < lowBelow:
		return Low
	default:
		return Healthy
	}
}
