// Package classify maps raw upstream account-type strings onto the cash,
// credit-card, and debt families used by the calculation engine.
package classify

import "strings"

// Classification reports which account families a raw type string belongs
// to. Credit cards are a subset of debts; cash and credit-card are mutually
// exclusive by construction of the tag sets. A type matching none of the
// three is not an error; such accounts are excluded from every bucket.
type Classification struct {
	IsCash       bool
	IsCreditCard bool
	IsDebt       bool
}

// creditCardTagList is shared between the credit-card and debt sets so the
// subset relationship cannot drift when tags are added.
var creditCardTagList = []string{"credit", "credit_card"}

var (
	cashTags = tagSet(
		"checking", "savings", "depository", "cash",
		"paypal", "prepaid", "money_market",
	)

	creditCardTags = tagSet(creditCardTagList...)

	debtTags = tagSet(append([]string{
		"loan", "auto", "business", "commercial", "construction", "consumer",
		"home", "home_equity", "mortgage", "overdraft", "line_of_credit",
		"student", "other_liability",
	}, creditCardTagList...)...)
)

// Classify normalizes a raw account-type string and tests it against the
// curated tag sets.
func Classify(accountType string) Classification {
	tag := Normalize(accountType)
	return Classification{
		IsCash:       cashTags[tag],
		IsCreditCard: creditCardTags[tag],
		IsDebt:       debtTags[tag],
	}
}

// Normalize lower-cases a raw account type and strips every character that
// is not a lowercase letter or underscore, so "Money_Market" and
// "MONEY_MARKET " normalize to the same tag.
func Normalize(accountType string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r == '_' {
			return r
		}
		return -1
	}, strings.ToLower(accountType))
}

func tagSet(tags ...string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	return set
}
