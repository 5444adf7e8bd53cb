package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_CashTags(t *testing.T) {
	for _, typ := range []string{"checking", "savings", "depository", "cash", "paypal", "prepaid", "money_market"} {
		c := Classify(typ)
		assert.True(t, c.IsCash, "%s should be cash", typ)
		assert.False(t, c.IsCreditCard, "%s should not be a credit card", typ)
		assert.False(t, c.IsDebt, "%s should not be debt", typ)
	}
}

func TestClassify_CreditCardIsAlsoDebt(t *testing.T) {
	for _, typ := range []string{"credit", "credit_card"} {
		c := Classify(typ)
		assert.True(t, c.IsCreditCard, "%s should be a credit card", typ)
		assert.True(t, c.IsDebt, "%s should be debt", typ)
		assert.False(t, c.IsCash, "%s should not be cash", typ)
	}
}

func TestClassify_LoanFamilyIsDebtOnly(t *testing.T) {
	for _, typ := range []string{
		"loan", "auto", "business", "commercial", "construction", "consumer",
		"home", "home_equity", "mortgage", "overdraft", "line_of_credit",
		"student", "other_liability",
	} {
		c := Classify(typ)
		assert.True(t, c.IsDebt, "%s should be debt", typ)
		assert.False(t, c.IsCreditCard, "%s should not be a credit card", typ)
		assert.False(t, c.IsCash, "%s should not be cash", typ)
	}
}

func TestClassify_UnknownType(t *testing.T) {
	for _, typ := range []string{"", "brokerage", "crypto", "unknown", "401k"} {
		c := Classify(typ)
		assert.Equal(t, Classification{}, c, "%q should match no family", typ)
	}
}

func TestClassify_NormalizesMessyUpstreamStrings(t *testing.T) {
	assert.True(t, Classify("CHECKING").IsCash)
	assert.True(t, Classify("  Savings  ").IsCash)
	assert.True(t, Classify("MONEY_MARKET").IsCash)
	assert.True(t, Classify("Credit_Card!").IsCreditCard)

	// Separators other than underscore are stripped, not converted, so a
	// space-separated variant does not land on the underscored tag.
	assert.False(t, Classify("credit card").IsCreditCard)
	assert.False(t, Classify("money market").IsCash)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "money_market", Normalize("MONEY_MARKET "))
	assert.Equal(t, "creditcard", Normalize("Credit Card"))
	assert.Equal(t, "homeequity", Normalize("home-equity"))
	assert.Equal(t, "checking", Normalize("checking123"))
	assert.Equal(t, "k", Normalize("401(k)"))
	assert.Equal(t, "", Normalize("  £42  "))
}
