package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/beanport/internal/model"
)

func ledgerOf(txns ...model.Transaction) *model.Ledger {
	l := model.NewLedger()
	for _, t := range txns {
		l.Add(t)
	}
	return l
}

func hasInvariant(errs []ValidationError, inv int) bool {
	for _, e := range errs {
		if e.Invariant == inv {
			return true
		}
	}
	return false
}

func TestValidate_Balanced(t *testing.T) {
	errs := ValidateLedger(ledgerOf(sampleTxn("Safeway", "", "Expenses:Food:Groceries", "-45.67")))
	assert.Empty(t, errs)
}

func TestValidate_EmptyLedger(t *testing.T) {
	assert.Empty(t, ValidateLedger(model.NewLedger()))
}

func TestValidate_WrongPostingCount(t *testing.T) {
	txn := sampleTxn("Safeway", "", "Expenses:Food:Groceries", "-45.67")
	txn.Postings = append(txn.Postings, model.Posting{Account: "Expenses:Other", Amount: model.NewAmount(dec("0"), "CAD")})
	errs := ValidateLedger(ledgerOf(txn))
	require.NotEmpty(t, errs)
	assert.True(t, hasInvariant(errs, 1))
}

func TestValidate_Unbalanced(t *testing.T) {
	txn := sampleTxn("Safeway", "", "Expenses:Food:Groceries", "-45.67")
	txn.Postings[1].Amount.Number = dec("45.66")
	errs := ValidateLedger(ledgerOf(txn))
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Invariant)
	assert.Contains(t, errs[0].Error(), "txn 1")
}

func TestValidate_MixedCommodities(t *testing.T) {
	txn := sampleTxn("Safeway", "", "Expenses:Food:Groceries", "-45.67")
	txn.Postings[1].Amount.Commodity = "USD"
	errs := ValidateLedger(ledgerOf(txn))
	assert.True(t, hasInvariant(errs, 3))
}

func TestValidate_MissingAccount(t *testing.T) {
	txn := sampleTxn("Safeway", "", "", "-45.67")
	errs := ValidateLedger(ledgerOf(txn))
	assert.True(t, hasInvariant(errs, 4))
}

func TestValidate_TooManyDecimals(t *testing.T) {
	txn := sampleTxn("Safeway", "", "Expenses:Food:Groceries", "-45.675")
	errs := ValidateLedger(ledgerOf(txn))
	require.Len(t, errs, 2, "both postings carry three decimals")
	assert.Equal(t, 5, errs[0].Invariant)
}

func TestValidate_BadFlag(t *testing.T) {
	txn := sampleTxn("Safeway", "", "Expenses:Food:Groceries", "-45.67")
	txn.Flag = "P"
	errs := ValidateLedger(ledgerOf(txn))
	assert.True(t, hasInvariant(errs, 6))
}

func TestValidate_IndexesTransactions(t *testing.T) {
	good := sampleTxn("Safeway", "", "Expenses:Food:Groceries", "-45.67")
	bad := sampleTxn("Safeway", "", "Expenses:Food:Groceries", "-45.67")
	bad.Flag = "?"
	errs := ValidateLedger(ledgerOf(good, bad))
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Index)
}

func TestValidate_JoinsViolations(t *testing.T) {
	good := sampleTxn("Safeway", "", "Expenses:Food:Groceries", "-45.67")
	require.NoError(t, Validate(ledgerOf(good)))

	bad := sampleTxn("Safeway", "", "Expenses:Food:Groceries", "-1.005")
	err := Validate(ledgerOf(good, bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed: invariant 5 [txn 2]")
	assert.Contains(t, err.Error(), "; invariant 5 [txn 2]: posting 2")
}
