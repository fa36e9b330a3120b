package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/beanport/internal/model"
)

func TestResolve_RenameHit(t *testing.T) {
	c := Default().Resolve("Netflix.Com", "")
	assert.Equal(t, "Netflix", c.Payee)
	assert.Empty(t, c.Description)
	assert.Equal(t, model.Account("Expenses:Leisure:Entertainment:Streaming"), c.Account)
}

func TestResolve_RenameToEmpty(t *testing.T) {
	c := Default().Resolve("Broadway & Macdonald", "")
	assert.Empty(t, c.Payee)
	assert.Empty(t, c.Description)
	assert.Equal(t, model.UncategorizedAccount, c.Account)
}

func TestCategorize_AmpersandNames(t *testing.T) {
	tests := []struct {
		raw     string
		payee   string
		account model.Account
	}{
		{"A&W STORE", "A&W", "Expenses:Food:FastFood"},
		{"A&amp;W", "A&W", "Expenses:Food:FastFood"},
		{"H&M CA -METROPOLIS", "H&M", "Expenses:Living:Clothes:Clothes"},
	}
	for _, tt := range tests {
		c := Default().Categorize(tt.raw, "")
		assert.Equal(t, tt.payee, c.Payee, "payee for %q", tt.raw)
		assert.Empty(t, c.Description, "description for %q", tt.raw)
		assert.Equal(t, tt.account, c.Account, "account for %q", tt.raw)
	}
}

func TestResolve_RenameOverridesHint(t *testing.T) {
	c := Default().Resolve("Compass Vending", "RBC")
	assert.Equal(t, "Translink", c.Payee)
	assert.Empty(t, c.Description)
	// Translink has no category rule.
	assert.Equal(t, model.UncategorizedAccount, c.Account)
}

func TestResolve_KnownPayee(t *testing.T) {
	c := Default().Resolve("Safeway", "")
	assert.Equal(t, "Safeway", c.Payee)
	assert.Empty(t, c.Description)
	assert.Equal(t, model.Account("Expenses:Food:Groceries"), c.Account)
}

func TestResolve_KnownPayeeWithoutAccount(t *testing.T) {
	c := Default().Resolve("Red Card Sports Bar", "")
	assert.Equal(t, "Red Card Sports Bar", c.Payee)
	assert.Empty(t, c.Description)
	assert.Equal(t, model.UncategorizedAccount, c.Account)
}

func TestResolve_Fallback(t *testing.T) {
	c := Default().Resolve("Local Cafe Purchase", "")
	assert.Empty(t, c.Payee)
	assert.Equal(t, "Local Cafe Purchase", c.Description)
	assert.Equal(t, model.UncategorizedAccount, c.Account)
}

func TestResolve_FallbackKeepsHint(t *testing.T) {
	c := Default().Resolve("", "Tangerine")
	assert.Equal(t, "Tangerine", c.Payee)
	assert.Empty(t, c.Description)
	assert.Equal(t, model.Account("Income:FinancialInstitutions:Interests"), c.Account)

	c = Default().Resolve("Monthly Fee", "RBC")
	assert.Equal(t, "RBC", c.Payee)
	assert.Equal(t, "Monthly Fee", c.Description)
	assert.Equal(t, model.Account("Expenses:FinancialInstitutions"), c.Account)
}

func TestResolve_CategoryIsFunctionOfPayee(t *testing.T) {
	tables := Default()
	// Two different bank texts that end up on the same payee.
	a := tables.Resolve("Earls Yaletown", "")
	b := tables.Resolve("Earl's Fir Street", "")
	assert.Equal(t, a.Payee, b.Payee)
	assert.Equal(t, a.Account, b.Account)

	c := tables.Resolve("Jugo Juice", "")
	d := tables.Resolve("Jugo Juice Broadway St", "")
	assert.Equal(t, "Jugo Juice", d.Payee)
	assert.Equal(t, c.Account, d.Account)
}

func TestResolve_ExactMatchOnly(t *testing.T) {
	c := Default().Resolve("SAFEWAY", "")
	assert.Empty(t, c.Payee)
	assert.Equal(t, "SAFEWAY", c.Description)
	assert.Equal(t, model.UncategorizedAccount, c.Account)
}

func TestCategorize(t *testing.T) {
	c := Default().Categorize("IDP PURCHASE -1234 SAFEWAY #102 BC CA", "")
	assert.Equal(t, Categorization{Payee: "Safeway", Account: "Expenses:Food:Groceries"}, c)
}

func TestWithUncategorized(t *testing.T) {
	base := Default()
	custom := base.WithUncategorized("Expenses:Uncategorized")
	assert.Equal(t, model.Account("Expenses:Uncategorized"), custom.CategoryAccount("Nobody"))
	assert.Equal(t, model.UncategorizedAccount, base.CategoryAccount("Nobody"))
}

func TestNew_EmptyAccountRejected(t *testing.T) {
	_, err := New(File{Accounts: map[string]string{"Safeway": " "}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Safeway")
}

func TestNew_BadPattern(t *testing.T) {
	_, err := New(File{StripPatterns: []string{"("}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strip patterns")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules", "categorization-rules.yaml")
	require.NoError(t, Save(path, Default()))

	got, err := Load(path)
	require.NoError(t, err)

	want := Default().File()
	assert.Equal(t, want, got.File())
	assert.Equal(t, Default().Categorize("VISA DEBIT PUR-0042 NETFLIX.COM", ""), got.Categorize("VISA DEBIT PUR-0042 NETFLIX.COM", ""))
}

func TestLoad_CustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `strip_patterns:
  - "REF [0-9]+"
rename:
  "Corner Store 42": "Corner Store"
payees:
  - "Bakery"
accounts:
  "Corner Store": "Expenses:Food:Groceries"
  "Bakery": "Expenses:Food:Snack"
uncategorized_account: "Expenses:Unknown"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tables, err := Load(path)
	require.NoError(t, err)

	c := tables.Categorize("REF 991 CORNER STORE 42", "")
	assert.Equal(t, "Corner Store", c.Payee)
	assert.Equal(t, model.Account("Expenses:Food:Groceries"), c.Account)

	c = tables.Categorize("bakery", "")
	assert.Equal(t, "Bakery", c.Payee)
	assert.Equal(t, model.Account("Expenses:Food:Snack"), c.Account)

	c = tables.Categorize("Safeway", "")
	assert.Equal(t, model.Account("Expenses:Unknown"), c.Account)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault(t *testing.T) {
	tables, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Same(t, Default(), tables)

	tables, err = LoadOrDefault("")
	require.NoError(t, err)
	assert.Same(t, Default(), tables)
}
