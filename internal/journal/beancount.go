package journal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cleared-dev/beanport/internal/model"
)

const dateFormat = "2006-01-02"

// postingIndent prefixes every posting line.
const postingIndent = "  "

// FormatTransaction renders a transaction as a beancount directive, without a
// trailing newline:
//
//	2017-06-08 * "Safeway" ""
//	  Assets:CA:RBC:Chequing  -45.67 CAD
//	  Expenses:Food:Groceries  45.67 CAD
func FormatTransaction(t model.Transaction) string {
	var b strings.Builder
	flag := t.Flag
	if flag == "" {
		flag = model.FlagComplete
	}
	fmt.Fprintf(&b, "%s %s %s %s", t.Date.Format(dateFormat), flag, quote(t.Payee), quote(t.Narration))
	for _, tag := range t.Tags {
		b.WriteString(" #" + tag)
	}
	for _, p := range t.Postings {
		b.WriteString("\n" + postingIndent + p.Account.Name() + "  " + p.Amount.String())
	}
	return b.String()
}

// FormatOpen renders an open directive for account.
func FormatOpen(date time.Time, account model.Account) string {
	return date.Format(dateFormat) + " open " + account.Name()
}

// Write renders every transaction of l, separated by blank lines.
func Write(w io.Writer, l *model.Ledger) error {
	bw := bufio.NewWriter(w)
	for i, t := range l.Transactions {
		if i > 0 {
			if _, err := bw.WriteString("\n"); err != nil {
				return fmt.Errorf("writing transaction %d: %w", i+1, err)
			}
		}
		if _, err := bw.WriteString(FormatTransaction(t) + "\n"); err != nil {
			return fmt.Errorf("writing transaction %d: %w", i+1, err)
		}
	}
	return bw.Flush()
}

// WriteOpen renders one open directive per account.
func WriteOpen(w io.Writer, date time.Time, accounts []model.Account) error {
	bw := bufio.NewWriter(w)
	for _, a := range accounts {
		if _, err := bw.WriteString(FormatOpen(date, a) + "\n"); err != nil {
			return fmt.Errorf("writing open %s: %w", a, err)
		}
	}
	return bw.Flush()
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
