// Package classify turns raw rows into canonical records and decides, row by
// row, what is kept and why anything is dropped.
package classify

import (
	"strings"
	"time"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/columns"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/extractors"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/normalize"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewBankTransaction builds a canonical line from a signed amount. Zero and
// positive amounts are income; the stored amount is always the magnitude.
func NewBankTransaction(date time.Time, description string, signed decimal.Decimal) models.BankTransaction {
	direction := models.DirectionIncome
	if signed.Sign() < 0 {
		direction = models.DirectionExpense
	}
	description = strings.TrimSpace(description)
	return models.BankTransaction{
		ID:          uuid.New(),
		Date:        date,
		Description: description,
		Amount:      signed.Abs(),
		Direction:   direction,
		Counterpart: Counterpart(description),
	}
}

// BankFromOFX converts every STMTTRN block. The description is MEMO, or NAME
// when there is no memo. A block without FITID keeps a nil external id and a
// block without a usable date is dated now.
func BankFromOFX(stmt extractors.Statement, now time.Time) ([]models.BankTransaction, models.ImportDiagnostics) {
	diag := NewDiagnostics()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	txs := make([]models.BankTransaction, 0, len(stmt.Transactions))
	for _, t := range stmt.Transactions {
		date, ok := normalize.Date(t.Posted)
		if !ok {
			date = today
		}

		description := firstNonEmpty(t.Memo, t.Name)
		tx := NewBankTransaction(date, description, normalize.Amount(t.Amount))
		// NAME is the payee tag; when MEMO carried the description it beats a guess
		if name := strings.TrimSpace(t.Name); name != "" && name != description {
			name = truncateRunes(name, maxCounterpartLen)
			tx.Counterpart = &name
		}
		if fitid := strings.TrimSpace(t.FITID); fitid != "" {
			tx.ExternalID = &fitid
		}
		tx.Source = models.SourceOFX

		txs = append(txs, tx)
		diag.Accept()
	}
	return txs, diag.Result()
}

// BankFromRows converts delimited or grid rows through a bank profile table.
// If the date or amount column cannot be found the whole file is dropped and
// no transaction is returned. Rows whose date does not parse are rejected.
func BankFromRows(rows []models.RawRow, table columns.Table) ([]models.BankTransaction, models.ImportDiagnostics) {
	diag := NewDiagnostics()
	if len(rows) == 0 {
		return nil, diag.Result()
	}

	binding := columns.Bind(table, rows[0].Headers())
	diag.Coverage(binding, rows[0])
	if len(binding.MissingRequired()) > 0 {
		diag.Abort(len(rows), ReasonMissingColumns)
		return nil, diag.Result()
	}

	txs := make([]models.BankTransaction, 0, len(rows))
	for _, row := range rows {
		rawDate, _ := binding.Get(row, columns.BankDate)
		date, ok := normalize.Date(rawDate)
		if !ok {
			diag.Reject(ReasonInvalidDate)
			continue
		}

		rawAmount, _ := binding.Get(row, columns.BankAmount)
		tx := NewBankTransaction(date, binding.String(row, columns.BankDescription), normalize.Amount(rawAmount))
		if rawBalance, ok := binding.Get(row, columns.BankBalance); ok {
			balance := normalize.Amount(rawBalance)
			tx.Balance = &balance
		}

		txs = append(txs, tx)
		diag.Accept()
	}
	return txs, diag.Result()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
