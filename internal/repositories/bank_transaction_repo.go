package repositories

import (
	"context"
	"fmt"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BankTransactionRepository interface {
	InsertBatch(ctx context.Context, txs []models.BankTransaction) (int, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.BankTransaction, error)
	ListPage(ctx context.Context, ownerID uuid.UUID, filter models.BankTransactionFilter, limit, offset int) ([]models.BankTransaction, error)
	SetCategory(ctx context.Context, ownerID, id uuid.UUID, category *string) error
	Summary(ctx context.Context, ownerID uuid.UUID, filter models.BankTransactionFilter) (*models.TransactionSummary, error)
}

type bankTransactionRepo struct {
	db DBTX
}

func NewBankTransactionRepo(db DBTX) BankTransactionRepository {
	return &bankTransactionRepo{db: db}
}

const bankTransactionColumns = `id, owner_id, batch_id, date, description, amount, direction, counterpart, balance, external_id, category, source, bank_profile, created_at`

// InsertBatch writes all lines in one transaction and returns how many were
// new. Lines whose external id the owner already has are skipped; lines
// without one are always inserted.
func (r *bankTransactionRepo) InsertBatch(ctx context.Context, txs []models.BankTransaction) (int, error) {
	if len(txs) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer rollback(ctx, tx)

	query := `
		INSERT INTO bank_transactions (id, owner_id, batch_id, date, description, amount, direction, counterpart, balance, external_id, category, source, bank_profile, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		ON CONFLICT (owner_id, external_id) DO NOTHING
	`
	inserted := 0
	for _, t := range txs {
		tag, err := tx.Exec(ctx, query, t.ID, t.OwnerID, t.BatchID, t.Date, t.Description, t.Amount, t.Direction, t.Counterpart, t.Balance, t.ExternalID, t.Category, t.Source, t.BankProfile)
		if err != nil {
			return 0, fmt.Errorf("insert bank transaction %s: %w", t.ID, err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *bankTransactionRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.BankTransaction, error) {
	query := `SELECT ` + bankTransactionColumns + ` FROM bank_transactions WHERE owner_id = $1 AND id = $2`
	t, err := scanBankTransaction(r.db.QueryRow(ctx, query, ownerID, id))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (r *bankTransactionRepo) ListPage(ctx context.Context, ownerID uuid.UUID, filter models.BankTransactionFilter, limit, offset int) ([]models.BankTransaction, error) {
	where, args := bankTransactionWhere(ownerID, filter)
	query := `SELECT ` + bankTransactionColumns + ` FROM bank_transactions` + where +
		fmt.Sprintf(` ORDER BY date DESC, id LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := []models.BankTransaction{}
	for rows.Next() {
		t, err := scanBankTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, *t)
	}
	return txs, rows.Err()
}

func (r *bankTransactionRepo) SetCategory(ctx context.Context, ownerID, id uuid.UUID, category *string) error {
	query := `UPDATE bank_transactions SET category = $1 WHERE owner_id = $2 AND id = $3`
	tag, err := r.db.Exec(ctx, query, category, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *bankTransactionRepo) Summary(ctx context.Context, ownerID uuid.UUID, filter models.BankTransactionFilter) (*models.TransactionSummary, error) {
	where, args := bankTransactionWhere(ownerID, filter)
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(amount) FILTER (WHERE direction = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE direction = 'expense'), 0)
		FROM bank_transactions` + where

	s := &models.TransactionSummary{}
	if err := r.db.QueryRow(ctx, query, args...).Scan(&s.Count, &s.Income, &s.Expense); err != nil {
		return nil, err
	}
	s.Net = s.Income.Sub(s.Expense)
	return s, nil
}

func bankTransactionWhere(ownerID uuid.UUID, filter models.BankTransactionFilter) (string, []any) {
	where := ` WHERE owner_id = $1`
	args := []any{ownerID}

	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(` AND date >= $%d`, len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(` AND date <= $%d`, len(args))
	}
	if filter.Direction != nil {
		args = append(args, *filter.Direction)
		where += fmt.Sprintf(` AND direction = $%d`, len(args))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		where += fmt.Sprintf(` AND category = $%d`, len(args))
	}
	return where, args
}

func scanBankTransaction(row pgx.Row) (*models.BankTransaction, error) {
	t := &models.BankTransaction{}
	err := row.Scan(&t.ID, &t.OwnerID, &t.BatchID, &t.Date, &t.Description, &t.Amount, &t.Direction, &t.Counterpart, &t.Balance, &t.ExternalID, &t.Category, &t.Source, &t.BankProfile, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}
