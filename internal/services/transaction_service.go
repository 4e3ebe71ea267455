package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const maxCategoryLen = 100

// TransactionService reads imported bank and settlement records back.
type TransactionService struct {
	bankRepo       repositories.BankTransactionRepository
	settlementRepo repositories.SettlementRepository
	pageSize       int
	log            zerolog.Logger
}

func NewTransactionService(bankRepo repositories.BankTransactionRepository, settlementRepo repositories.SettlementRepository, log zerolog.Logger) *TransactionService {
	return &TransactionService{
		bankRepo:       bankRepo,
		settlementRepo: settlementRepo,
		pageSize:       repositories.DefaultPageSize,
		log:            log.With().Str("service", "transactions").Logger(),
	}
}

// ListAll returns every bank transaction matching filter, newest first.
func (s *TransactionService) ListAll(ctx context.Context, ownerID uuid.UUID, filter models.BankTransactionFilter) ([]models.BankTransaction, error) {
	if filter.Direction != nil && !filter.Direction.Valid() {
		return nil, fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, *filter.Direction)
	}
	return repositories.FetchAll(ctx, s.pageSize, func(ctx context.Context, limit, offset int) ([]models.BankTransaction, error) {
		return s.bankRepo.ListPage(ctx, ownerID, filter, limit, offset)
	})
}

func (s *TransactionService) Summary(ctx context.Context, ownerID uuid.UUID, filter models.BankTransactionFilter) (*models.TransactionSummary, error) {
	if filter.Direction != nil && !filter.Direction.Valid() {
		return nil, fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, *filter.Direction)
	}
	return s.bankRepo.Summary(ctx, ownerID, filter)
}

// SetCategory tags a transaction. An empty category clears the tag.
func (s *TransactionService) SetCategory(ctx context.Context, ownerID, id uuid.UUID, category string) (*models.BankTransaction, error) {
	var value *string
	if c := strings.TrimSpace(category); c != "" {
		if len([]rune(c)) > maxCategoryLen {
			return nil, fmt.Errorf("%w: category longer than %d characters", ErrInvalidInput, maxCategoryLen)
		}
		value = &c
	}

	if err := s.bankRepo.SetCategory(ctx, ownerID, id, value); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.bankRepo.GetByID(ctx, ownerID, id)
}

// ListSettlements returns every settlement line paid out within filter.
func (s *TransactionService) ListSettlements(ctx context.Context, ownerID uuid.UUID, filter models.SettlementFilter) ([]models.SettlementRow, error) {
	return repositories.FetchAll(ctx, s.pageSize, func(ctx context.Context, limit, offset int) ([]models.SettlementRow, error) {
		return s.settlementRepo.ListPage(ctx, ownerID, filter, limit, offset)
	})
}
