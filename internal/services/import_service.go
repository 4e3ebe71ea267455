package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/caching"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/classify"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/columns"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/extractors"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var contentTypes = map[extractors.Format]string{
	extractors.FormatOFX:       "application/x-ofx",
	extractors.FormatDelimited: "text/csv",
	extractors.FormatXLSX:      "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// ImportService runs one uploaded file through detection, extraction,
// classification and persistence in a single synchronous pass.
type ImportService struct {
	bankRepo       repositories.BankTransactionRepository
	settlementRepo repositories.SettlementRepository
	orderRepo      repositories.OrderRepository
	feeRepo        repositories.FeeSettingsRepository
	cache          caching.CacheService
	storage        StorageService
	profiles       columns.BankProfiles
	log            zerolog.Logger
	now            func() time.Time
}

func NewImportService(
	bankRepo repositories.BankTransactionRepository,
	settlementRepo repositories.SettlementRepository,
	orderRepo repositories.OrderRepository,
	feeRepo repositories.FeeSettingsRepository,
	cache caching.CacheService,
	storage StorageService,
	profiles columns.BankProfiles,
	log zerolog.Logger,
) *ImportService {
	if profiles == nil {
		profiles = columns.DefaultBankProfiles()
	}
	return &ImportService{
		bankRepo:       bankRepo,
		settlementRepo: settlementRepo,
		orderRepo:      orderRepo,
		feeRepo:        feeRepo,
		cache:          cache,
		storage:        storage,
		profiles:       profiles,
		log:            log.With().Str("service", "import").Logger(),
		now:            time.Now,
	}
}

// ImportBankStatement imports an OFX, delimited or workbook statement. The
// profile names the bank whose column spellings are tried first; empty
// means generic.
func (s *ImportService) ImportBankStatement(ctx context.Context, ownerID uuid.UUID, filename, profile string, data []byte) (*models.ImportResult, error) {
	format, err := extractors.DetectFormat(filename, data)
	if err != nil {
		return nil, err
	}
	table, ok := s.profiles.Lookup(profile)
	if !ok {
		return nil, fmt.Errorf("%w: unknown bank profile %q", ErrInvalidInput, profile)
	}
	if profile == "" {
		profile = columns.DefaultBankProfile
	}

	result := s.begin(ctx, ownerID, models.ImportKindBank, format, filename, data)

	var (
		txs  []models.BankTransaction
		diag models.ImportDiagnostics
	)
	if format == extractors.FormatOFX {
		txs, diag = classify.BankFromOFX(extractors.ParseOFX(extractors.DecodeText(data)), s.now())
	} else {
		rows, err := extractors.ReadTable(format, data)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filename, err)
		}
		txs, diag = classify.BankFromRows(rows, table)
	}
	result.Diagnostics = diag

	for i := range txs {
		txs[i].OwnerID = ownerID
		txs[i].BatchID = result.BatchID
		txs[i].Source = string(format)
		txs[i].BankProfile = profile
	}

	inserted, err := s.bankRepo.InsertBatch(ctx, txs)
	if err != nil {
		return nil, fmt.Errorf("store bank transactions: %w", err)
	}
	result.Imported = inserted
	result.Skipped = len(txs) - inserted

	return s.finish(ctx, ownerID, result), nil
}

// ImportSettlements imports a marketplace income report. Accepted rows
// replace earlier rows of the same order.
func (s *ImportService) ImportSettlements(ctx context.Context, ownerID uuid.UUID, filename string, data []byte) (*models.ImportResult, error) {
	format, rows, err := readTabular(filename, data)
	if err != nil {
		return nil, err
	}

	result := s.begin(ctx, ownerID, models.ImportKindSettlements, format, filename, data)

	settlements, _, diag := classify.SettlementsFromRows(rows)
	result.Diagnostics = diag
	for i := range settlements {
		settlements[i].OwnerID = ownerID
		settlements[i].BatchID = result.BatchID
	}

	stored, err := s.settlementRepo.UpsertBatch(ctx, settlements)
	if err != nil {
		return nil, fmt.Errorf("store settlements: %w", err)
	}
	result.Imported = stored
	result.Skipped = len(settlements) - stored

	return s.finish(ctx, ownerID, result), nil
}

// ImportOrders imports a marketplace orders export, optionally tied to a fee
// settings row that must belong to the owner.
func (s *ImportService) ImportOrders(ctx context.Context, ownerID uuid.UUID, settingsID *uuid.UUID, filename string, data []byte) (*models.ImportResult, error) {
	format, rows, err := readTabular(filename, data)
	if err != nil {
		return nil, err
	}
	if settingsID != nil {
		if _, err := s.feeRepo.GetByID(ctx, ownerID, *settingsID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("fee settings %s: %w", settingsID, ErrNotFound)
			}
			return nil, err
		}
	}

	result := s.begin(ctx, ownerID, models.ImportKindOrders, format, filename, data)

	orders, diag := classify.OrdersFromRows(rows)
	result.Diagnostics = diag
	for i := range orders {
		orders[i].OwnerID = ownerID
		orders[i].SettingsID = settingsID
	}

	stored, err := s.orderRepo.UpsertBatch(ctx, orders)
	if err != nil {
		return nil, fmt.Errorf("store orders: %w", err)
	}
	result.Imported = stored
	result.Skipped = len(orders) - stored

	return s.finish(ctx, ownerID, result), nil
}

// LatestDiagnostics returns the last import result of the owner, or
// ErrNotFound once it has expired.
func (s *ImportService) LatestDiagnostics(ctx context.Context, ownerID uuid.UUID) (*models.ImportResult, error) {
	result, err := s.cache.GetLatestDiagnostics(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrNotFound
	}
	return result, nil
}

func readTabular(filename string, data []byte) (extractors.Format, []models.RawRow, error) {
	format, err := extractors.DetectFormat(filename, data)
	if err != nil {
		return "", nil, err
	}
	if format == extractors.FormatOFX {
		return "", nil, fmt.Errorf("%w: %q is a bank statement", ErrUnsupportedFileType, filename)
	}
	rows, err := extractors.ReadTable(format, data)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return format, rows, nil
}

// begin allocates the batch and archives the raw bytes. A failed archive
// leaves ArchiveKey empty and the import carries on.
func (s *ImportService) begin(ctx context.Context, ownerID uuid.UUID, kind string, format extractors.Format, filename string, data []byte) *models.ImportResult {
	result := &models.ImportResult{
		BatchID:  uuid.New(),
		Kind:     kind,
		Format:   string(format),
		FileName: filename,
	}

	key := UploadKey(ownerID, result.BatchID, filename)
	if err := s.storage.Archive(ctx, key, data, contentTypes[format]); err != nil {
		s.log.Warn().Err(err).Str("owner_id", ownerID.String()).Str("key", key).Msg("Failed to archive upload")
	} else {
		result.ArchiveKey = key
	}
	return result
}

func (s *ImportService) finish(ctx context.Context, ownerID uuid.UUID, result *models.ImportResult) *models.ImportResult {
	if err := s.cache.SetDiagnostics(ctx, ownerID, result); err != nil {
		s.log.Warn().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to cache import diagnostics")
	}

	d := result.Diagnostics
	s.log.Info().
		Str("owner_id", ownerID.String()).
		Str("batch_id", result.BatchID.String()).
		Str("kind", result.Kind).
		Str("format", result.Format).
		Int("total_rows", d.TotalRows).
		Int("valid", d.ValidRecords).
		Int("rejected", d.RejectedRecords).
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Bool("aborted", d.Aborted).
		Msg("Import finished")
	return result
}
