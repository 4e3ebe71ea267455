package models

import "github.com/google/uuid"

// ImportDiagnostics explains how many rows of one file were kept and why the
// rest were dropped. Column coverage is judged on the first data row.
type ImportDiagnostics struct {
	TotalRows        int            `json:"total_rows"`
	ValidRecords     int            `json:"valid_records"`
	RejectedRecords  int            `json:"rejected_records"`
	RejectionReasons map[string]int `json:"rejection_reasons"`
	FoundColumns     []string       `json:"found_columns"`
	MissingColumns   []string       `json:"missing_columns"`
	Aborted          bool           `json:"aborted"`
}

// Import kinds
const (
	ImportKindBank        = "bank"
	ImportKindSettlements = "settlements"
	ImportKindOrders      = "orders"
)

// ImportResult is returned by every import, whether it came over HTTP or
// from the storage inbox.
type ImportResult struct {
	BatchID     uuid.UUID         `json:"batch_id"`
	Kind        string            `json:"kind"`
	Format      string            `json:"format"`
	FileName    string            `json:"file_name"`
	ArchiveKey  string            `json:"archive_key,omitempty"`
	Imported    int               `json:"imported"`
	Skipped     int               `json:"skipped"`
	Diagnostics ImportDiagnostics `json:"diagnostics"`
}
