package classify

import (
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/columns"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"
)

// Rejection reasons. They are histogram keys, so they never embed row data.
const (
	ReasonInvalidRecordType = "invalid record type"
	ReasonEmptyOrderID      = "empty order id"
	ReasonHeaderRow         = "header row"
	ReasonInvalidDate       = "invalid date"
	ReasonEmptyProduct      = "empty product"
	ReasonMissingColumns    = "missing required columns"
	ReasonDuplicateLine     = "duplicate order line"
)

// Diagnostics accumulates the outcome of one file.
type Diagnostics struct {
	result models.ImportDiagnostics
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{result: models.ImportDiagnostics{
		RejectionReasons: make(map[string]int),
		FoundColumns:     []string{},
		MissingColumns:   []string{},
	}}
}

// Coverage records which canonical fields the file provides, judged from
// its first data row: a field counts as found only when that row has a
// non-blank cell for it. The rest of the file is assumed to share the layout.
func (d *Diagnostics) Coverage(b columns.Binding, first models.RawRow) {
	if found := b.FoundIn(first); found != nil {
		d.result.FoundColumns = found
	}
	if missing := b.MissingIn(first); missing != nil {
		d.result.MissingColumns = missing
	}
}

// Accept counts one kept row.
func (d *Diagnostics) Accept() {
	d.result.TotalRows++
	d.result.ValidRecords++
}

// Reject counts one dropped row under reason.
func (d *Diagnostics) Reject(reason string) {
	d.result.TotalRows++
	d.result.RejectedRecords++
	d.result.RejectionReasons[reason]++
}

// Observe records a decision made elsewhere.
func (d *Diagnostics) Observe(accepted bool, reason string) {
	if accepted {
		d.Accept()
		return
	}
	d.Reject(reason)
}

// Abort marks the whole file as dropped: all total rows count as rejected.
func (d *Diagnostics) Abort(total int, reason string) {
	d.result.Aborted = true
	d.result.TotalRows = total
	d.result.ValidRecords = 0
	d.result.RejectedRecords = total
	d.result.RejectionReasons = map[string]int{}
	if total > 0 {
		d.result.RejectionReasons[reason] = total
	}
}

// Result returns a copy of the tallies.
func (d *Diagnostics) Result() models.ImportDiagnostics {
	out := d.result
	out.RejectionReasons = make(map[string]int, len(d.result.RejectionReasons))
	for k, v := range d.result.RejectionReasons {
		out.RejectionReasons[k] = v
	}
	out.FoundColumns = append([]string{}, d.result.FoundColumns...)
	out.MissingColumns = append([]string{}, d.result.MissingColumns...)
	return out
}
