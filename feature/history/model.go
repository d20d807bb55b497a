package history

import (
	"time"

	"stock-audit/core/report"
)

// AuditRecord is an archived audit report.
type AuditRecord struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	Mode         string    `gorm:"size:16" json:"mode"`
	Source       string    `gorm:"size:255" json:"source"`
	SerialColumn string    `gorm:"size:128" json:"serial_column"`
	PartColumn   string    `gorm:"size:128" json:"part_column"`
	Expected     *int      `json:"expected"`
	Matched      *int      `json:"matched"`
	Missing      *int      `json:"missing"`
	Handled      int       `json:"handled"`
	Extra        int       `json:"extra"`
	Duplicates   int       `json:"duplicates"`
	Scanned      int       `json:"scanned"`
	ObjectKey    string    `gorm:"size:512" json:"object_key"`
	Format       string    `gorm:"size:8" json:"format"`
}

// TableName overrides the table name used by AuditRecord.
func (AuditRecord) TableName() string {
	return "audit_records"
}

// recordColumns lists the columns the archive reads and writes.
var recordColumns = []string{
	"id", "created_at", "mode", "source", "serial_column", "part_column",
	"expected", "matched", "missing", "handled", "extra", "duplicates",
	"scanned", "object_key", "format",
}

// NewRecord flattens a report into an archive record.
func NewRecord(rep report.Report, objectKey string, format report.Format) AuditRecord {
	sum := rep.Summary
	return AuditRecord{
		ID:           rep.ID,
		CreatedAt:    rep.CreatedAt,
		Mode:         sum.Mode,
		Source:       rep.Source,
		SerialColumn: rep.Columns.Serial,
		PartColumn:   rep.Columns.Part,
		Expected:     sum.Expected,
		Matched:      sum.Matched,
		Missing:      sum.Missing,
		Handled:      sum.Handled,
		Extra:        sum.Extra,
		Duplicates:   sum.Duplicates,
		Scanned:      sum.Scanned,
		ObjectKey:    objectKey,
		Format:       string(format),
	}
}
