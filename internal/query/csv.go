package query

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/credstack/credstack/internal/models"
)

// exportTimeFormat renders the creation timestamp in export rows.
const exportTimeFormat = "2006-01-02 15:04:05"

// ExportCSV serializes a filtered and sorted view. Fields containing commas,
// quotes, or newlines are quoted with embedded quotes doubled; the first row
// is a header.
func (e *Engine) ExportCSV(records []models.CredentialRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Username", "Group", "Remark", "Created At"}); err != nil {
		return nil, fmt.Errorf("csv export: header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Username,
			r.GroupName,
			r.Remark,
			r.CreatedAt.In(e.loc).Format(exportTimeFormat),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv export: row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv export: flush: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportFilename names an export after its export date.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("credentials-%s.csv", now.Format(dayFormat))
}
