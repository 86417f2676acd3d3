// Package table serializes the in-memory record list to and from the table
// blob: a header row naming the columns followed by one row per record.
// Decoding is tolerant of older row shapes; encoding always uses the
// canonical column order.
package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jobdeck/jobdeck/pkg/types"
)

// Canonical column names, in write order. Decoding maps columns by header
// name, so older blobs with fewer columns still load; the missing fields
// stay at their zero values.
const (
	colID            = "id"
	colURL           = "url"
	colLinkTitle     = "link_title"
	colCompany       = "company"
	colRoleTitle     = "role_title"
	colLocation      = "location"
	colStatus        = "status"
	colPriority      = "priority"
	colNotes         = "notes"
	colAppliedDate   = "applied_date"
	colInterviewDate = "interview_date"
	colOfferDate     = "offer_date"
	colRejectedDate  = "rejected_date"
	colCreatedAt     = "created_at"
	colUpdatedAt     = "updated_at"
)

// columns is the canonical header written on every encode.
var columns = []string{
	colID, colURL, colLinkTitle, colCompany, colRoleTitle, colLocation,
	colStatus, colPriority, colNotes,
	colAppliedDate, colInterviewDate, colOfferDate, colRejectedDate,
	colCreatedAt, colUpdatedAt,
}

// Encode serializes records to a table blob with the canonical header.
// An empty or nil record list yields a header-only blob, never an error.
func Encode(records []types.Application) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	for _, a := range records {
		row := []string{
			a.ID, a.URL, a.LinkTitle, a.Company, a.RoleTitle, a.Location,
			a.Status, a.Priority, a.Notes,
			formatTimePtr(a.AppliedDate), formatTimePtr(a.InterviewDate),
			formatTimePtr(a.OfferDate), formatTimePtr(a.RejectedDate),
			formatTime(a.CreatedAt), formatTime(a.UpdatedAt),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing record %s: %w", a.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing table: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a table blob back into records. It tolerates blobs written
// by older schema versions (fewer columns) and header-only blobs (zero
// records). Unknown status and priority values are coerced to their
// defaults. Returns ErrCorruptTable when the blob cannot be parsed at all.
func Decode(data []byte) ([]types.Application, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrCorruptTable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", types.ErrCorruptTable)
	}

	index := headerIndex(rows[0])
	if _, ok := index[colID]; !ok {
		return nil, fmt.Errorf("%w: header has no %q column", types.ErrCorruptTable, colID)
	}

	records := make([]types.Application, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cell := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		records = append(records, types.Application{
			ID:            cell(colID),
			URL:           cell(colURL),
			LinkTitle:     cell(colLinkTitle),
			Company:       cell(colCompany),
			RoleTitle:     cell(colRoleTitle),
			Location:      cell(colLocation),
			Status:        types.CoerceStatus(cell(colStatus)),
			Priority:      types.CoercePriority(cell(colPriority)),
			Notes:         cell(colNotes),
			AppliedDate:   parseTimePtr(cell(colAppliedDate)),
			InterviewDate: parseTimePtr(cell(colInterviewDate)),
			OfferDate:     parseTimePtr(cell(colOfferDate)),
			RejectedDate:  parseTimePtr(cell(colRejectedDate)),
			CreatedAt:     parseTime(cell(colCreatedAt)),
			UpdatedAt:     parseTime(cell(colUpdatedAt)),
		})
	}
	return records, nil
}

// headerIndex maps column names from the blob's header row to positions.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	return index
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

// parseTime returns the zero time for empty or malformed cells. Timestamps
// never fail a load; a bad cell just loses its value.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseTimePtr(s string) *time.Time {
	t := parseTime(s)
	if t.IsZero() {
		return nil
	}
	return &t
}
