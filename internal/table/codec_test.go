package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/pkg/types"
)

func sampleRecords() []types.Application {
	created := time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)
	applied := created.Add(24 * time.Hour)
	return []types.Application{
		{
			ID:          "0194d0f0-0000-7000-8000-000000000001",
			URL:         "https://jobs.acme.dev/roles/17",
			LinkTitle:   "Acme platform",
			Company:     "Acme Corp",
			RoleTitle:   "Platform Engineer",
			Location:    "Berlin",
			Status:      types.StatusApplied,
			Priority:    types.PriorityHigh,
			Notes:       "has a \"quoted\" note, with commas\nand a newline",
			AppliedDate: &applied,
			CreatedAt:   created,
			UpdatedAt:   applied,
		},
		{
			ID:        "0194d0f0-0000-7000-8000-000000000002",
			Status:    types.StatusTodo,
			Priority:  types.PriorityMedium,
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	records := sampleRecords()

	data, err := Encode(records)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestEncodeEmptyListYieldsHeaderOnly(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeHeaderOnly(t *testing.T) {
	got, err := Decode([]byte("id,url,status\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeToleratesOlderSchema(t *testing.T) {
	// A blob written before the location and derived date columns existed.
	blob := "id,url,company,status,priority\n" +
		"abc-1,https://x.test/1,Initech,APPLIED,LOW\n"

	got, err := Decode([]byte(blob))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "abc-1", got[0].ID)
	assert.Equal(t, "https://x.test/1", got[0].URL)
	assert.Equal(t, "Initech", got[0].Company)
	assert.Equal(t, types.StatusApplied, got[0].Status)
	assert.Equal(t, types.PriorityLow, got[0].Priority)
	assert.Empty(t, got[0].Location, "missing columns stay at zero values")
	assert.Nil(t, got[0].AppliedDate)
	assert.True(t, got[0].CreatedAt.IsZero())
}

func TestDecodeToleratesExtraColumns(t *testing.T) {
	blob := "id,url,status,salary_band\n" +
		"abc-2,https://x.test/2,TODO,E5\n"

	got, err := Decode([]byte(blob))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "abc-2", got[0].ID)
}

func TestDecodeToleratesShortRows(t *testing.T) {
	blob := "id,url,company,status\n" +
		"abc-3,https://x.test/3\n"

	got, err := Decode([]byte(blob))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "abc-3", got[0].ID)
	assert.Empty(t, got[0].Company)
	assert.Equal(t, types.StatusTodo, got[0].Status)
}

func TestDecodeCoercesUnknownEnums(t *testing.T) {
	blob := "id,status,priority\n" +
		"abc-4,ON_HOLD,ASAP\n"

	got, err := Decode([]byte(blob))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, types.StatusTodo, got[0].Status)
	assert.Equal(t, types.PriorityMedium, got[0].Priority)
}

func TestDecodeIgnoresMalformedTimestamps(t *testing.T) {
	blob := "id,applied_date,created_at\n" +
		"abc-5,yesterday,not-a-date\n"

	got, err := Decode([]byte(blob))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].AppliedDate)
	assert.True(t, got[0].CreatedAt.IsZero())
}

func TestDecodeCorruptBlob(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty blob", nil},
		{"unbalanced quotes", []byte("id,url\n\"abc-6,https://x.test\n")},
		{"header without id column", []byte("url,status\nhttps://x.test,TODO\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			assert.ErrorIs(t, err, types.ErrCorruptTable)
		})
	}
}
