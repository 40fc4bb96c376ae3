package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucilles-catering/crm-sync/internal/entity"
)

func TestDecodeLeadRowFull(t *testing.T) {
	row := []string{
		"CAT-20251003-001", "2025-10-03T14:30:00Z", "Maria Santos", "maria.santos@email.com",
		"+63 917 123 4567", "1985-10-15", "2025-11-15", "Wedding", "150",
		"Looking for elegant wedding catering for 150 guests", "Pending Follow-up", "cal123",
	}

	lead, ok := DecodeLeadRow(row)
	assert.True(t, ok)
	assert.Equal(t, "CAT-20251003-001", lead.RefNumber)
	assert.Equal(t, "10/3/2025, 2:30:00 PM", lead.Timestamp)
	assert.Equal(t, "Maria Santos", lead.ClientName)
	assert.Equal(t, "maria.santos@email.com", lead.Email)
	assert.Equal(t, "1985-10-15", lead.DateOfBirth)
	assert.Equal(t, "2025-11-15", lead.EventDate)
	assert.Equal(t, "Wedding", lead.EventType)
	assert.Equal(t, 150, lead.NumberOfGuests)
	assert.Equal(t, "Pending Follow-up", lead.Status)
	assert.Equal(t, "cal123", lead.CalendarEventID)
}

func TestDecodeLeadRowBlankReferenceDiscarded(t *testing.T) {
	_, ok := DecodeLeadRow([]string{"", "2025-10-03", "Maria Santos"})
	assert.False(t, ok)

	_, ok = DecodeLeadRow([]string{"   ", "2025-10-03", "Maria Santos"})
	assert.False(t, ok)

	_, ok = DecodeLeadRow(nil)
	assert.False(t, ok)
}

func TestDecodeLeadRowShortRowDefaults(t *testing.T) {
	lead, ok := DecodeLeadRow([]string{"CAT-20251003-002"})
	assert.True(t, ok)
	assert.Equal(t, "", lead.Timestamp)
	assert.Equal(t, "", lead.ClientName)
	assert.Equal(t, 0, lead.NumberOfGuests)
	assert.Equal(t, entity.DefaultLeadStatus, lead.Status)
	assert.Equal(t, "", lead.CalendarEventID)
}

func TestDecodeLeadRowUnparsableGuests(t *testing.T) {
	row := []string{"CAT-20251003-003", "", "", "", "", "", "", "", "around eighty", "", "", ""}

	lead, ok := DecodeLeadRow(row)
	assert.True(t, ok)
	assert.Equal(t, 0, lead.NumberOfGuests)
}

func TestDecodeDealRowFull(t *testing.T) {
	row := []string{"2025-10-03 09:15:00", "CAT-20251003-001", "Pending", "45000", "Client considering premium package", "2250", "TRUE"}

	deal, ok := DecodeDealRow(row)
	assert.True(t, ok)
	assert.Equal(t, "10/3/2025, 9:15:00 AM", deal.Timestamp)
	assert.Equal(t, "CAT-20251003-001", deal.RefNumber)
	assert.Equal(t, "Pending", deal.Status)
	assert.Equal(t, 45000.0, deal.BookingAmount)
	assert.Equal(t, 2250.0, deal.Commission)
	assert.True(t, deal.LatestEntry)
}

func TestDecodeDealRowBlankReferenceDiscarded(t *testing.T) {
	_, ok := DecodeDealRow([]string{"2025-10-03", "", "Pending", "1000"})
	assert.False(t, ok)
}

func TestDecodeDealRowLatestEntryVariants(t *testing.T) {
	cases := map[string]bool{
		"TRUE":  true,
		"true":  true,
		"True":  false, // case matters
		"FALSE": false,
		"yes":   false,
		"1":     false,
		"":      false,
	}

	for raw, want := range cases {
		deal, ok := DecodeDealRow([]string{"", "CAT-20251003-001", "", "", "", "", raw})
		assert.True(t, ok)
		assert.Equal(t, want, deal.LatestEntry, "latest entry for %q", raw)
	}
}

func TestDecodeDealRowDefaults(t *testing.T) {
	deal, ok := DecodeDealRow([]string{"", "CAT-20251003-001", "", "not a number"})
	assert.True(t, ok)
	assert.Equal(t, entity.DefaultDealStatus, deal.Status)
	assert.Equal(t, 0.0, deal.BookingAmount)
	assert.False(t, deal.LatestEntry)
}

func TestEncodeDecodeDealRoundTrip(t *testing.T) {
	deal := entity.Deal{
		Timestamp:     "10/3/2025, 9:15:00 AM",
		RefNumber:     "CAT-20251003-001",
		Status:        "Closed(Won)",
		BookingAmount: 32000,
		Notes:         "Successfully closed corporate deal",
		Commission:    1600,
		LatestEntry:   true,
	}

	decoded, ok := DecodeDealRow(EncodeDealRow(deal))
	assert.True(t, ok)
	assert.Equal(t, deal, decoded)
}

func TestEncodeDecodeLeadRoundTrip(t *testing.T) {
	lead := entity.Lead{
		RefNumber:       "CAT-20251003-001",
		Timestamp:       "10/3/2025, 2:30:00 PM",
		ClientName:      "Maria Santos",
		Email:           "maria.santos@email.com",
		Phone:           "+63 917 123 4567",
		DateOfBirth:     "1985-10-15",
		EventDate:       "2025-11-15",
		EventType:       "Wedding",
		NumberOfGuests:  150,
		Message:         "Looking for elegant wedding catering",
		Status:          "Pending Follow-up",
		CalendarEventID: "cal123",
	}

	decoded, ok := DecodeLeadRow(EncodeLeadRow(lead))
	assert.True(t, ok)
	assert.Equal(t, lead, decoded)
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "", NormalizeDate(""))
	assert.Equal(t, "", NormalizeDate("  "))
	assert.Equal(t, "2025-11-15", NormalizeDate("2025-11-15"))
	assert.Equal(t, "2025-11-15", NormalizeDate("2025-11-15T08:00:00Z"))
	assert.Equal(t, "2025-11-15", NormalizeDate("11/15/2025"))
	// Unrecognized values fall back to their plain string form.
	assert.Equal(t, "sometime next spring", NormalizeDate("sometime next spring"))
}

func TestNormalizeTimestamp(t *testing.T) {
	assert.Equal(t, "", NormalizeTimestamp(""))
	assert.Equal(t, "11/15/2025, 8:00:00 AM", NormalizeTimestamp("2025-11-15T08:00:00Z"))
	assert.Equal(t, "11/15/2025, 12:00:00 AM", NormalizeTimestamp("2025-11-15"))
	assert.Equal(t, "yesterday", NormalizeTimestamp("yesterday"))
}
