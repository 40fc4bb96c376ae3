// Package codec converts raw positional table rows into typed Lead and
// Deal records and back. Everything here is pure: no I/O, no clock.
//
// Decoding is deliberately lenient. The rows come from a spreadsheet-style
// store that humans also edit, so a malformed cell is coerced to a default
// (empty string, zero, false) instead of failing the whole read. All
// defaulting rules live here so the sync engine never duplicates them.
package codec

import (
	"strconv"
	"strings"
	"time"

	"github.com/lucilles-catering/crm-sync/internal/entity"
)

// TimestampLayout is the display form for record timestamps
// ("10/3/2025, 1:04:05 PM"), matching what the dashboard renders.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// DateLayout is the calendar-date form (no time of day) used for
// date-of-birth and event-date cells.
const DateLayout = "2006-01-02"

// Layouts accepted when normalizing a date-like cell, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	TimestampLayout,
	"1/2/2006",
	"01/02/2006",
}

// DecodeLeadRow maps one raw lead row (columns 0-11) to a Lead.
// Returns ok=false for rows whose reference-number cell is blank: those
// are incomplete/filler rows, not records.
func DecodeLeadRow(row []string) (entity.Lead, bool) {
	ref := cell(row, 0)
	if strings.TrimSpace(ref) == "" {
		return entity.Lead{}, false
	}

	lead := entity.Lead{
		RefNumber:       ref,
		Timestamp:       NormalizeTimestamp(cell(row, 1)),
		ClientName:      cell(row, 2),
		Email:           cell(row, 3),
		Phone:           cell(row, 4),
		DateOfBirth:     NormalizeDate(cell(row, 5)),
		EventDate:       NormalizeDate(cell(row, 6)),
		EventType:       cell(row, 7),
		NumberOfGuests:  parseIntCell(cell(row, 8)),
		Message:         cell(row, 9),
		Status:          cell(row, 10),
		CalendarEventID: cell(row, 11),
	}
	if lead.Status == "" {
		lead.Status = entity.DefaultLeadStatus
	}
	return lead, true
}

// DecodeDealRow maps one raw deal row (columns 0-6) to a Deal, with the
// same blank-reference discard rule as DecodeLeadRow.
func DecodeDealRow(row []string) (entity.Deal, bool) {
	ref := cell(row, 1)
	if strings.TrimSpace(ref) == "" {
		return entity.Deal{}, false
	}

	deal := entity.Deal{
		Timestamp:     NormalizeTimestamp(cell(row, 0)),
		RefNumber:     ref,
		Status:        cell(row, 2),
		BookingAmount: parseFloatCell(cell(row, 3)),
		Notes:         cell(row, 4),
		Commission:    parseFloatCell(cell(row, 5)),
		LatestEntry:   parseBoolCell(cell(row, 6)),
	}
	if deal.Status == "" {
		deal.Status = entity.DefaultDealStatus
	}
	return deal, true
}

// EncodeDealRow is the inverse of DecodeDealRow, used before writing.
func EncodeDealRow(d entity.Deal) []string {
	return []string{
		d.Timestamp,
		d.RefNumber,
		d.Status,
		formatFloat(d.BookingAmount),
		d.Notes,
		formatFloat(d.Commission),
		formatBool(d.LatestEntry),
	}
}

// EncodeLeadRow is the inverse of DecodeLeadRow, used on lead intake.
func EncodeLeadRow(l entity.Lead) []string {
	return []string{
		l.RefNumber,
		l.Timestamp,
		l.ClientName,
		l.Email,
		l.Phone,
		l.DateOfBirth,
		l.EventDate,
		l.EventType,
		strconv.Itoa(l.NumberOfGuests),
		l.Message,
		l.Status,
		l.CalendarEventID,
	}
}

// NormalizeDate coerces a date-like cell to YYYY-MM-DD. Blank stays
// blank; an unrecognized value falls back to its plain string form.
func NormalizeDate(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DateLayout)
		}
	}
	return raw
}

// NormalizeTimestamp coerces a timestamp-like cell to TimestampLayout,
// with the same blank/fallback behavior as NormalizeDate.
func NormalizeTimestamp(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(TimestampLayout)
		}
	}
	return raw
}

// cell reads a column, treating short rows as trailing blanks.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func parseIntCell(raw string) int {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	// Sheet exports sometimes carry "150.0" for integer columns.
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return 0
}

func parseFloatCell(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}

// parseBoolCell accepts the literal forms the sheet produced: the
// checkbox value "TRUE" and the string "true". Case matters; anything
// else is false.
func parseBoolCell(raw string) bool {
	return raw == "TRUE" || raw == "true"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
