package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lucilles-catering/crm-sync/internal/codec"
	"github.com/lucilles-catering/crm-sync/internal/entity"
	"github.com/lucilles-catering/crm-sync/internal/infra/queue"
	"github.com/lucilles-catering/crm-sync/internal/refnum"
)

// Default table names in the backing store.
const (
	LeadTable = "lead_intake"
	DealTable = "deal_tracking"
)

// SyncService is the record synchronization engine: reads decode and
// filter raw rows, writes encode records and keep the latest-entry
// marker on deals. It only talks to the store through the TableStore
// capability; queue and calendar are optional best-effort side effects.
type SyncService struct {
	Store     TableStore
	Queue     QueueProducerInterface // nil = no follow-up events
	Calendar  CalendarService        // nil = no calendar booking
	LeadTable string
	DealTable string
}

func NewSyncService(store TableStore, producer QueueProducerInterface, calendar CalendarService) *SyncService {
	return &SyncService{
		Store:     store,
		Queue:     producer,
		Calendar:  calendar,
		LeadTable: LeadTable,
		DealTable: DealTable,
	}
}

// ListLeads returns every decodable lead row in stored order. Rows with
// a blank reference number are dropped, not reported.
func (s *SyncService) ListLeads(ctx context.Context) ([]entity.Lead, error) {
	rows, err := s.Store.GetRows(ctx, s.LeadTable)
	if err != nil {
		return nil, fetchErr(err, "failed to fetch leads")
	}

	leads := make([]entity.Lead, 0, len(rows))
	for _, row := range rows {
		if lead, ok := codec.DecodeLeadRow(row); ok {
			leads = append(leads, lead)
		}
	}
	return leads, nil
}

// ListDeals is the deal-table counterpart of ListLeads.
func (s *SyncService) ListDeals(ctx context.Context) ([]entity.Deal, error) {
	rows, err := s.Store.GetRows(ctx, s.DealTable)
	if err != nil {
		return nil, fetchErr(err, "failed to fetch deals")
	}

	deals := make([]entity.Deal, 0, len(rows))
	for _, row := range rows {
		if deal, ok := codec.DecodeDealRow(row); ok {
			deals = append(deals, deal)
		}
	}
	return deals, nil
}

// CreateLead stamps a fresh reference number and creation timestamp on
// the input and appends one lead row. Every call creates a new lead;
// duplicate detection is deliberately not done here.
func (s *SyncService) CreateLead(ctx context.Context, input CreateLeadInput) (CreateLeadOutput, error) {
	now := time.Now()

	lead := entity.Lead{
		RefNumber:      refnum.FromTime(now),
		Timestamp:      now.Format(codec.TimestampLayout),
		ClientName:     input.ClientName,
		Email:          input.Email,
		Phone:          input.Phone,
		DateOfBirth:    codec.NormalizeDate(input.DateOfBirth),
		EventDate:      codec.NormalizeDate(input.EventDate),
		EventType:      input.EventType,
		NumberOfGuests: input.NumberOfGuests,
		Message:        input.Message,
		Status:         input.Status,
	}
	if lead.Status == "" {
		lead.Status = entity.DefaultLeadStatus
	}

	// Tentative calendar slot for the event. Intake must not fail
	// because the calendar is down, so this only logs.
	if s.Calendar != nil && lead.EventDate != "" {
		eventID, err := s.Calendar.CreateEvent(ctx, lead.EventType+" - "+lead.ClientName, lead.EventDate)
		if err != nil {
			log.Printf("calendar booking failed for %s: %v", lead.RefNumber, err)
		} else {
			lead.CalendarEventID = eventID
		}
	}

	if err := s.Store.AppendRow(ctx, s.LeadTable, codec.EncodeLeadRow(lead)); err != nil {
		return CreateLeadOutput{}, syncErr(CodeAppendFailed, "failed to add lead", err)
	}

	if s.Queue != nil {
		payload := queue.LeadCreatedPayload{
			EventID:    uuid.NewString(),
			RefNumber:  lead.RefNumber,
			ClientName: lead.ClientName,
			Email:      lead.Email,
			EventType:  lead.EventType,
			EventDate:  lead.EventDate,
			CreatedAt:  lead.Timestamp,
		}
		if err := s.Queue.PublishLeadCreated(ctx, payload); err != nil {
			log.Printf("lead %s saved but follow-up publish failed: %v", lead.RefNumber, err)
		}
	}

	return CreateLeadOutput{
		Success:   true,
		RefNumber: lead.RefNumber,
		Message:   "Lead added successfully",
	}, nil
}

// UpsertDeal writes one deal snapshot for refNumber: the first stored
// row matching the reference number is overwritten in place, otherwise
// a new row is appended. Commission is always recomputed server-side;
// the written row is always the latest entry.
//
// The fetch-scan-write sequence is not transactional. Two concurrent
// upserts for the same reference number can both miss and both append,
// leaving two latest-entry rows; that is accepted last-write-wins
// behavior, surfaced by the audit worker rather than prevented here.
func (s *SyncService) UpsertDeal(ctx context.Context, refNumber string, input UpsertDealInput) (UpsertDealOutput, error) {
	if refNumber == "" {
		return UpsertDealOutput{}, syncErr(CodeMissingRef, "refNumber is required", nil)
	}

	rows, err := s.Store.GetRows(ctx, s.DealTable)
	if err != nil {
		if errors.Is(err, ErrTableNotFound) {
			return UpsertDealOutput{}, syncErr(CodeStoreUnavailable, "deal table unavailable", err)
		}
		return UpsertDealOutput{}, syncErr(CodeLookupFailed, "failed to look up deal", err)
	}

	// First match in stored order wins.
	rowIndex := -1
	for i, row := range rows {
		if len(row) > 1 && row[1] == refNumber {
			rowIndex = i
			break
		}
	}

	amount := float64(input.BookingAmount)
	deal := entity.Deal{
		Timestamp:     time.Now().Format(codec.TimestampLayout),
		RefNumber:     refNumber,
		Status:        input.Status,
		BookingAmount: amount,
		Notes:         input.Notes,
		Commission:    amount * entity.CommissionRate,
		LatestEntry:   true,
	}
	if deal.Status == "" {
		deal.Status = entity.DefaultDealStatus
	}

	row := codec.EncodeDealRow(deal)
	if rowIndex >= 0 {
		err = s.Store.UpdateRow(ctx, s.DealTable, rowIndex, row)
	} else {
		err = s.Store.AppendRow(ctx, s.DealTable, row)
	}
	if err != nil {
		return UpsertDealOutput{}, syncErr(CodeWriteFailed, "failed to update deal", err)
	}

	return UpsertDealOutput{Success: true, Message: "Deal updated successfully"}, nil
}

// fetchErr classifies a read failure: a missing table is a store
// availability problem, anything else a fetch failure.
func fetchErr(err error, msg string) *SyncError {
	if errors.Is(err, ErrTableNotFound) {
		return syncErr(CodeStoreUnavailable, msg, err)
	}
	return syncErr(CodeFetchFailed, msg, err)
}
