package usecase

import (
	"context"

	"github.com/lucilles-catering/crm-sync/internal/infra/queue"
)

// TableStore is the capability the sync engine needs from the tabular
// backing store: read all data rows of a named table, append one, or
// overwrite one in place. Indexes are 0-based positions among data
// rows; header handling belongs to the store, never to the engine.
type TableStore interface {
	GetRows(ctx context.Context, table string) ([][]string, error)
	AppendRow(ctx context.Context, table string, row []string) error
	UpdateRow(ctx context.Context, table string, index int, row []string) error
}

type QueueProducerInterface interface {
	PublishLeadCreated(ctx context.Context, payload queue.LeadCreatedPayload) error
}

// CalendarService books a tentative calendar slot for a lead's event
// date and returns the created event id.
type CalendarService interface {
	CreateEvent(ctx context.Context, title, date string) (string, error)
}
