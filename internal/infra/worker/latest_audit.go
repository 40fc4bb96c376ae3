package worker

import (
	"context"
	"log"
	"time"

	"github.com/lucilles-catering/crm-sync/internal/codec"
	"github.com/lucilles-catering/crm-sync/internal/usecase"
)

// LatestAuditWorker periodically scans the deal table for reference
// numbers carrying more than one latest-entry row. That state can only
// come from concurrent upserts racing on the non-transactional
// fetch-scan-write sequence (or hand edits); it is logged for operators,
// never repaired, since picking a winner automatically would discard a
// snapshot someone wrote on purpose.
type LatestAuditWorker struct {
	store        usecase.TableStore
	dealTable    string
	tickInterval time.Duration
}

func NewLatestAuditWorker(store usecase.TableStore, dealTable string) *LatestAuditWorker {
	return &LatestAuditWorker{
		store:        store,
		dealTable:    dealTable,
		tickInterval: 15 * time.Minute,
	}
}

func (w *LatestAuditWorker) Start(ctx context.Context) {
	log.Println("🕒 latest-entry audit worker started")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.audit(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("latest-entry audit worker stopped")
			return
		case <-ticker.C:
			w.audit(ctx)
		}
	}
}

func (w *LatestAuditWorker) audit(ctx context.Context) {
	rows, err := w.store.GetRows(ctx, w.dealTable)
	if err != nil {
		log.Printf("❌ audit: failed to fetch deal rows: %v", err)
		return
	}

	latestCount := make(map[string]int)
	for _, row := range rows {
		deal, ok := codec.DecodeDealRow(row)
		if !ok || !deal.LatestEntry {
			continue
		}
		latestCount[deal.RefNumber]++
	}

	duplicates := 0
	for ref, n := range latestCount {
		if n > 1 {
			log.Printf("⚠️ audit: %s has %d latest-entry rows", ref, n)
			duplicates++
		}
	}

	if duplicates == 0 {
		log.Printf("audit: %d deal rows checked, latest-entry markers consistent", len(rows))
	}
}
