package entity

const (
	// DefaultDealStatus is used when an upsert doesn't carry a status.
	DefaultDealStatus = "Pending"

	// CommissionRate is applied server-side on every deal write.
	// Caller-supplied commission values are never trusted.
	CommissionRate = 0.05
)

// Deal is one booking/negotiation snapshot tied to a Lead by reference
// number. Many snapshots may exist per reference number over time; the
// engine keeps at most one it wrote flagged LatestEntry.
type Deal struct {
	Timestamp     string  `json:"timestamp"`
	RefNumber     string  `json:"refNumber"`
	Status        string  `json:"status"`
	BookingAmount float64 `json:"bookingAmount"`
	Notes         string  `json:"notes"`
	Commission    float64 `json:"commission"`
	LatestEntry   bool    `json:"latestEntry"`
}
