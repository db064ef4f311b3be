package model

// Customer is a customer record owned by the backend.
type Customer struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	TotalPurchases int     `json:"total_purchases,omitempty"`
	TotalSpent     float64 `json:"total_spent,omitempty"`
	CreatedAt      string  `json:"created_at,omitempty"`
}

// Segment buckets a customer by purchase count for display.
type Segment string

// Customer segments.
const (
	SegmentVIP     Segment = "vip"
	SegmentRegular Segment = "regular"
	SegmentNew     Segment = "new"
)

// VIPThreshold is the highest purchase count still considered regular.
const VIPThreshold = 10

// SegmentOf returns the segment for a purchase count.
func SegmentOf(purchases int) Segment {
	switch {
	case purchases > VIPThreshold:
		return SegmentVIP
	case purchases > 0:
		return SegmentRegular
	default:
		return SegmentNew
	}
}

// Segment returns the customer's segment.
func (c Customer) Segment() Segment {
	return SegmentOf(c.TotalPurchases)
}
