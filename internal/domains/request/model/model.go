package model

import "time"

const CollectionRequests = "requests"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Service hour commitments available for non-continuous requests.
const (
	HoursAuxiliary = 15
	HoursReduced   = 30
)

// Request is an auxiliary service application. Continuous requests have no
// month list and no hour commitment; non-continuous ones carry both. EndDate
// is only set when the request is paralyzed.
type Request struct {
	ID           string     `bson:"_id"`
	Name         string     `bson:"name"`
	Year         int        `bson:"year"`
	Months       []string   `bson:"months,omitempty"`
	IsContinuous bool       `bson:"is_continuous"`
	Hours        int        `bson:"hours,omitempty"`
	RequestDate  time.Time  `bson:"request_date"`
	EndDate      *time.Time `bson:"end_date,omitempty"`
	Status       string     `bson:"status"`
	CreatedAt    time.Time  `bson:"created_at"`
	CreatedBy    string     `bson:"created_by"`
	ModifiedAt   time.Time  `bson:"modified_at"`
	ModifiedBy   string     `bson:"modified_by"`
}
