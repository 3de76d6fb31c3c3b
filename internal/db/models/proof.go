package models

import "time"

type ProofStatus string

func (s ProofStatus) String() string {
	return string(s)
}

const (
	ProofStatusPending  ProofStatus = "pending"
	ProofStatusApproved ProofStatus = "approved"
	ProofStatusRejected ProofStatus = "rejected"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Proof is the evidence behind a verified vote.
type Proof struct {
	ID          string                 `json:"id" pg:",pk,type:uuid"`
	VoteID      string                 `json:"vote_id" pg:"type:uuid,notnull"`
	VoterID     string                 `json:"voter_id" pg:",notnull"`
	VendorID    string                 `json:"vendor_id" pg:",notnull"`
	ContentHash string                 `json:"content_hash" pg:",notnull"`
	URL         string                 `json:"url"`
	Location    *Location              `json:"location,omitempty"`
	Confidence  *float64               `json:"confidence,omitempty"`
	Status      ProofStatus            `json:"status" pg:"type:proof_status,notnull,default:'pending'"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at" pg:"default:now()"`
}
