package models

// Vendor is owned by the vendor directory; the reward engine only reads it.
type Vendor struct {
	ID       string `json:"id" pg:",pk"`
	Name     string `json:"name" pg:",notnull"`
	ZoneName string `json:"zone_name"`
}

type VendorStats struct {
	VendorID         string  `json:"vendor_id"`
	TotalVotes       int     `json:"total_votes"`
	VerifiedVotes    int     `json:"verified_votes"`
	RegularVotes     int     `json:"regular_votes"`
	UniqueVoters     int     `json:"unique_voters"`
	TokensAwarded    int64   `json:"tokens_awarded"`
	VerificationRate float64 `json:"verification_rate"`
}
