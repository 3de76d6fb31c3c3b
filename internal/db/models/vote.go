package models

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type (
	VoteKind           string
	DistributionStatus string
)

func (k VoteKind) String() string {
	return string(k)
}

func (k VoteKind) CapitalizedString() string {
	return cases.Title(language.English).String(k.String())
}

func (k VoteKind) IsValid() bool {
	return k == VoteKindRegular || k == VoteKindVerified
}

func (s DistributionStatus) String() string {
	return string(s)
}

func (s DistributionStatus) CapitalizedString() string {
	return cases.Title(language.English).String(s.String())
}

const (
	VoteKindRegular  VoteKind = "regular"
	VoteKindVerified VoteKind = "verified"

	DistributionStatusPending     DistributionStatus = "pending"
	DistributionStatusDistributed DistributionStatus = "distributed"
	DistributionStatusFailed      DistributionStatus = "failed"
)

// Vote is one ledger row. TokenReward is written once and never updated;
// only the distribution columns change after insert.
type Vote struct {
	ID                   string             `json:"id" pg:",pk,type:uuid"`
	VoterID              string             `json:"voter_id" pg:",notnull"`
	VendorID             string             `json:"vendor_id" pg:",notnull"`
	Vendor               *Vendor            `json:"vendor,omitempty" pg:"rel:has-one"`
	Kind                 VoteKind           `json:"kind" pg:"type:vote_kind,notnull"`
	TokenReward          int64              `json:"token_reward" pg:",notnull,use_zero"`
	StreakBonus          int64              `json:"streak_bonus" pg:",notnull,use_zero"`
	TerritoryBonus       int64              `json:"territory_bonus" pg:",notnull,use_zero"`
	ProofID              string             `json:"proof_id,omitempty" pg:"type:uuid"`
	DistributionStatus   DistributionStatus `json:"distribution_status" pg:"type:distribution_status,notnull,default:'pending'"`
	DistributionTxRef    string             `json:"distribution_tx_ref,omitempty"`
	DistributionError    string             `json:"distribution_error,omitempty"`
	DistributionAttempts int                `json:"distribution_attempts" pg:",notnull,use_zero"`
	CreatedAt            time.Time          `json:"created_at" pg:"default:now()"`
}
