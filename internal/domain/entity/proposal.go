package entity

import (
	"time"
)

// ProposalStatus represents the lifecycle state of a proposal.
type ProposalStatus string

// Proposal lifecycle states. A proposal starts as submitted and ends in
// exactly one of the terminal states confirmed or rejected.
const (
	ProposalStatusSubmitted ProposalStatus = "submitted"
	ProposalStatusConfirmed ProposalStatus = "confirmed"
	ProposalStatusRejected  ProposalStatus = "rejected"
)

// ValidProposalStatus reports whether the given string names a known
// proposal state. Used by the administrative status override.
func ValidProposalStatus(s string) bool {
	switch ProposalStatus(s) {
	case ProposalStatusSubmitted, ProposalStatusConfirmed, ProposalStatusRejected:
		return true
	default:
		return false
	}
}

// Proposal represents a seller's quote against one Solicitud.
type Proposal struct {
	ID           int64          `json:"id"`            // The unique identifier of the proposal.
	CompanyID    string         `json:"company_id"`    // The external identity of the proposing company.
	CompanyName  string         `json:"company_name"`  // Display name of the company.
	SolicitudID  int64          `json:"solicitud_id"`  // The request this proposal quotes.
	Currency     string         `json:"currency"`      // ISO currency code, e.g. "COP".
	DeliveryTime string         `json:"delivery_time"` // Free-text delivery estimate.
	Total        int64          `json:"total"`         // Derived sum of item subtotals, minor units.
	Status       ProposalStatus `json:"status"`        // Current lifecycle state.
	CreatedAt    time.Time      `json:"created_at"`    // Timestamp of when the proposal was created.
	Items        []ProposalItem `json:"items"`         // Ordered list of quoted line items.
}

// ProposalItem is a single quoted line. It belongs to exactly one proposal
// and is removed together with it.
type ProposalItem struct {
	ID          int64  `json:"id"`
	ProposalID  int64  `json:"proposal_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`  // Minor currency units.
	TotalPrice  int64  `json:"total_price"` // Quantity * UnitPrice, persisted.
	Comments    string `json:"comments,omitempty"`
}

// Terminal reports whether the proposal is in a final state.
func (p *Proposal) Terminal() bool {
	return p.Status == ProposalStatusConfirmed || p.Status == ProposalStatusRejected
}

// CanTransition reports whether the proposal may move to the target state.
// Only submitted proposals may transition; terminal states are final.
func (p *Proposal) CanTransition(target ProposalStatus) bool {
	if p.Status != ProposalStatusSubmitted {
		return false
	}

	return target == ProposalStatusConfirmed || target == ProposalStatusRejected
}

// ComputeTotal returns the sum of quantity x unit price over the given items.
func ComputeTotal(items []ProposalItem) int64 {
	var total int64
	for _, item := range items {
		total += int64(item.Quantity) * item.UnitPrice
	}

	return total
}
