package types

import (
	errorsmod "cosmossdk.io/errors"
)

// RotationState is the turn-based payout state of a rotational pool
type RotationState struct {
	// Order is the recipient sequence, fixed at construction
	Order              []string `json:"order"`
	CurrentIndex       uint64   `json:"current_index"`
	CompletedRotations uint64   `json:"completed_rotations"`
	TotalRotations     uint64   `json:"total_rotations"`
	// Paid holds the recipients paid in the current round
	Paid []string `json:"paid"`
	// RoundContributors holds the members that contributed in the current round
	RoundContributors []string `json:"round_contributors"`
	RoundStartedAt    int64    `json:"round_started_at"`
}

// NewRotationState builds the state for a recipient order
func NewRotationState(order []string, startedAt int64) *RotationState {
	return &RotationState{
		Order:             order,
		TotalRotations:    uint64(len(order)),
		Paid:              []string{},
		RoundContributors: []string{},
		RoundStartedAt:    startedAt,
	}
}

// Finished reports whether every rotation has been paid out
func (r *RotationState) Finished() bool {
	return r.CurrentIndex >= r.TotalRotations
}

// CurrentRecipient returns the member due the next payout
func (r *RotationState) CurrentRecipient() (string, bool) {
	if r.Finished() || r.CurrentIndex >= uint64(len(r.Order)) {
		return "", false
	}
	return r.Order[r.CurrentIndex], true
}

// IsPaid reports whether addr was paid in the current round
func (r *RotationState) IsPaid(addr string) bool {
	return contains(r.Paid, addr)
}

// HasContributed reports whether addr contributed in the current round
func (r *RotationState) HasContributed(addr string) bool {
	return contains(r.RoundContributors, addr)
}

// MarkContributed records a contribution by addr in the current round
func (r *RotationState) MarkContributed(addr string) {
	if !contains(r.RoundContributors, addr) {
		r.RoundContributors = append(r.RoundContributors, addr)
	}
}

// Advance flags recipient as paid and moves to the next rotation. Flags are
// cleared when another round follows.
func (r *RotationState) Advance(recipient string, now int64) {
	r.Paid = append(r.Paid, recipient)
	r.CurrentIndex++
	r.CompletedRotations++
	if !r.Finished() {
		r.Paid = []string{}
		r.RoundContributors = []string{}
		r.RoundStartedAt = now
	}
}

// Validate checks the rotation state against the pool member count
func (r *RotationState) Validate(memberCount uint64) error {
	if r.TotalRotations != uint64(len(r.Order)) {
		return errorsmod.Wrapf(ErrInvalidGenesis, "total rotations %d != order length %d", r.TotalRotations, len(r.Order))
	}
	if r.TotalRotations != memberCount {
		return errorsmod.Wrapf(ErrInvalidGenesis, "total rotations %d != member count %d", r.TotalRotations, memberCount)
	}
	if r.CurrentIndex > r.TotalRotations {
		return errorsmod.Wrapf(ErrInvalidGenesis, "rotation index %d beyond %d", r.CurrentIndex, r.TotalRotations)
	}
	if r.CompletedRotations != r.CurrentIndex {
		return errorsmod.Wrapf(ErrInvalidGenesis, "completed rotations %d != index %d", r.CompletedRotations, r.CurrentIndex)
	}
	seen := make(map[string]struct{}, len(r.Order))
	for _, addr := range r.Order {
		if _, ok := seen[addr]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate recipient %s", addr)
		}
		seen[addr] = struct{}{}
	}
	return nil
}

// RotationOrder places creator first and appends members in the given order,
// dropping the creator and any repeated address.
func RotationOrder(creator string, members []string) []string {
	order := []string{creator}
	seen := map[string]struct{}{creator: {}}
	for _, m := range members {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		order = append(order, m)
	}
	return order
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
