package types

// Event types
const (
	EventTypePoolCreated       = "ajo_pool_created"
	EventTypeMemberAdmitted    = "ajo_member_admitted"
	EventTypeContributionMade  = "ajo_contribution_made"
	EventTypeFundsDistributed  = "ajo_funds_distributed"
	EventTypePenaltyApplied    = "ajo_penalty_applied"
	EventTypeGoalReached       = "ajo_goal_reached"
	EventTypeDeadlineReached   = "ajo_deadline_reached"
	EventTypeRotationCompleted = "ajo_rotation_completed"
	EventTypeYieldDistributed  = "ajo_yield_distributed"
	EventTypePoolStatusChanged = "ajo_pool_status_changed"
	EventTypeWithdrawal        = "ajo_withdrawal"
)

// Event attribute keys
const (
	AttributeKeyPoolID    = "pool_id"
	AttributeKeyKind      = "kind"
	AttributeKeyCreator   = "creator"
	AttributeKeyMember    = "member"
	AttributeKeyRecipient = "recipient"
	AttributeKeyAmount    = "amount"
	AttributeKeyBalance   = "balance"
	AttributeKeyRotation  = "rotation"
	AttributeKeyStatus    = "status"
	AttributeKeyTimestamp = "timestamp"
)
