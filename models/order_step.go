package models

import "time"

type StepName string
type StepOutcome string

const (
	StepPersistOrder  StepName = "persist_order"
	StepCustomerEmail StepName = "customer_email"
	StepInternalEmail StepName = "internal_email"
	StepClearCart     StepName = "clear_cart"

	StepSucceeded StepOutcome = "succeeded"
	StepFailed    StepOutcome = "failed"
	StepSkipped   StepOutcome = "skipped"
)

// OrderStep records the outcome of one side effect run after a payment was
// confirmed. The steps are independent; a failed step does not undo the others.
type OrderStep struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	SessionID string      `gorm:"index;not null" json:"session_id"`
	Step      StepName    `gorm:"type:VARCHAR(32);not null" json:"step"`
	Outcome   StepOutcome `gorm:"type:VARCHAR(16);not null" json:"outcome"`
	Detail    string      `json:"detail,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// StepClaim is held by the confirmation currently running a step. A claim
// older than the recorder's claim timeout may be taken over.
type StepClaim struct {
	SessionID string    `gorm:"primaryKey;type:VARCHAR(255)"`
	Step      StepName  `gorm:"primaryKey;type:VARCHAR(32)"`
	ClaimedAt time.Time `gorm:"not null"`
}
