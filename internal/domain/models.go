package domain

import "time"

const (
	RoleParent = "parent"
	RoleChild  = "child"
)

const (
	// StatusPending chore is waiting for parent approval;
	StatusPending = "pending"
	// StatusApproved chore was approved and counted towards the balance;
	StatusApproved = "approved"
)

const (
	// KindChore earnings credited for an approved chore;
	KindChore = "chore"
	// KindFine deduction levied by the parent;
	KindFine = "fine"
	// KindPayment cash paid out to the child, settles earned balance;
	KindPayment = "payment"
)

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// ChoreTemplate describes what a chore is and what it pays. Limits holds one
// slot per weekday, Sunday first; a slot of 0 means unlimited submissions on
// that day. Templates are only ever deactivated, never deleted, so historical
// submissions keep their reference.
type ChoreTemplate struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Value       float64   `db:"value"`
	Limits      [7]int    `db:"-"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"`
}

type Submission struct {
	ID              int        `db:"id"`
	UserID          int        `db:"user_id"`
	ChoreTemplateID int        `db:"chore_template_id"`
	Status          string     `db:"status"`
	SubmittedAt     time.Time  `db:"submitted_at"`
	ApprovedAt      *time.Time `db:"approved_at"`
	Note            *string    `db:"note"`
}

// Transaction is an append-only ledger entry. Amount is stored positive;
// its effect on the balance is implied by Kind.
type Transaction struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	Kind        string    `db:"kind"`
	Description string    `db:"description"`
	Amount      float64   `db:"amount"`
	CreatedAt   time.Time `db:"created_at"`
}
