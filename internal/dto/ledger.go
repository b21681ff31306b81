package dto

import "time"

type SubmissionResponseDTO struct {
	ID          int        `json:"id" example:"10"`
	ChoreID     int        `json:"chore_id" example:"3"`
	ChoreName   string     `json:"chore_name,omitempty" example:"Clean Room"`
	Status      string     `json:"status" example:"pending"`
	SubmittedAt time.Time  `json:"submitted_at" example:"2020-12-09T16:09:57+03:00"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	Note        *string    `json:"note,omitempty"`
}

type TransactionResponseDTO struct {
	ID          int       `json:"id" example:"7"`
	Kind        string    `json:"kind" example:"chore"`
	Description string    `json:"description" example:"Approved: Clean Room"`
	Amount      float64   `json:"amount" example:"5"`
	CreatedAt   time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

type DashboardResponseDTO struct {
	Balance          float64                  `json:"balance" example:"13"`
	PendingEarnings  float64                  `json:"pending_earnings" example:"7.5"`
	ApprovedEarnings float64                  `json:"approved_earnings" example:"25"`
	TotalFines       float64                  `json:"total_fines" example:"2"`
	TotalPayments    float64                  `json:"total_payments" example:"10"`
	Submissions      []SubmissionResponseDTO  `json:"submissions"`
	// PendingSubmissions is the approval queue, newest first.
	PendingSubmissions []SubmissionResponseDTO  `json:"pending_submissions"`
	Transactions       []TransactionResponseDTO `json:"transactions"`
}

type ChildDashboardResponseDTO struct {
	DashboardResponseDTO
	Chores []ChildChoreDTO `json:"chores"`
}

type FineRequestDTO struct {
	Description string  `json:"description" example:"Broke a vase"`
	Amount      float64 `json:"amount" example:"2"`
}

type PaymentRequestDTO struct {
	Amount float64 `json:"amount" example:"3"`
}
