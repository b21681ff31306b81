package dto

type SubmissionClaimDTO struct {
	Count int    `json:"count" example:"1"`
	Note  string `json:"note,omitempty" example:"Did it before school"`
}

// SubmitRequestDTO maps chore template ids to the day's claims.
type SubmitRequestDTO struct {
	Claims map[int]SubmissionClaimDTO `json:"claims"`
}

type SubmissionWarningDTO struct {
	ChoreID   int    `json:"chore_id" example:"3"`
	ChoreName string `json:"chore_name" example:"Clean Room"`
	Reason    string `json:"reason" example:"Daily limit already reached"`
}

type SubmitResponseDTO struct {
	Submitted []string               `json:"submitted"`
	Warnings  []SubmissionWarningDTO `json:"warnings,omitempty"`
}

type AvailabilityDTO struct {
	CanSubmit  bool   `json:"can_submit" example:"true"`
	TodayCount int    `json:"today_count" example:"0"`
	Limit      int    `json:"limit" example:"1"`
	Remaining  *int   `json:"remaining,omitempty" example:"1"`
	Days       string `json:"days" example:"STThS"`
}

type ChildChoreDTO struct {
	ID           int             `json:"id" example:"3"`
	Name         string          `json:"name" example:"Clean Room"`
	Description  string          `json:"description,omitempty" example:"Floor visible, bed made"`
	Value        float64         `json:"value" example:"5"`
	Availability AvailabilityDTO `json:"availability"`
}
