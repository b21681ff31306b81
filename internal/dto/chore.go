package dto

type ChoreRequestDTO struct {
	Name        string  `json:"name" example:"Clean Room"`
	Description string  `json:"description" example:"Floor visible, bed made"`
	Value       float64 `json:"value" example:"5"`
	Limits      [7]int  `json:"limits" example:"1,0,1,0,1,0,1"`
}

type ChoreResponseDTO struct {
	ID          int     `json:"id" example:"3"`
	Name        string  `json:"name" example:"Clean Room"`
	Description string  `json:"description,omitempty" example:"Floor visible, bed made"`
	Value       float64 `json:"value" example:"5"`
	Limits      [7]int  `json:"limits" example:"1,0,1,0,1,0,1"`
	Days        string  `json:"days" example:"STThS"`
	Active      bool    `json:"active" example:"true"`
}
