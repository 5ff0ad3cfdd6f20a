package dto

import "github.com/google/uuid"

type RectDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type SectionDTO struct {
	Id     string   `json:"id"`
	Name   string   `json:"name"`
	Bounds RectDTO  `json:"bounds"`
	Color  string   `json:"color,omitempty"`
	Items  []string `json:"items,omitempty"`
}

type MapLayoutResponse struct {
	Entrance PositionDTO  `json:"entrance"`
	Sections []SectionDTO `json:"sections"`
}

type UpdatePositionRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
}

type PositionResponse struct {
	Position PositionDTO `json:"position"`
}
