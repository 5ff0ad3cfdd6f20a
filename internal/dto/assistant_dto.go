package dto

import "github.com/google/uuid"

type CreateSessionResponse struct {
	SessionId  uuid.UUID     `json:"session_id"`
	ActiveView string        `json:"active_view"`
	Items      []ListItemDTO `json:"items"`
}

type UtteranceRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Utterance string    `json:"utterance" validate:"required"`
}

type PositionDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type NavigationTargetDTO struct {
	Item        string        `json:"item"`
	SectionId   string        `json:"section_id"`
	SectionName string        `json:"section_name"`
	Aisle       string        `json:"aisle"`
	Path        []PositionDTO `json:"path"`
}

type UtteranceResponse struct {
	Intent     string               `json:"intent"`
	Response   string               `json:"response"`
	ActiveView string               `json:"active_view"`
	Target     *NavigationTargetDTO `json:"target,omitempty"`
}

type SessionSnapshotResponse struct {
	SessionId  uuid.UUID            `json:"session_id"`
	ActiveView string               `json:"active_view"`
	Position   PositionDTO          `json:"position"`
	Items      []ListItemDTO        `json:"items"`
	Target     *NavigationTargetDTO `json:"target,omitempty"`
}
