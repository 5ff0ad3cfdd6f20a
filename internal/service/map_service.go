package service

import (
	"context"

	"smart-trolley-be/internal/dto"
	"smart-trolley-be/internal/repository/memory"
	"smart-trolley-be/pkg/store"
)

type IMapService interface {
	GetLayout(ctx context.Context) *dto.MapLayoutResponse
	UpdatePosition(ctx context.Context, req *dto.UpdatePositionRequest) (*dto.PositionResponse, error)
}

type mapService struct {
	sessions memory.ISessionRepository
	layout   *store.Layout
}

func NewMapService(sessions memory.ISessionRepository, layout *store.Layout) IMapService {
	return &mapService{
		sessions: sessions,
		layout:   layout,
	}
}

func (s *mapService) GetLayout(ctx context.Context) *dto.MapLayoutResponse {
	sections := make([]dto.SectionDTO, 0, len(s.layout.Sections))
	for _, section := range s.layout.Sections {
		sections = append(sections, dto.SectionDTO{
			Id:   section.Id,
			Name: section.Name,
			Bounds: dto.RectDTO{
				X: section.Bounds.X,
				Y: section.Bounds.Y,
				W: section.Bounds.W,
				H: section.Bounds.H,
			},
			Color: section.Color,
			Items: section.Items,
		})
	}
	return &dto.MapLayoutResponse{
		Entrance: dto.PositionDTO{X: s.layout.Entrance.X, Y: s.layout.Entrance.Y},
		Sections: sections,
	}
}

// UpdatePosition moves the trolley marker. It does not replan an active
// path; the path stays anchored to where the search started.
func (s *mapService) UpdatePosition(ctx context.Context, req *dto.UpdatePositionRequest) (*dto.PositionResponse, error) {
	session, found := s.sessions.Get(req.SessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	session.Lock()
	session.Position = store.Position{X: req.X, Y: req.Y}
	session.Unlock()

	return &dto.PositionResponse{
		Position: dto.PositionDTO{X: req.X, Y: req.Y},
	}, nil
}
