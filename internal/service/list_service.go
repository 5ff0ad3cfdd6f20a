package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"smart-trolley-be/internal/dto"
	"smart-trolley-be/internal/pkg/logger"
	"smart-trolley-be/internal/repository/memory"
	"smart-trolley-be/pkg/catalog"
	"smart-trolley-be/pkg/events"
	"smart-trolley-be/pkg/store"
)

var ErrItemNotFound = errors.New("list item not found")

type IListService interface {
	GetList(ctx context.Context, sessionId uuid.UUID) (*dto.ListResponse, error)
	AddItem(ctx context.Context, req *dto.AddListItemRequest) (*dto.ListItemDTO, error)
	ToggleItem(ctx context.Context, sessionId, itemId uuid.UUID) (*dto.ListItemDTO, error)
	RemoveItem(ctx context.Context, sessionId, itemId uuid.UUID) error
}

type listService struct {
	sessions  memory.ISessionRepository
	layout    *store.Layout
	catalog   *catalog.Catalog
	publisher IPublisherService
	logger    logger.ILogger
}

func NewListService(
	sessions memory.ISessionRepository,
	layout *store.Layout,
	cat *catalog.Catalog,
	publisher IPublisherService,
	logger logger.ILogger,
) IListService {
	return &listService{
		sessions:  sessions,
		layout:    layout,
		catalog:   cat,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *listService) GetList(ctx context.Context, sessionId uuid.UUID) (*dto.ListResponse, error) {
	session, found := s.sessions.Get(sessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()

	completed, total := session.Progress()
	return &dto.ListResponse{
		Items:     toListItemDTOs(session.Items),
		Completed: completed,
		Total:     total,
	}, nil
}

// AddItem appends a free-typed item. Names are not required to exist in the
// catalog; when they do, location metadata is attached.
func (s *listService) AddItem(ctx context.Context, req *dto.AddListItemRequest) (*dto.ListItemDTO, error) {
	session, found := s.sessions.Get(req.SessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	item := store.ListItem{
		Id:       uuid.New(),
		Name:     req.Name,
		Quantity: quantity,
	}
	if entry, ok := s.catalog.FindByName(req.Name); ok {
		item.Price = entry.Price
		item.Aisle = entry.Aisle
		if section, sok := s.layout.SectionById(entry.SectionId); sok {
			item.Location = section.Name
		}
	}

	session.Lock()
	session.Items = append(session.Items, item)
	session.Unlock()

	s.publishListEvent(ctx, events.TypeItemAdded, session.Id, item.Id, item.Name)

	res := toListItemDTO(item)
	return &res, nil
}

func (s *listService) ToggleItem(ctx context.Context, sessionId, itemId uuid.UUID) (*dto.ListItemDTO, error) {
	session, found := s.sessions.Get(sessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	session.Lock()
	item, ok := session.ItemById(itemId)
	if !ok {
		session.Unlock()
		return nil, ErrItemNotFound
	}
	item.Completed = !item.Completed
	snapshot := *item
	session.Unlock()

	s.publishListEvent(ctx, events.TypeItemToggled, session.Id, snapshot.Id, snapshot.Name)

	res := toListItemDTO(snapshot)
	return &res, nil
}

func (s *listService) RemoveItem(ctx context.Context, sessionId, itemId uuid.UUID) error {
	session, found := s.sessions.Get(sessionId)
	if !found {
		return ErrSessionNotFound
	}

	session.Lock()
	removed := session.RemoveItem(itemId)
	session.Unlock()

	if !removed {
		return ErrItemNotFound
	}

	s.publishListEvent(ctx, events.TypeItemRemoved, session.Id, itemId, "")
	return nil
}

func (s *listService) publishListEvent(ctx context.Context, eventType string, sessionId, itemId uuid.UUID, name string) {
	data := map[string]interface{}{
		"item_id": itemId.String(),
	}
	if name != "" {
		data["name"] = name
	}
	evt := events.NewSessionEvent(eventType, sessionId, data)
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("list", "Failed to publish list event", map[string]interface{}{
			"error": err.Error(),
			"type":  eventType,
		})
	}
}
