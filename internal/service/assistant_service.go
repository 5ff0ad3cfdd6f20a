package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"smart-trolley-be/internal/dto"
	"smart-trolley-be/internal/pkg/logger"
	"smart-trolley-be/internal/repository/memory"
	"smart-trolley-be/pkg/catalog"
	"smart-trolley-be/pkg/engine/intent"
	"smart-trolley-be/pkg/engine/nav"
	"smart-trolley-be/pkg/engine/resolver"
	"smart-trolley-be/pkg/engine/respond"
	"smart-trolley-be/pkg/events"
	"smart-trolley-be/pkg/store"
)

var ErrSessionNotFound = errors.New("session not found")

type IAssistantService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetSession(ctx context.Context, id uuid.UUID) (*dto.SessionSnapshotResponse, error)
	HandleUtterance(ctx context.Context, sessionId uuid.UUID, utterance string) (*dto.UtteranceResponse, error)
}

type assistantService struct {
	sessions  memory.ISessionRepository
	layout    *store.Layout
	catalog   *catalog.Catalog
	publisher IPublisherService
	logger    logger.ILogger
}

func NewAssistantService(
	sessions memory.ISessionRepository,
	layout *store.Layout,
	cat *catalog.Catalog,
	publisher IPublisherService,
	logger logger.ILogger,
) IAssistantService {
	return &assistantService{
		sessions:  sessions,
		layout:    layout,
		catalog:   cat,
		publisher: publisher,
		logger:    logger,
	}
}

// seedNames are the starter items every new session begins with, so the
// shopper sees a populated list on first boot. Apples start checked off.
var seedItems = []struct {
	name      string
	quantity  int
	completed bool
}{
	{"Milk", 1, false},
	{"Bread", 2, false},
	{"Apples", 5, true},
	{"Chicken", 1, false},
}

func (s *assistantService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	session := &store.Session{
		Id:         uuid.New(),
		Items:      make([]store.ListItem, 0, len(seedItems)),
		ActiveView: store.ViewAssistant,
		Position:   s.layout.Entrance,
		CreatedAt:  time.Now(),
	}

	for _, seed := range seedItems {
		item := store.ListItem{
			Id:        uuid.New(),
			Name:      seed.name,
			Quantity:  seed.quantity,
			Completed: seed.completed,
		}
		if entry, ok := s.catalog.FindByName(seed.name); ok {
			item.Price = entry.Price
			item.Aisle = entry.Aisle
			if section, found := s.layout.SectionById(entry.SectionId); found {
				item.Location = section.Name
			}
		}
		session.Items = append(session.Items, item)
	}

	s.sessions.Save(session)
	s.logger.Info("assistant", "Session created", map[string]interface{}{
		"session_id": session.Id.String(),
		"items":      len(session.Items),
	})

	return &dto.CreateSessionResponse{
		SessionId:  session.Id,
		ActiveView: session.ActiveView,
		Items:      toListItemDTOs(session.Items),
	}, nil
}

func (s *assistantService) GetSession(ctx context.Context, id uuid.UUID) (*dto.SessionSnapshotResponse, error) {
	session, found := s.sessions.Get(id)
	if !found {
		return nil, ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()

	return &dto.SessionSnapshotResponse{
		SessionId:  session.Id,
		ActiveView: session.ActiveView,
		Position:   dto.PositionDTO{X: session.Position.X, Y: session.Position.Y},
		Items:      toListItemDTOs(session.Items),
		Target:     toTargetDTO(session.Target),
	}, nil
}

// HandleUtterance runs one spoken command through the full pipeline:
// classify, resolve against the catalog, mutate session state, compose
// the assistant reply.
func (s *assistantService) HandleUtterance(ctx context.Context, sessionId uuid.UUID, utterance string) (*dto.UtteranceResponse, error) {
	session, found := s.sessions.Get(sessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	cmd := intent.Classify(utterance)

	session.Lock()
	defer session.Unlock()

	var res *dto.UtteranceResponse
	switch cmd.Action {
	case intent.ActionFindItem:
		res = s.handleFind(ctx, session, cmd)
	case intent.ActionAddItem:
		res = s.handleAdd(ctx, session, cmd)
	case intent.ActionCheckout:
		session.ActiveView = store.ViewCheckout
		res = &dto.UtteranceResponse{
			Intent:   string(cmd.Action),
			Response: respond.Compose(cmd, nil, ""),
		}
	case intent.ActionShowList:
		session.ActiveView = store.ViewList
		res = &dto.UtteranceResponse{
			Intent:   string(cmd.Action),
			Response: respond.Compose(cmd, nil, ""),
		}
	default:
		// Unknown leaves the view and list untouched.
		res = &dto.UtteranceResponse{
			Intent:   string(intent.ActionUnknown),
			Response: respond.Compose(cmd, nil, ""),
		}
	}

	res.ActiveView = session.ActiveView
	res.Target = toTargetDTO(session.Target)

	s.logger.Debug("assistant", "Utterance handled", map[string]interface{}{
		"session_id": sessionId.String(),
		"intent":     res.Intent,
		"utterance":  utterance,
	})
	return res, nil
}

// Caller holds the session lock.
func (s *assistantService) handleFind(ctx context.Context, session *store.Session, cmd intent.Command) *dto.UtteranceResponse {
	entry, ok := resolver.Resolve(cmd.Phrase, s.catalog)
	if !ok {
		return &dto.UtteranceResponse{
			Intent:   string(cmd.Action),
			Response: respond.Compose(cmd, nil, ""),
		}
	}

	section, found := s.layout.SectionById(entry.SectionId)
	if !found {
		// Unreachable after startup validation, but fail soft.
		s.logger.Error("assistant", "Catalog entry points at missing section", map[string]interface{}{
			"item":    entry.Name,
			"section": entry.SectionId,
		})
		return &dto.UtteranceResponse{
			Intent:   string(cmd.Action),
			Response: respond.ItemNotFound(cmd.Phrase),
		}
	}

	session.Target = &store.NavigationTarget{
		Item:        entry.Name,
		SectionId:   section.Id,
		SectionName: section.Name,
		Aisle:       entry.Aisle,
		Path:        nav.Plan(session.Position, *section),
	}
	session.ActiveView = store.ViewMap

	evt := events.NewSessionEvent(events.TypeNavigationSet, session.Id, map[string]interface{}{
		"item":    entry.Name,
		"section": section.Id,
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("assistant", "Failed to publish navigation event", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return &dto.UtteranceResponse{
		Intent:   string(cmd.Action),
		Response: respond.Compose(cmd, entry, section.Name),
	}
}

// Caller holds the session lock.
func (s *assistantService) handleAdd(ctx context.Context, session *store.Session, cmd intent.Command) *dto.UtteranceResponse {
	entry, ok := resolver.Resolve(cmd.Phrase, s.catalog)
	if !ok {
		return &dto.UtteranceResponse{
			Intent:   string(cmd.Action),
			Response: respond.Compose(cmd, nil, ""),
		}
	}

	item := store.ListItem{
		Id:       uuid.New(),
		Name:     entry.Name,
		Quantity: 1,
		Price:    entry.Price,
		Aisle:    entry.Aisle,
	}
	if section, found := s.layout.SectionById(entry.SectionId); found {
		item.Location = section.Name
	}
	session.Items = append(session.Items, item)

	evt := events.NewSessionEvent(events.TypeItemAdded, session.Id, map[string]interface{}{
		"item_id": item.Id.String(),
		"name":    item.Name,
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("assistant", "Failed to publish list event", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return &dto.UtteranceResponse{
		Intent:   string(cmd.Action),
		Response: respond.Compose(cmd, entry, ""),
	}
}
