package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-trolley-be/internal/dto"
	"smart-trolley-be/internal/repository/memory"
	"smart-trolley-be/pkg/catalog"
	"smart-trolley-be/pkg/store"
)

func newTestList(t *testing.T) (IListService, memory.ISessionRepository) {
	t.Helper()
	sessions := memory.NewSessionRepository()
	svc := NewListService(
		sessions,
		store.DefaultLayout(),
		catalog.Default(),
		&recordingPublisher{},
		noopLogger{},
	)
	return svc, sessions
}

func newEmptySession(sessions memory.ISessionRepository) *store.Session {
	session := &store.Session{
		Id:         uuid.New(),
		ActiveView: store.ViewList,
		Items:      []store.ListItem{},
	}
	sessions.Save(session)
	return session
}

func TestAddItemAttachesCatalogMetadata(t *testing.T) {
	svc, sessions := newTestList(t)
	session := newEmptySession(sessions)

	item, err := svc.AddItem(context.Background(), &dto.AddListItemRequest{
		SessionId: session.Id,
		Name:      "Milk",
		Quantity:  3,
	})
	require.NoError(t, err)

	assert.Equal(t, "Milk", item.Name)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, "Dairy & Eggs", item.Location)
	assert.Equal(t, "Aisle 3", item.Aisle)
	assert.Equal(t, 4.99, item.Price)
}

func TestAddItemFreeTypedKeepsBareEntry(t *testing.T) {
	svc, sessions := newTestList(t)
	session := newEmptySession(sessions)

	item, err := svc.AddItem(context.Background(), &dto.AddListItemRequest{
		SessionId: session.Id,
		Name:      "birthday candles",
	})
	require.NoError(t, err)

	assert.Equal(t, "birthday candles", item.Name)
	assert.Equal(t, 1, item.Quantity, "quantity defaults to one")
	assert.Empty(t, item.Location)
	assert.Zero(t, item.Price)
}

func TestToggleAndProgress(t *testing.T) {
	svc, sessions := newTestList(t)
	session := newEmptySession(sessions)

	first, err := svc.AddItem(context.Background(), &dto.AddListItemRequest{SessionId: session.Id, Name: "bread"})
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), &dto.AddListItemRequest{SessionId: session.Id, Name: "eggs"})
	require.NoError(t, err)

	toggled, err := svc.ToggleItem(context.Background(), session.Id, first.Id)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	list, err := svc.GetList(context.Background(), session.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Completed)
	assert.Equal(t, 2, list.Total)

	// Toggling back clears the checkmark.
	toggled, err = svc.ToggleItem(context.Background(), session.Id, first.Id)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}

func TestRemoveItemPreservesOrder(t *testing.T) {
	svc, sessions := newTestList(t)
	session := newEmptySession(sessions)

	var ids []uuid.UUID
	for _, name := range []string{"bread", "eggs", "soda"} {
		item, err := svc.AddItem(context.Background(), &dto.AddListItemRequest{SessionId: session.Id, Name: name})
		require.NoError(t, err)
		ids = append(ids, item.Id)
	}

	require.NoError(t, svc.RemoveItem(context.Background(), session.Id, ids[1]))

	list, err := svc.GetList(context.Background(), session.Id)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "bread", list.Items[0].Name)
	assert.Equal(t, "soda", list.Items[1].Name)
}

func TestListErrors(t *testing.T) {
	svc, sessions := newTestList(t)
	session := newEmptySession(sessions)

	_, err := svc.GetList(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.ToggleItem(context.Background(), session.Id, uuid.New())
	assert.ErrorIs(t, err, ErrItemNotFound)

	err = svc.RemoveItem(context.Background(), session.Id, uuid.New())
	assert.ErrorIs(t, err, ErrItemNotFound)
}
