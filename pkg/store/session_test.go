package store

import (
	"testing"

	"github.com/google/uuid"
)

func TestProgress(t *testing.T) {
	s := &Session{Items: []ListItem{
		{Id: uuid.New(), Name: "milk", Completed: true},
		{Id: uuid.New(), Name: "bread"},
		{Id: uuid.New(), Name: "eggs", Completed: true},
	}}

	completed, total := s.Progress()
	if completed != 2 || total != 3 {
		t.Errorf("Progress() = (%d, %d), want (2, 3)", completed, total)
	}
}

func TestRemoveItemPreservesOrder(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	s := &Session{Items: []ListItem{
		{Id: a, Name: "milk"},
		{Id: b, Name: "bread"},
		{Id: c, Name: "eggs"},
	}}

	if !s.RemoveItem(b) {
		t.Fatal("expected removal to succeed")
	}
	if len(s.Items) != 2 || s.Items[0].Id != a || s.Items[1].Id != c {
		t.Errorf("order not preserved: %+v", s.Items)
	}
	if s.RemoveItem(b) {
		t.Error("removing a missing item should report false")
	}
}

func TestClearAfterPayment(t *testing.T) {
	s := &Session{
		Items:      []ListItem{{Id: uuid.New(), Name: "milk"}},
		Target:     &NavigationTarget{Item: "milk"},
		ActiveView: ViewCheckout,
	}

	s.ClearAfterPayment()

	if len(s.Items) != 0 {
		t.Errorf("items not cleared: %+v", s.Items)
	}
	if s.Target != nil {
		t.Error("target not cleared")
	}
	if s.ActiveView != ViewAssistant {
		t.Errorf("ActiveView = %q, want %q", s.ActiveView, ViewAssistant)
	}
}
