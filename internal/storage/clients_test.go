package storage

import (
	"errors"
	"testing"

	"vakildesk/internal/models"
)

func TestClientAddValidation(t *testing.T) {
	store := NewClientStore(nil)

	if _, err := store.Add("", "+91 1", "a@b.in", ""); !errors.Is(err, ErrNameRequired) {
		t.Errorf("missing name: err = %v", err)
	}
	if _, err := store.Add("Priya Patel", "", "a@b.in", ""); !errors.Is(err, ErrContactRequired) {
		t.Errorf("missing phone: err = %v", err)
	}
	if _, err := store.Add("Priya Patel", "+91 1", "", ""); !errors.Is(err, ErrContactRequired) {
		t.Errorf("missing email: err = %v", err)
	}

	client, err := store.Add("Priya Patel", "+91 77665 54433", "priya@example.com", "Ahmedabad")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if client.ID == "" || client.Status != models.ClientActive {
		t.Errorf("new client = %+v", client)
	}

	// New clients are prepended, matching the view's newest-first list.
	store.Add("Second Client", "+91 2", "second@example.com", "")
	if all := store.All(); all[0].Name != "Second Client" {
		t.Errorf("first listed client = %q, want the newest", all[0].Name)
	}
}

func TestClientSelectionAcrossFilters(t *testing.T) {
	store := NewClientStore([]models.Client{
		{ID: "c1", Name: "Rajesh Sharma", Status: models.ClientActive},
		{ID: "c2", Name: "Amit Verma", Status: models.ClientActive},
		{ID: "c3", Name: "Suresh Raina", Status: models.ClientInactive},
	})

	store.ToggleSelect("c1")
	store.ToggleSelect("c3")

	// Active-only filter hides c3 but keeps it in the selection set.
	active := []string{"c1", "c2"}
	if got := store.SelectedIDs(active); len(got) != 1 || got[0] != "c1" {
		t.Fatalf("SelectedIDs(active) = %v", got)
	}

	// Removing the filter shows c3 selected again.
	all := []string{"c1", "c2", "c3"}
	if got := store.SelectedIDs(all); len(got) != 2 {
		t.Fatalf("SelectedIDs(all) = %v", got)
	}

	// Select-all over the active subset.
	store.ToggleSelectAll(active)
	if got := store.SelectedIDs(all); len(got) != 3 {
		t.Fatalf("after select-all: %v", got)
	}
}
