package storage

import (
	"errors"
	"testing"

	"vakildesk/internal/models"
)

func testCaseStore() *CaseStore {
	return NewCaseStore([]models.Case{
		{ID: "1", Title: "Sharma vs State of Maharashtra"},
		{ID: "2", Title: "Land Dispute: Plot 44A"},
	})
}

func validDraft() models.EventDraft {
	draft := models.NewEventDraft("2023-11-15")
	draft.Title = "Bail Hearing"
	draft.CaseID = "1"
	return draft
}

func TestSaveRejectsCaseRequiringTypesWithoutCase(t *testing.T) {
	store := NewEventStore(testCaseStore(), nil)

	for _, typ := range []models.EventType{
		models.EventHearing, models.EventEvidence, models.EventFiling, models.EventJudgment,
	} {
		draft := validDraft()
		draft.Type = typ
		draft.CaseID = ""
		if _, err := store.Save(draft); !errors.Is(err, ErrCaseRequired) {
			t.Errorf("type %s without case: err = %v, want ErrCaseRequired", typ, err)
		}
	}

	if len(store.All()) != 0 {
		t.Error("rejected drafts must not be persisted")
	}

	// Client meetings stand alone.
	draft := validDraft()
	draft.Type = models.EventClientMeeting
	draft.CaseID = ""
	if _, err := store.Save(draft); err != nil {
		t.Errorf("client meeting without case: err = %v", err)
	}
}

func TestSaveValidation(t *testing.T) {
	store := NewEventStore(testCaseStore(), nil)

	tests := []struct {
		name   string
		mutate func(*models.EventDraft)
		want   error
	}{
		{"empty title", func(d *models.EventDraft) { d.Title = "  " }, ErrTitleRequired},
		{"unknown type", func(d *models.EventDraft) { d.Type = "Picnic" }, ErrUnknownType},
		{"missing date", func(d *models.EventDraft) { d.Date = "" }, ErrDateRequired},
		{"missing start", func(d *models.EventDraft) { d.StartTime = "" }, ErrTimeRequired},
		{"missing end", func(d *models.EventDraft) { d.EndTime = "" }, ErrTimeRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)
			if _, err := store.Save(draft); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	// End before start is deliberately allowed.
	draft := validDraft()
	draft.StartTime = "22:00"
	draft.EndTime = "01:00"
	if _, err := store.Save(draft); err != nil {
		t.Errorf("overnight event rejected: %v", err)
	}
}

func TestSaveAppendsWithFreshID(t *testing.T) {
	store := NewEventStore(testCaseStore(), nil)

	saved, err := store.Save(validDraft())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" {
		t.Error("new event must get an id")
	}
	if saved.CaseTitle != "Sharma vs State of Maharashtra" {
		t.Errorf("CaseTitle = %q, want the denormalized case title", saved.CaseTitle)
	}

	second, err := store.Save(validDraft())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if second.ID == saved.ID {
		t.Error("two new events must not share an id")
	}
	if len(store.All()) != 2 {
		t.Errorf("store holds %d events, want 2", len(store.All()))
	}
}

func TestSaveReplacesByID(t *testing.T) {
	store := NewEventStore(testCaseStore(), nil)

	saved, err := store.Save(validDraft())
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	edit := validDraft()
	edit.ID = saved.ID
	edit.Title = "Bail Hearing (Adjourned)"
	edit.CaseID = "2"

	updated, err := store.Save(edit)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if updated.ID != saved.ID {
		t.Error("editing must keep the existing id")
	}
	if updated.CaseTitle != "Land Dispute: Plot 44A" {
		t.Errorf("CaseTitle = %q, want it recomputed from the new case", updated.CaseTitle)
	}

	all := store.All()
	if len(all) != 1 {
		t.Fatalf("store holds %d events after edit, want 1", len(all))
	}
	if all[0].Title != "Bail Hearing (Adjourned)" {
		t.Errorf("stored title = %q", all[0].Title)
	}
}

func TestSaveIgnoresDraftCaseTitle(t *testing.T) {
	store := NewEventStore(testCaseStore(), nil)

	draft := validDraft()
	draft.CaseID = "999" // not a known case
	saved, err := store.Save(draft)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.CaseTitle != "" {
		t.Errorf("CaseTitle = %q, want empty for an unknown case", saved.CaseTitle)
	}
}
