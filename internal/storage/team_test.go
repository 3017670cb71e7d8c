package storage

import (
	"errors"
	"testing"

	"vakildesk/internal/models"
)

func TestInviteValidation(t *testing.T) {
	store := NewTeamStore(nil)

	for _, email := range []string{"", "no-at-sign", "@chambers.in", "  @chambers.in"} {
		if _, err := store.Invite(email, models.RoleAssociate, "All", nil); !errors.Is(err, ErrEmailRequired) {
			t.Errorf("Invite(%q): err = %v, want ErrEmailRequired", email, err)
		}
	}
	if store.Count() != 0 {
		t.Fatal("rejected invites must not join the roster")
	}

	member, err := store.Invite("karan@chambers.in", models.RoleAssociate, "Assigned", []string{"1"})
	if err != nil {
		t.Fatalf("invite: %v", err)
	}
	if member.Name != "karan" {
		t.Errorf("Name = %q, want the email local part", member.Name)
	}
	if member.Status != "Invited" {
		t.Errorf("Status = %q", member.Status)
	}
}

func TestRemoveAndSetAccess(t *testing.T) {
	store := NewTeamStore([]models.TeamMember{
		{ID: "m1", Name: "Adv. Meera Iyer", Role: models.RolePartner, Access: "All"},
	})

	if _, err := store.SetAccess("m1", "Assigned", []string{"2"}); err != nil {
		t.Fatalf("set access: %v", err)
	}
	if got := store.All()[0]; got.Access != "Assigned" || len(got.CaseIDs) != 1 {
		t.Errorf("member after access change = %+v", got)
	}

	if err := store.Remove("missing"); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("remove unknown: err = %v", err)
	}
	if err := store.Remove("m1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if store.Count() != 0 {
		t.Error("roster not empty after remove")
	}
}
