package session

import (
	"testing"

	"github.com/NicolasCard/RAPZ/internal/models"
)

func newTestSession() *Session {
	return New(
		models.UserProfile{ID: "r1", Name: "João", Role: models.RoleRider, Rating: 4.9},
		models.UserProfile{ID: "s1", Name: "Pizzaria do Bairro", Role: models.RoleStore, Rating: 4.9},
	)
}

func TestSession_DefaultsToRider(t *testing.T) {
	s := newTestSession()
	if s.Role() != models.RoleRider {
		t.Fatalf("expected rider role, got %s", s.Role())
	}
	if s.Profile().ID != "r1" {
		t.Fatalf("expected rider profile, got %s", s.Profile().ID)
	}
}

func TestSession_SwitchRole(t *testing.T) {
	s := newTestSession()

	if err := s.SwitchRole(models.RoleStore); err != nil {
		t.Fatalf("switch role: %v", err)
	}
	if s.Role() != models.RoleStore {
		t.Fatalf("expected store role, got %s", s.Role())
	}
	if s.Profile().ID != "s1" {
		t.Fatalf("expected store profile, got %s", s.Profile().ID)
	}
}

func TestSession_RejectsUnknownRole(t *testing.T) {
	s := newTestSession()

	if err := s.SwitchRole("ADMIN"); err == nil {
		t.Fatal("expected error for unknown role")
	}
	if s.Role() != models.RoleRider {
		t.Fatalf("failed switch must not change the role, got %s", s.Role())
	}
}

func TestSession_ProfileFor(t *testing.T) {
	s := newTestSession()

	if got := s.ProfileFor(models.RoleStore).Name; got != "Pizzaria do Bairro" {
		t.Fatalf("unexpected store profile name: %s", got)
	}
}
