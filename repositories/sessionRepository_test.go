package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"NileDialysis/models"
	"NileDialysis/utils"
)

func TestSessionToggle(t *testing.T) {
	db := newTestDB(t, &models.Session{})
	repo := NewSessionRepository(db)
	ctx := context.Background()
	date := time.Now().AddDate(0, 0, -1).Format(utils.DateLayout)

	action, err := repo.Toggle(ctx, 1, date, "1")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if action != "created" {
		t.Fatalf("first toggle action = %q, want created", action)
	}

	var count int64
	db.Model(&models.Session{}).Count(&count)
	if count != 1 {
		t.Fatalf("sessions after first toggle = %d, want 1", count)
	}

	action, err = repo.Toggle(ctx, 1, date, "1")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if action != "deleted" {
		t.Fatalf("second toggle action = %q, want deleted", action)
	}

	db.Model(&models.Session{}).Count(&count)
	if count != 0 {
		t.Fatalf("sessions after second toggle = %d, want 0", count)
	}
}

func TestSessionToggleRejectsFutureDate(t *testing.T) {
	db := newTestDB(t, &models.Session{})
	repo := NewSessionRepository(db)
	future := time.Now().AddDate(0, 0, 1).Format(utils.DateLayout)

	if _, err := repo.Toggle(context.Background(), 1, future, "1"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("toggle on future date: got %v, want ErrInvalid", err)
	}
}

func TestSessionCreateRejectsSecondSessionSameDay(t *testing.T) {
	db := newTestDB(t, &models.Session{})
	repo := NewSessionRepository(db)
	ctx := context.Background()
	date := time.Now().AddDate(0, 0, -2).Format(utils.DateLayout)

	first := models.Session{PatientID: 7, SessionDate: date, Shift: "1"}
	if err := repo.Create(ctx, &first); err != nil {
		t.Fatalf("first create: %v", err)
	}

	second := models.Session{PatientID: 7, SessionDate: date, Shift: "2"}
	if err := repo.Create(ctx, &second); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate create: got %v, want ErrConflict", err)
	}

	other := models.Session{PatientID: 8, SessionDate: date, Shift: "1"}
	if err := repo.Create(ctx, &other); err != nil {
		t.Fatalf("create for another patient: %v", err)
	}
}

func TestSessionCreateRejectsFutureDate(t *testing.T) {
	db := newTestDB(t, &models.Session{})
	repo := NewSessionRepository(db)
	future := time.Now().AddDate(0, 0, 1).Format(utils.DateLayout)

	session := models.Session{PatientID: 1, SessionDate: future}
	if err := repo.Create(context.Background(), &session); !errors.Is(err, ErrInvalid) {
		t.Fatalf("create on future date: got %v, want ErrInvalid", err)
	}
}
