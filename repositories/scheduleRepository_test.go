package repositories

import (
	"context"
	"errors"
	"testing"

	"NileDialysis/models"
)

func TestCreateBookingConflicts(t *testing.T) {
	db := newTestDB(t, &models.SessionSchedule{})
	repo := NewScheduleRepository(db)
	ctx := context.Background()

	booking := models.SessionSchedule{PatientID: 1, MachineID: 1, ScheduleDate: "2025-09-01", Shift: "1"}
	if err := repo.CreateBooking(ctx, &booking); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	sameSlot := models.SessionSchedule{PatientID: 2, MachineID: 1, ScheduleDate: "2025-09-01", Shift: "1"}
	if err := repo.CreateBooking(ctx, &sameSlot); !errors.Is(err, ErrConflict) {
		t.Fatalf("taken machine slot: got %v, want ErrConflict", err)
	}

	samePatient := models.SessionSchedule{PatientID: 1, MachineID: 2, ScheduleDate: "2025-09-01", Shift: "2"}
	if err := repo.CreateBooking(ctx, &samePatient); !errors.Is(err, ErrConflict) {
		t.Fatalf("patient booked twice on one date: got %v, want ErrConflict", err)
	}

	nextDay := models.SessionSchedule{PatientID: 1, MachineID: 1, ScheduleDate: "2025-09-02", Shift: "1"}
	if err := repo.CreateBooking(ctx, &nextDay); err != nil {
		t.Fatalf("booking on another date: %v", err)
	}
}
