package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBlockDate(t *testing.T) {
	svc, _, _, _ := newTestService(mondayAgency())
	ctx := context.Background()

	blocked, err := svc.BlockDate(ctx, thatMonday, "Jour férié")
	if err != nil {
		t.Fatalf("BlockDate: %v", err)
	}
	if blocked.ID == "" {
		t.Error("blocked date ID not assigned")
	}
	if blocked.Day != "2026-03-02" {
		t.Errorf("day = %q, want 2026-03-02", blocked.Day)
	}

	list, err := svc.ListBlockedDates(ctx)
	if err != nil {
		t.Fatalf("ListBlockedDates: %v", err)
	}
	if len(list) != 1 || list[0].Reason != "Jour férié" {
		t.Errorf("list = %+v", list)
	}
}

func TestBlockDateZeroDate(t *testing.T) {
	svc, _, _, _ := newTestService(mondayAgency())

	_, err := svc.BlockDate(context.Background(), time.Time{}, "")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestBlockDateTwiceConflicts(t *testing.T) {
	svc, _, _, _ := newTestService(mondayAgency())
	ctx := context.Background()

	if _, err := svc.BlockDate(ctx, thatMonday, ""); err != nil {
		t.Fatalf("first block: %v", err)
	}

	// Same calendar day with a different time-of-day still collides.
	later := thatMonday.Add(14 * time.Hour)
	_, err := svc.BlockDate(ctx, later, "")
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want ConflictError", err)
	}
	if conflict.Message != "Cette date est déjà bloquée" {
		t.Errorf("conflict message = %q", conflict.Message)
	}
}

func TestUnblockDate(t *testing.T) {
	svc, _, _, _ := newTestService(mondayAgency())
	ctx := context.Background()

	blocked, err := svc.BlockDate(ctx, thatMonday, "")
	if err != nil {
		t.Fatalf("BlockDate: %v", err)
	}
	if err := svc.UnblockDate(ctx, blocked.ID); err != nil {
		t.Fatalf("UnblockDate: %v", err)
	}

	// Unblocking restores availability immediately.
	slots, err := svc.AvailableSlots(ctx, "agency-1", thatMonday)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(slots) != 3 {
		t.Errorf("slots after unblock = %v, want full template", slots)
	}

	err = svc.UnblockDate(ctx, blocked.ID)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}
