package scheduling

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestAvailableSlotsFullTemplate(t *testing.T) {
	svc, _, _, _ := newTestService(mondayAgency())

	slots, err := svc.AvailableSlots(context.Background(), "agency-1", thatMonday)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	want := []string{"08:00", "09:00", "10:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("slots = %v, want %v", slots, want)
	}
}

func TestAvailableSlotsUnknownAgency(t *testing.T) {
	svc, _, _, _ := newTestService(mondayAgency())

	_, err := svc.AvailableSlots(context.Background(), "nope", thatMonday)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if nf.ID != "nope" {
		t.Errorf("NotFoundError.ID = %q, want %q", nf.ID, "nope")
	}
}

func TestAvailableSlotsClosedDay(t *testing.T) {
	svc, _, _, _ := newTestService(mondayAgency())

	// mercredi is closed even though its entry lists a slot.
	wednesday := thatMonday.AddDate(0, 0, 2)
	slots, err := svc.AvailableSlots(context.Background(), "agency-1", wednesday)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if slots == nil || len(slots) != 0 {
		t.Fatalf("slots = %#v, want empty non-nil slice", slots)
	}
}

func TestAvailableSlotsOpenDayWithoutSlots(t *testing.T) {
	svc, _, _, _ := newTestService(mondayAgency())

	// jeudi is open but offers no slots.
	thursday := thatMonday.AddDate(0, 0, 3)
	slots, err := svc.AvailableSlots(context.Background(), "agency-1", thursday)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("slots = %v, want empty", slots)
	}
}

func TestAvailableSlotsBlockedDate(t *testing.T) {
	svc, _, _, _ := newTestService(mondayAgency())
	ctx := context.Background()

	if _, err := svc.BlockDate(ctx, thatMonday, "Jour férié"); err != nil {
		t.Fatalf("BlockDate: %v", err)
	}

	slots, err := svc.AvailableSlots(ctx, "agency-1", thatMonday)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("slots on blocked day = %v, want empty", slots)
	}
}

func TestAvailableSlotsExcludesActiveAppointments(t *testing.T) {
	svc, _, _, _ := newTestService(mondayAgency())
	ctx := context.Background()

	appt, err := svc.CreateAppointment(ctx, validRequest("09:00"))
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	slots, err := svc.AvailableSlots(ctx, "agency-1", thatMonday)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	want := []string{"08:00", "10:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("slots after booking = %v, want %v", slots, want)
	}

	// Cancelling releases the slot, preserving template order.
	if _, err := svc.UpdateStatus(ctx, appt.ID, "cancelled", ""); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	slots, err = svc.AvailableSlots(ctx, "agency-1", thatMonday)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	want = []string{"08:00", "09:00", "10:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("slots after cancellation = %v, want %v", slots, want)
	}
}

func TestAvailableSlotsNormalizesTimeOfDay(t *testing.T) {
	svc, _, _, _ := newTestService(mondayAgency())
	ctx := context.Background()

	req := validRequest("08:00")
	req.Date = time.Date(2026, 3, 2, 16, 45, 0, 0, time.UTC)
	if _, err := svc.CreateAppointment(ctx, req); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	// A midnight query for the same calendar day must see the slot taken.
	slots, err := svc.AvailableSlots(ctx, "agency-1", thatMonday)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	want := []string{"09:00", "10:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("slots = %v, want %v", slots, want)
	}
}
