package scheduling

import (
	"context"
	"errors"
	"strings"
	"testing"

	"geolumiere/models"
)

func mustBook(t *testing.T, svc *DefaultSchedulingService, slot string) *models.Appointment {
	t.Helper()
	appt, err := svc.CreateAppointment(context.Background(), validRequest(slot))
	if err != nil {
		t.Fatalf("CreateAppointment(%s): %v", slot, err)
	}
	return appt
}

func TestConfirmPendingAppointment(t *testing.T) {
	svc, _, _, mailer := newTestService(mondayAgency())
	ctx := context.Background()
	appt := mustBook(t, svc, "08:00")

	updated, err := svc.UpdateStatus(ctx, appt.ID, "confirmed", "Apportez vos documents fonciers")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.StatusConfirmed {
		t.Errorf("status = %q, want confirmed", updated.Status)
	}
	if updated.AdminNotes != "Apportez vos documents fonciers" {
		t.Errorf("adminNotes = %q", updated.AdminNotes)
	}

	// Booking sends two emails; the confirmation is the third. It goes to the
	// client and carries the date, slot and admin note.
	msgs := waitForMessages(t, mailer, 3)
	var confirmation *strings.Builder
	for _, m := range msgs {
		if strings.Contains(m.Subject, "confirmé") {
			if !contains(m.To, "jean.dossou@example.com") {
				t.Errorf("confirmation recipients = %v", m.To)
			}
			confirmation = &strings.Builder{}
			confirmation.WriteString(m.HTML)
		}
	}
	if confirmation == nil {
		t.Fatal("no confirmation email sent")
	}
	body := confirmation.String()
	for _, want := range []string{"lundi 2 mars 2026", "08:00", "Apportez vos documents fonciers", "Bornage de terrain"} {
		if !strings.Contains(body, want) {
			t.Errorf("confirmation body missing %q", want)
		}
	}
}

func TestCancelConfirmedAppointment(t *testing.T) {
	svc, _, _, mailer := newTestService(mondayAgency())
	ctx := context.Background()
	appt := mustBook(t, svc, "08:00")

	if _, err := svc.UpdateStatus(ctx, appt.ID, "confirmed", ""); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	updated, err := svc.UpdateStatus(ctx, appt.ID, "cancelled", "Agence fermée ce jour-là")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if updated.Status != models.StatusCancelled {
		t.Errorf("status = %q, want cancelled", updated.Status)
	}

	msgs := waitForMessages(t, mailer, 4)
	found := false
	for _, m := range msgs {
		if strings.Contains(m.Subject, "annulé") {
			found = true
			if !strings.Contains(m.HTML, "Agence fermée ce jour-là") {
				t.Errorf("cancellation body missing the reason: %q", m.HTML)
			}
		}
	}
	if !found {
		t.Error("no cancellation email sent")
	}
}

func TestConfirmTwiceRejected(t *testing.T) {
	svc, appts, _, _ := newTestService(mondayAgency())
	ctx := context.Background()
	appt := mustBook(t, svc, "08:00")

	if _, err := svc.UpdateStatus(ctx, appt.ID, "confirmed", ""); err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	_, err := svc.UpdateStatus(ctx, appt.ID, "confirmed", "")
	var ise *InvalidStatusError
	if !errors.As(err, &ise) {
		t.Fatalf("err = %v, want InvalidStatusError", err)
	}
	if ise.Current != models.StatusConfirmed || ise.Requested != models.StatusConfirmed {
		t.Errorf("InvalidStatusError = %+v", ise)
	}

	stored, err := appts.GetByID(ctx, appt.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Status != models.StatusConfirmed {
		t.Errorf("stored status = %q, record must be unchanged", stored.Status)
	}
}

func TestConfirmCancelledAppointmentRejected(t *testing.T) {
	svc, _, _, _ := newTestService(mondayAgency())
	ctx := context.Background()
	appt := mustBook(t, svc, "08:00")

	if _, err := svc.UpdateStatus(ctx, appt.ID, "cancelled", ""); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	_, err := svc.UpdateStatus(ctx, appt.ID, "confirmed", "")
	var ise *InvalidStatusError
	if !errors.As(err, &ise) {
		t.Fatalf("err = %v, want InvalidStatusError", err)
	}
	if ise.Current != models.StatusCancelled {
		t.Errorf("InvalidStatusError.Current = %q, want cancelled", ise.Current)
	}
}

func TestUpdateStatusInvalidTarget(t *testing.T) {
	svc, _, _, _ := newTestService(mondayAgency())
	appt := mustBook(t, svc, "08:00")

	for _, target := range []string{"pending", "done", ""} {
		_, err := svc.UpdateStatus(context.Background(), appt.ID, target, "")
		var ise *InvalidStatusError
		if !errors.As(err, &ise) {
			t.Fatalf("target %q: err = %v, want InvalidStatusError", target, err)
		}
	}
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	svc, _, _, _ := newTestService(mondayAgency())

	_, err := svc.UpdateStatus(context.Background(), "missing", "confirmed", "")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestDeleteAppointment(t *testing.T) {
	svc, appts, _, _ := newTestService(mondayAgency())
	ctx := context.Background()
	appt := mustBook(t, svc, "08:00")

	if err := svc.DeleteAppointment(ctx, appt.ID); err != nil {
		t.Fatalf("DeleteAppointment: %v", err)
	}
	if _, err := appts.GetByID(ctx, appt.ID); err == nil {
		t.Error("appointment still present after delete")
	}

	// Deleting again is a NotFoundError.
	err := svc.DeleteAppointment(ctx, appt.ID)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}

	// The slot is bookable again.
	if _, err := svc.CreateAppointment(ctx, validRequest("08:00")); err != nil {
		t.Fatalf("rebooking after delete: %v", err)
	}
}

func TestListAppointmentsFilters(t *testing.T) {
	svc, _, _, _ := newTestService(mondayAgency())
	ctx := context.Background()

	first := mustBook(t, svc, "08:00")
	mustBook(t, svc, "09:00")
	if _, err := svc.UpdateStatus(ctx, first.ID, "confirmed", ""); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	all, err := svc.ListAppointments(ctx, "all", "")
	if err != nil {
		t.Fatalf("ListAppointments(all): %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(all) = %d, want 2", len(all))
	}
	// Sorted by date then slot.
	if all[0].TimeSlot != "08:00" || all[1].TimeSlot != "09:00" {
		t.Errorf("order = %s, %s", all[0].TimeSlot, all[1].TimeSlot)
	}

	confirmed, err := svc.ListAppointments(ctx, "confirmed", "")
	if err != nil {
		t.Fatalf("ListAppointments(confirmed): %v", err)
	}
	if len(confirmed) != 1 || confirmed[0].ID != first.ID {
		t.Errorf("confirmed = %+v", confirmed)
	}

	march, err := svc.ListAppointments(ctx, "", "2026-03")
	if err != nil {
		t.Fatalf("ListAppointments(2026-03): %v", err)
	}
	if len(march) != 2 {
		t.Errorf("len(march) = %d, want 2", len(march))
	}
	april, err := svc.ListAppointments(ctx, "", "2026-04")
	if err != nil {
		t.Fatalf("ListAppointments(2026-04): %v", err)
	}
	if len(april) != 0 {
		t.Errorf("len(april) = %d, want 0", len(april))
	}

	if _, err := svc.ListAppointments(ctx, "bogus", ""); err == nil {
		t.Error("unknown status accepted")
	}
	if _, err := svc.ListAppointments(ctx, "", "mars-2026"); err == nil {
		t.Error("malformed month accepted")
	}
}
