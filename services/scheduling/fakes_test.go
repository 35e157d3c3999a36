package scheduling

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	appointmentRepo "geolumiere/database/repository/appointment"
	blockedRepo "geolumiere/database/repository/blockeddate"
	"geolumiere/models"
	"geolumiere/services/notification"
)

type fakeAgencyRepo struct {
	mu       sync.Mutex
	agencies map[string]models.Agency
}

func newFakeAgencyRepo(agencies ...models.Agency) *fakeAgencyRepo {
	r := &fakeAgencyRepo{agencies: make(map[string]models.Agency)}
	for _, a := range agencies {
		r.agencies[a.ID] = a
	}
	return r
}

func (r *fakeAgencyRepo) Create(_ context.Context, agency *models.Agency) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if agency.ID == "" {
		agency.ID = uuid.New().String()
	}
	r.agencies[agency.ID] = *agency
	return nil
}

func (r *fakeAgencyRepo) Update(_ context.Context, agency *models.Agency) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.agencies[agency.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.agencies[agency.ID] = *agency
	return nil
}

func (r *fakeAgencyRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.agencies[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.agencies, id)
	return nil
}

func (r *fakeAgencyRepo) GetByID(_ context.Context, id string) (*models.Agency, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.agencies[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copy := a
	return &copy, nil
}

func (r *fakeAgencyRepo) GetAll(_ context.Context, activeOnly bool) ([]models.Agency, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Agency
	for _, a := range r.agencies {
		if !activeOnly || a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAgencyRepo) EnsureIndexes() error { return nil }

// fakeAppointmentRepo mirrors the store's behavior, including the partial
// unique index: Insert fails with ErrSlotTaken when a non-cancelled
// appointment already holds the same (agencyId, day, timeSlot).
type fakeAppointmentRepo struct {
	mu    sync.Mutex
	appts map[string]models.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: make(map[string]models.Appointment)}
}

func (r *fakeAppointmentRepo) Insert(_ context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.appts {
		if existing.AgencyID == appt.AgencyID &&
			existing.Day == appt.Day &&
			existing.TimeSlot == appt.TimeSlot &&
			existing.Status != models.StatusCancelled {
			return appointmentRepo.ErrSlotTaken
		}
	}
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	appt.CreatedAt = time.Now().UTC()
	appt.UpdatedAt = appt.CreatedAt
	r.appts[appt.ID] = *appt
	return nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copy := a
	return &copy, nil
}

func (r *fakeAppointmentRepo) TakenSlots(_ context.Context, agencyID, day string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var taken []string
	for _, a := range r.appts {
		if a.AgencyID == agencyID && a.Day == day && a.Status != models.StatusCancelled {
			taken = append(taken, a.TimeSlot)
		}
	}
	return taken, nil
}

func (r *fakeAppointmentRepo) List(_ context.Context, filter appointmentRepo.ListFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.MonthFrom != "" && (a.Day < filter.MonthFrom || a.Day > filter.MonthTo) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].TimeSlot < out[j].TimeSlot
	})
	return out, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(_ context.Context, id string, fromStatuses []string, toStatus, adminNotes string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	matched := false
	for _, from := range fromStatuses {
		if a.Status == from {
			matched = true
			break
		}
	}
	if !matched {
		return nil, mongo.ErrNoDocuments
	}
	a.Status = toStatus
	if adminNotes != "" {
		a.AdminNotes = adminNotes
	}
	a.UpdatedAt = time.Now().UTC()
	r.appts[id] = a
	copy := a
	return &copy, nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appts[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.appts, id)
	return nil
}

func (r *fakeAppointmentRepo) EnsureIndexes() error { return nil }

type fakeBlockedDateRepo struct {
	mu   sync.Mutex
	byID map[string]models.BlockedDate
}

func newFakeBlockedDateRepo() *fakeBlockedDateRepo {
	return &fakeBlockedDateRepo{byID: make(map[string]models.BlockedDate)}
}

func (r *fakeBlockedDateRepo) Insert(_ context.Context, blocked *models.BlockedDate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.byID {
		if b.Day == blocked.Day {
			return blockedRepo.ErrDuplicateDay
		}
	}
	if blocked.ID == "" {
		blocked.ID = uuid.New().String()
	}
	blocked.CreatedAt = time.Now().UTC()
	r.byID[blocked.ID] = *blocked
	return nil
}

func (r *fakeBlockedDateRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeBlockedDateRepo) IsBlocked(_ context.Context, day string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.byID {
		if b.Day == day {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBlockedDateRepo) List(_ context.Context) ([]models.BlockedDate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.BlockedDate
	for _, b := range r.byID {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}

func (r *fakeBlockedDateRepo) EnsureIndexes() error { return nil }

type fakeContactInfoRepo struct {
	mu   sync.Mutex
	info *models.ContactInfo
}

func (r *fakeContactInfoRepo) Get(_ context.Context) (*models.ContactInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.info == nil {
		return nil, mongo.ErrNoDocuments
	}
	copy := *r.info
	return &copy, nil
}

func (r *fakeContactInfoRepo) Upsert(_ context.Context, info *models.ContactInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *info
	r.info = &copy
	return nil
}

type recordingMailer struct {
	mu   sync.Mutex
	msgs []notification.Message
}

func (m *recordingMailer) Send(msg notification.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, msg)
	return nil
}

func (m *recordingMailer) messages() []notification.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]notification.Message, len(m.msgs))
	copy(out, m.msgs)
	return out
}

// waitForMessages polls until the mailer has recorded at least n messages.
// Emails are dispatched on detached goroutines, so tests have to wait.
func waitForMessages(t *testing.T, m *recordingMailer, n int) []notification.Message {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if msgs := m.messages(); len(msgs) >= n {
			return msgs
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected at least %d notification messages, got %d", n, len(m.messages()))
	return nil
}

// newTestService wires a scheduling service onto fresh in-memory fakes.
func newTestService(agencies ...models.Agency) (*DefaultSchedulingService, *fakeAppointmentRepo, *fakeBlockedDateRepo, *recordingMailer) {
	appts := newFakeAppointmentRepo()
	blocked := newFakeBlockedDateRepo()
	mailer := &recordingMailer{}
	svc := &DefaultSchedulingService{
		Agencies:      newFakeAgencyRepo(agencies...),
		Appointments:  appts,
		BlockedDates:  blocked,
		ContactInfo:   &fakeContactInfoRepo{},
		Mailer:        mailer,
		AdminBaseURL:  "http://localhost:3000",
		FallbackEmail: "contact@geolumiere.bj",
	}
	return svc, appts, blocked, mailer
}

func mondayAgency() models.Agency {
	return models.Agency{
		ID:       "agency-1",
		Name:     "Siège Social - Godomey",
		Emails:   []string{"godomey@geolumiere.bj"},
		IsActive: true,
		Schedule: []models.ScheduleDay{
			{Day: "lundi", IsOpen: true, Slots: []string{"08:00", "09:00", "10:00"}},
			{Day: "mardi", IsOpen: true, Slots: []string{"14:00", "15:00"}},
			{Day: "mercredi", IsOpen: false, Slots: []string{"08:00"}},
			{Day: "jeudi", IsOpen: true, Slots: nil},
			{Day: "vendredi", IsOpen: true, Slots: []string{"08:00"}},
			{Day: "samedi", IsOpen: false},
			{Day: "dimanche", IsOpen: false},
		},
	}
}

// thatMonday is 2026-03-02, a Monday.
var thatMonday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
