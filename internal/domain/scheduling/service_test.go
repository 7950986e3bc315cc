package scheduling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
)

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memAppointmentRepo struct {
	appts map[id.ID]*Appointment
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{appts: make(map[id.ID]*Appointment)}
}

func (r *memAppointmentRepo) Create(ctx context.Context, a *Appointment) error {
	cp := *a
	r.appts[a.ID] = &cp
	return nil
}

func (r *memAppointmentRepo) GetByID(ctx context.Context, apptID id.ID) (*Appointment, error) {
	if a, ok := r.appts[apptID]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, apperror.NewNotFound("appointment", apptID.String())
}

func (r *memAppointmentRepo) Update(ctx context.Context, a *Appointment) error {
	if _, ok := r.appts[a.ID]; !ok {
		return apperror.NewNotFound("appointment", a.ID.String())
	}
	cp := *a
	r.appts[a.ID] = &cp
	return nil
}

func (r *memAppointmentRepo) Delete(ctx context.Context, apptID id.ID) error {
	delete(r.appts, apptID)
	return nil
}

func (r *memAppointmentRepo) List(ctx context.Context, filter ListFilter) ([]*Appointment, error) {
	var out []*Appointment
	for _, a := range r.appts {
		if filter.Date != nil && !a.Date.Equal(*filter.Date) {
			continue
		}
		if filter.BarberID != nil && a.BarberID != *filter.BarberID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memAppointmentRepo) SlotTaken(ctx context.Context, barberID id.ID, date types.Date, startTime string) (bool, error) {
	for _, a := range r.appts {
		if a.BarberID == barberID && a.Date.Equal(date) && a.StartTime == startTime && a.Status != StatusCancelled {
			return true, nil
		}
	}
	return false, nil
}

func newTestAppointment() *Appointment {
	return NewAppointment(id.New(), id.New(), id.New(), types.MustDate("2026-09-02"), "14:30")
}

func TestCreateRejectsDoubleBooking(t *testing.T) {
	repo := newMemAppointmentRepo()
	svc := NewService(repo, passthroughTx{})

	first := newTestAppointment()
	require.NoError(t, svc.Create(context.Background(), first))

	second := NewAppointment(id.New(), first.BarberID, id.New(), first.Date, first.StartTime)
	err := svc.Create(context.Background(), second)
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))

	// A different slot for the same barber is fine.
	third := NewAppointment(id.New(), first.BarberID, id.New(), first.Date, "15:30")
	require.NoError(t, svc.Create(context.Background(), third))
}

func TestCreateAllowsRebookingCancelledSlot(t *testing.T) {
	repo := newMemAppointmentRepo()
	svc := NewService(repo, passthroughTx{})

	first := newTestAppointment()
	require.NoError(t, svc.Create(context.Background(), first))
	_, err := svc.ChangeStatus(context.Background(), first.ID, StatusCancelled)
	require.NoError(t, err)

	second := NewAppointment(id.New(), first.BarberID, id.New(), first.Date, first.StartTime)
	require.NoError(t, svc.Create(context.Background(), second))
}

func TestStatusStateMachine(t *testing.T) {
	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusScheduled, StatusInProgress, true},
		{StatusScheduled, StatusCompleted, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCancelled, true},
		{StatusCompleted, StatusScheduled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusScheduled, false},
		{StatusInProgress, StatusScheduled, false},
	}

	for _, tt := range tests {
		got := CanTransition(tt.from, tt.to)
		assert.Equal(t, tt.ok, got, "%s -> %s", tt.from, tt.to)
	}
}

func TestChangeStatusPersistsTransition(t *testing.T) {
	repo := newMemAppointmentRepo()
	svc := NewService(repo, passthroughTx{})

	appt := newTestAppointment()
	require.NoError(t, svc.Create(context.Background(), appt))

	updated, err := svc.ChangeStatus(context.Background(), appt.ID, StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, updated.Status)

	_, err = svc.ChangeStatus(context.Background(), appt.ID, StatusScheduled)
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}

func TestAppointmentValidate(t *testing.T) {
	appt := newTestAppointment()
	require.NoError(t, appt.Validate(context.Background()))

	appt.StartTime = "25:99"
	require.Error(t, appt.Validate(context.Background()))
}
