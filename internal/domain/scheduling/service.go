package scheduling

import (
	"context"
	"fmt"

	"barberdesk/internal/core/apperror"
	appctx "barberdesk/internal/core/context"
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/tx"
	"barberdesk/internal/core/types"
	"barberdesk/pkg/logger"
)

// Service books and manages appointments.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a scheduling Service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// Create books an appointment. A barber's slot can hold only one
// non-cancelled appointment; a second booking is a conflict.
func (s *Service) Create(ctx context.Context, appt *Appointment) error {
	if err := appt.Validate(ctx); err != nil {
		return err
	}
	appt.CreatedBy = appctx.GetUserID(ctx)

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		taken, err := s.repo.SlotTaken(ctx, appt.BarberID, appt.Date, appt.StartTime)
		if err != nil {
			return err
		}
		if taken {
			return apperror.NewConflict("barber already booked at this time").
				WithDetail("barber_id", appt.BarberID.String()).
				WithDetail("date", appt.Date.String()).
				WithDetail("start_time", appt.StartTime)
		}
		if err := s.repo.Create(ctx, appt); err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "appointment booked",
		"appointment_id", appt.ID.String(),
		"barber_id", appt.BarberID.String(),
		"date", appt.Date.String(),
		"start_time", appt.StartTime,
	)
	return nil
}

// GetByID returns one appointment.
func (s *Service) GetByID(ctx context.Context, apptID id.ID) (*Appointment, error) {
	return s.repo.GetByID(ctx, apptID)
}

// List returns appointments matching the filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Appointment, error) {
	return s.repo.List(ctx, filter)
}

// Today returns today's appointments.
func (s *Service) Today(ctx context.Context) ([]*Appointment, error) {
	today := types.Today()
	return s.repo.List(ctx, ListFilter{Date: &today})
}

// ChangeStatus applies a state-machine transition.
func (s *Service) ChangeStatus(ctx context.Context, apptID id.ID, to Status) (*Appointment, error) {
	var result *Appointment
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		appt, err := s.repo.GetByID(ctx, apptID)
		if err != nil {
			return err
		}
		if err := appt.Transition(to); err != nil {
			return err
		}
		appt.UpdatedBy = appctx.GetUserID(ctx)
		if err := s.repo.Update(ctx, appt); err != nil {
			return fmt.Errorf("update appointment: %w", err)
		}
		result = appt
		return nil
	})
	return result, err
}

// Delete removes an appointment.
func (s *Service) Delete(ctx context.Context, apptID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetByID(ctx, apptID); err != nil {
			return err
		}
		return s.repo.Delete(ctx, apptID)
	})
}
