package admin

import (
	"context"

	"vedicjivan-booking/internal/api"
)

// AvailabilityWritePort is the authenticated slice of the availability API
// the admin console mutates.
type AvailabilityWritePort interface {
	AddUnavailable(ctx context.Context, req api.UnavailabilityRequest, token string) (*api.Unavailability, error)
	RemoveUnavailable(ctx context.Context, id string, token string) error
	UpdateSettings(ctx context.Context, settings api.BusinessHoursSettings, token string) (*api.BusinessHoursSettings, error)
	Create(ctx context.Context, day api.Day, token string) (*api.Day, error)
	BulkCreate(ctx context.Context, days []api.Day, token string) ([]api.Day, error)
}

// AvailabilityManager runs the admin-side availability mutations. Every write
// passes the gate first: an unauthenticated caller is redirected to login and
// the endpoint is never contacted.
type AvailabilityManager struct {
	gate *Gate
	port AvailabilityWritePort
}

func NewAvailabilityManager(gate *Gate, port AvailabilityWritePort) *AvailabilityManager {
	return &AvailabilityManager{gate: gate, port: port}
}

// BlockTime marks a time window on a date as unavailable.
func (m *AvailabilityManager) BlockTime(ctx context.Context, date, startTime, endTime, reason string) (*api.Unavailability, error) {
	_, token, err := m.gate.Require(ctx)
	if err != nil {
		return nil, err
	}
	return m.port.AddUnavailable(ctx, api.UnavailabilityRequest{
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Reason:    reason,
	}, token)
}

// MarkHoliday blocks a whole date. The backend derives the window from the
// holiday flag, so no times and no reason are sent.
func (m *AvailabilityManager) MarkHoliday(ctx context.Context, date string) (*api.Unavailability, error) {
	_, token, err := m.gate.Require(ctx)
	if err != nil {
		return nil, err
	}
	return m.port.AddUnavailable(ctx, api.UnavailabilityRequest{
		Date:      date,
		IsHoliday: true,
	}, token)
}

// Unblock removes an unavailability block by id.
func (m *AvailabilityManager) Unblock(ctx context.Context, id string) error {
	_, token, err := m.gate.Require(ctx)
	if err != nil {
		return err
	}
	return m.port.RemoveUnavailable(ctx, id, token)
}

// SaveSettings replaces the weekly business-hours configuration.
func (m *AvailabilityManager) SaveSettings(ctx context.Context, settings api.BusinessHoursSettings) (*api.BusinessHoursSettings, error) {
	_, token, err := m.gate.Require(ctx)
	if err != nil {
		return nil, err
	}
	return m.port.UpdateSettings(ctx, settings, token)
}

// PublishDay creates a single day's slot sheet.
func (m *AvailabilityManager) PublishDay(ctx context.Context, day api.Day) (*api.Day, error) {
	_, token, err := m.gate.Require(ctx)
	if err != nil {
		return nil, err
	}
	return m.port.Create(ctx, day, token)
}

// PublishDays creates slot sheets for many days in one call.
func (m *AvailabilityManager) PublishDays(ctx context.Context, days []api.Day) ([]api.Day, error) {
	_, token, err := m.gate.Require(ctx)
	if err != nil {
		return nil, err
	}
	return m.port.BulkCreate(ctx, days, token)
}
