package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type Slot struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Booked bool   `json:"booked"`
}

// Day is one day-record of an availability snapshot.
type Day struct {
	Date      string `json:"date"`
	IsHoliday bool   `json:"is_holiday"`
	Slots     []Slot `json:"slots"`
}

type Unavailability struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	IsHoliday bool    `json:"is_holiday"`
	Reason    string  `json:"reason"`
}

type UnavailabilityRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	IsHoliday bool   `json:"is_holiday"`
	Reason    string `json:"reason"`
}

type WeeklyHours struct {
	Day       int    `json:"day"` // 0 = Monday, per the backend convention
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsOpen    bool   `json:"is_open"`
}

type BusinessHoursSettings struct {
	WeeklyHours         []WeeklyHours `json:"weekly_hours"`
	SlotDurationMinutes int           `json:"slot_duration_minutes"`
}

type AvailabilityAPI struct {
	client *Client
}

func NewAvailabilityAPI(client *Client) *AvailabilityAPI {
	return &AvailabilityAPI{client: client}
}

// ByDate returns the day-record for a single date, or nil when the backend
// has no availability configured for it.
func (a *AvailabilityAPI) ByDate(ctx context.Context, date string) (*Day, error) {
	var day *Day
	endpoint := "/api/availability?date=" + url.QueryEscape(date)
	if err := a.client.do(ctx, endpoint, requestOptions{}, &day); err != nil {
		return nil, err
	}
	return day, nil
}

// Range returns all day-records overlapping [start, end].
func (a *AvailabilityAPI) Range(ctx context.Context, start, end string) ([]Day, error) {
	var days []Day
	endpoint := fmt.Sprintf("/api/availability/range?start=%s&end=%s",
		url.QueryEscape(start), url.QueryEscape(end))
	if err := a.client.do(ctx, endpoint, requestOptions{}, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (a *AvailabilityAPI) Create(ctx context.Context, day Day, token string) (*Day, error) {
	var created Day
	err := a.client.do(ctx, "/api/availability", requestOptions{method: http.MethodPost, body: day, token: token}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *AvailabilityAPI) BulkCreate(ctx context.Context, days []Day, token string) ([]Day, error) {
	var created []Day
	err := a.client.do(ctx, "/api/availability/bulk", requestOptions{method: http.MethodPost, body: days, token: token}, &created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (a *AvailabilityAPI) Unavailable(ctx context.Context, date string) ([]Unavailability, error) {
	var blocks []Unavailability
	endpoint := "/api/availability/unavailable?date=" + url.QueryEscape(date)
	if err := a.client.do(ctx, endpoint, requestOptions{}, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (a *AvailabilityAPI) UnavailableRange(ctx context.Context, start, end string) ([]Unavailability, error) {
	var blocks []Unavailability
	endpoint := fmt.Sprintf("/api/availability/unavailable/range?start=%s&end=%s",
		url.QueryEscape(start), url.QueryEscape(end))
	if err := a.client.do(ctx, endpoint, requestOptions{}, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (a *AvailabilityAPI) AddUnavailable(ctx context.Context, req UnavailabilityRequest, token string) (*Unavailability, error) {
	var block Unavailability
	err := a.client.do(ctx, "/api/availability/unavailable", requestOptions{method: http.MethodPost, body: req, token: token}, &block)
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (a *AvailabilityAPI) RemoveUnavailable(ctx context.Context, id string, token string) error {
	return a.client.do(ctx, "/api/availability/unavailable/"+id, requestOptions{method: http.MethodDelete, token: token}, nil)
}

func (a *AvailabilityAPI) Settings(ctx context.Context) (*BusinessHoursSettings, error) {
	var settings BusinessHoursSettings
	if err := a.client.do(ctx, "/api/availability/settings", requestOptions{}, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (a *AvailabilityAPI) UpdateSettings(ctx context.Context, settings BusinessHoursSettings, token string) (*BusinessHoursSettings, error) {
	var updated BusinessHoursSettings
	err := a.client.do(ctx, "/api/availability/settings", requestOptions{method: http.MethodPut, body: settings, token: token}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
