package api

import "context"

type DashboardSummary struct {
	TodayBookings    int            `json:"today_bookings"`
	UpcomingBookings int            `json:"upcoming_bookings"`
	TotalRevenue     int            `json:"total_revenue"`
	BookingsByStatus map[string]int `json:"bookings_by_status"`
	RecentBookings   []struct {
		ID           string `json:"id"`
		UserName     string `json:"user_name"`
		ServiceTitle string `json:"service_title"`
		Date         string `json:"date"`
		TimeSlot     string `json:"time_slot"`
		Status       string `json:"status"`
		PriceINR     int    `json:"price_inr"`
	} `json:"recent_bookings"`
}

type AdminStats struct {
	TotalUsers       int `json:"total_users"`
	TotalBookings    int `json:"total_bookings"`
	TotalPayments    int `json:"total_payments"`
	RevenueByService []struct {
		Service  string `json:"service"`
		Bookings int    `json:"bookings"`
		Revenue  int    `json:"revenue"`
	} `json:"revenue_by_service"`
}

type AdminAPI struct {
	client *Client
}

func NewAdminAPI(client *Client) *AdminAPI {
	return &AdminAPI{client: client}
}

func (a *AdminAPI) Dashboard(ctx context.Context, token string) (*DashboardSummary, error) {
	var summary DashboardSummary
	if err := a.client.do(ctx, "/api/admin/dashboard", requestOptions{token: token}, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (a *AdminAPI) Stats(ctx context.Context, token string) (*AdminStats, error) {
	var stats AdminStats
	if err := a.client.do(ctx, "/api/admin/stats", requestOptions{token: token}, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
