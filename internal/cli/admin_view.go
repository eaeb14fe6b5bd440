package cli

import (
	"context"
	"fmt"
	"strings"

	"vedicjivan-booking/internal/api"
)

// runAdmin enters the admin console. The gate re-verifies the stored token on
// entry; a redirect to the login route turns into an interactive login and
// one retry.
func (a *App) runAdmin(ctx context.Context) {
	user, _, err := a.deps.Gate.Require(ctx)
	if err != nil {
		if route := a.deps.Nav.Take(); route != "" {
			if !a.adminLogin(ctx) {
				return
			}
			user, _, err = a.deps.Gate.Require(ctx)
			a.deps.Nav.Take()
		}
		if err != nil {
			fmt.Fprintln(a.out, "admin access denied")
			return
		}
	}

	fmt.Fprintf(a.out, "\nAdmin console (%s)\n", user.Name)
	for {
		line, ok := a.readLine("admin> ")
		if !ok {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "dashboard":
			a.showDashboard(ctx)
		case "stats":
			a.showStats(ctx)
		case "holiday":
			if len(fields) < 2 {
				fmt.Fprintln(a.out, "usage: holiday <YYYY-MM-DD>")
				continue
			}
			if _, err := a.deps.Manager.MarkHoliday(ctx, fields[1]); err != nil {
				fmt.Fprintln(a.out, "failed:", err)
			} else {
				fmt.Fprintln(a.out, fields[1], "marked as holiday")
			}
		case "block":
			a.blockTime(ctx)
		case "blocks":
			if len(fields) < 3 {
				fmt.Fprintln(a.out, "usage: blocks <start> <end>")
				continue
			}
			a.listBlocks(ctx, fields[1], fields[2])
		case "unblock":
			if len(fields) < 2 {
				fmt.Fprintln(a.out, "usage: unblock <id>")
				continue
			}
			if err := a.deps.Manager.Unblock(ctx, fields[1]); err != nil {
				fmt.Fprintln(a.out, "failed:", err)
			}
		case "hours":
			a.editHours(ctx)
		case "logout":
			if err := a.deps.Gate.Logout(ctx); err != nil {
				fmt.Fprintln(a.out, "logout failed:", err)
			}
			a.deps.Nav.Take()
			return
		case "back":
			return
		default:
			fmt.Fprintln(a.out, "commands: dashboard, stats, holiday <date>, block, blocks <start> <end>, unblock <id>, hours, logout, back")
		}
	}
}

func (a *App) adminLogin(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\nAdmin login required.")
	email, ok := a.readLine("email: ")
	if !ok {
		return false
	}
	password, ok := a.readLine("password: ")
	if !ok {
		return false
	}

	pair, err := a.deps.Auth.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		fmt.Fprintln(a.out, "login failed:", err)
		return false
	}
	if err := a.deps.Tokens.SetTokens(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		fmt.Fprintln(a.out, "could not persist session:", err)
		return false
	}
	a.deps.Gate.Invalidate()
	return true
}

func (a *App) showDashboard(ctx context.Context) {
	_, token, err := a.deps.Gate.Require(ctx)
	if err != nil {
		return
	}
	summary, err := a.deps.Admin.Dashboard(ctx, token)
	if err != nil {
		fmt.Fprintln(a.out, "failed:", err)
		return
	}
	fmt.Fprintf(a.out, "today: %d  upcoming: %d  revenue: ₹%d\n",
		summary.TodayBookings, summary.UpcomingBookings, summary.TotalRevenue)
	for _, b := range summary.RecentBookings {
		fmt.Fprintf(a.out, "  %s  %-20s %s %s  %s\n", b.ID, b.ServiceTitle, b.Date, b.TimeSlot, b.Status)
	}
}

func (a *App) showStats(ctx context.Context) {
	_, token, err := a.deps.Gate.Require(ctx)
	if err != nil {
		return
	}
	stats, err := a.deps.Admin.Stats(ctx, token)
	if err != nil {
		fmt.Fprintln(a.out, "failed:", err)
		return
	}
	fmt.Fprintf(a.out, "users: %d  bookings: %d  payments: %d\n",
		stats.TotalUsers, stats.TotalBookings, stats.TotalPayments)
	for _, r := range stats.RevenueByService {
		fmt.Fprintf(a.out, "  %-24s %4d bookings  ₹%d\n", r.Service, r.Bookings, r.Revenue)
	}
}

func (a *App) blockTime(ctx context.Context) {
	date, ok := a.readLine("date [YYYY-MM-DD]: ")
	if !ok {
		return
	}
	start, ok := a.readLine("start [HH:MM]: ")
	if !ok {
		return
	}
	end, ok := a.readLine("end [HH:MM]: ")
	if !ok {
		return
	}
	reason, ok := a.readLine("reason: ")
	if !ok {
		return
	}
	block, err := a.deps.Manager.BlockTime(ctx, date, start, end, reason)
	if err != nil {
		fmt.Fprintln(a.out, "failed:", err)
		return
	}
	fmt.Fprintln(a.out, "blocked, id:", block.ID)
}

func (a *App) listBlocks(ctx context.Context, start, end string) {
	blocks, err := a.deps.Availability.UnavailableRange(ctx, start, end)
	if err != nil {
		fmt.Fprintln(a.out, "failed:", err)
		return
	}
	for _, b := range blocks {
		if b.IsHoliday {
			fmt.Fprintf(a.out, "  %s  %s  holiday\n", b.ID, b.Date)
			continue
		}
		window := ""
		if b.StartTime != nil && b.EndTime != nil {
			window = *b.StartTime + "-" + *b.EndTime
		}
		fmt.Fprintf(a.out, "  %s  %s  %s  %s\n", b.ID, b.Date, window, b.Reason)
	}
}

// editHours rewrites one weekday of the business-hours settings and saves the
// whole document back, matching the settings endpoint's replace semantics.
func (a *App) editHours(ctx context.Context) {
	settings, err := a.deps.Availability.Settings(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "failed to load settings:", err)
		return
	}
	weekdays := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for _, wh := range settings.WeeklyHours {
		name := fmt.Sprintf("day %d", wh.Day)
		if wh.Day >= 0 && wh.Day < len(weekdays) {
			name = weekdays[wh.Day]
		}
		state := "closed"
		if wh.IsOpen {
			state = wh.OpenTime + "-" + wh.CloseTime
		}
		fmt.Fprintf(a.out, "  %s  %s\n", name, state)
	}

	day, ok := a.readInt("day to edit [0 = Mon .. 6 = Sun]: ")
	if !ok || day < 0 || day > 6 {
		return
	}
	open, ok := a.readLine("open time [HH:MM, empty = closed]: ")
	if !ok {
		return
	}

	updated := *settings
	updated.WeeklyHours = append([]api.WeeklyHours(nil), settings.WeeklyHours...)
	for i := range updated.WeeklyHours {
		if updated.WeeklyHours[i].Day != day {
			continue
		}
		if open == "" {
			updated.WeeklyHours[i].IsOpen = false
			break
		}
		closeTime, ok := a.readLine("close time [HH:MM]: ")
		if !ok {
			return
		}
		updated.WeeklyHours[i].IsOpen = true
		updated.WeeklyHours[i].OpenTime = open
		updated.WeeklyHours[i].CloseTime = closeTime
		break
	}

	if _, err := a.deps.Manager.SaveSettings(ctx, updated); err != nil {
		fmt.Fprintln(a.out, "failed to save settings:", err)
		return
	}
	fmt.Fprintln(a.out, "settings saved")
}
