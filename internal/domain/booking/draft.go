package booking

// Draft is the client-local booking under construction. It lives only in the
// wizard's memory until the review step submits it whole; the pending-booking
// record is the only part that survives the process.
type Draft struct {
	ServiceSlug  string
	ServiceTitle string

	// Scheduling coordinates. Report services carry sentinel values
	// (date = today, slot "00:00", duration 0) instead of user input.
	Date            string
	TimeSlot        string
	DurationMinutes int

	UserName  string
	UserEmail string
	UserPhone string
	Notes     string

	DateOfBirth    string
	BirthTime      BirthTime
	PlaceOfBirth   string
	BirthLatitude  float64
	BirthLongitude float64
}

func NewDraft(service Service) Draft {
	return Draft{
		ServiceSlug:  service.Slug,
		ServiceTitle: service.Title,
		BirthTime:    NewBirthTime(),
	}
}

// DetailsComplete reports whether every required details-step field is
// non-empty. Time of birth is exempt: "unknown" is a valid terminal value.
func (d Draft) DetailsComplete() bool {
	return d.UserName != "" &&
		d.UserEmail != "" &&
		d.UserPhone != "" &&
		d.Notes != "" &&
		d.DateOfBirth != "" &&
		d.PlaceOfBirth != ""
}

func (d Draft) HasDate() bool     { return d.Date != "" }
func (d Draft) HasSlot() bool     { return d.TimeSlot != "" }
func (d Draft) HasDuration() bool { return d.DurationMinutes != 0 }
