package booking

// Service identifies a purchasable item.
type Service struct {
	Slug     string
	Title    string
	PriceINR int
	Kind     ServiceKind
}

// Report services don't need scheduling.
var reportServices = map[string]struct{}{
	"premium-kundli":    {},
	"numerology-report": {},
	"matchmaking":       {},
}

// catalog is the purchasable lineup, in display order.
var catalog = []Service{
	{Slug: "call-consultation", Title: "Call Consultation", PriceINR: 1999, Kind: KindScheduled},
	{Slug: "video-consultation", Title: "Video Consultation", PriceINR: 2999, Kind: KindScheduled},
	{Slug: "premium-kundli", Title: "Premium Kundli Report", PriceINR: 4999, Kind: KindReport},
	{Slug: "numerology-report", Title: "Numerology Report", PriceINR: 1499, Kind: KindReport},
	{Slug: "vastu-consultation", Title: "Vastu Consultation", PriceINR: 3499, Kind: KindScheduled},
	{Slug: "matchmaking", Title: "Kundli Matching", PriceINR: 2499, Kind: KindReport},
}

func Catalog() []Service {
	return append([]Service(nil), catalog...)
}

// BySlug returns the catalog entry for slug, or false when unknown.
func BySlug(slug string) (Service, bool) {
	for _, s := range catalog {
		if s.Slug == slug {
			return s, true
		}
	}
	return Service{}, false
}

func KindOf(slug string) ServiceKind {
	if _, ok := reportServices[slug]; ok {
		return KindReport
	}
	return KindScheduled
}

type DurationOption struct {
	Label   string
	Minutes int
}

var defaultDurations = []DurationOption{
	{Label: "30 minutes", Minutes: 30},
	{Label: "45 minutes", Minutes: 45},
	{Label: "60 minutes", Minutes: 60},
}

var durationOptions = map[string][]DurationOption{
	"call-consultation":        defaultDurations,
	"video-consultation":       defaultDurations,
	"vastu-consultation":       defaultDurations,
	"astrological-consulting":  defaultDurations,
	"personal-growth-coaching": defaultDurations,
	"therapeutic-healing": {
		{Label: "45 minutes", Minutes: 45},
		{Label: "60 minutes", Minutes: 60},
		{Label: "75 minutes", Minutes: 75},
	},
}

// DurationsFor returns the selectable durations for a scheduled service;
// report services have none.
func DurationsFor(slug string) []DurationOption {
	return durationOptions[slug]
}
