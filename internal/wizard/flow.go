package wizard

import "vedicjivan-booking/internal/domain/booking"

type Step string

const (
	StepDate      Step = "date"
	StepTime      Step = "time"
	StepDuration  Step = "duration"
	StepDetails   Step = "details"
	StepReview    Step = "review"
	StepPayment   Step = "payment"
	StepConfirmed Step = "confirmed"
)

// Flow is an explicit step table per service kind. The two variants are the
// whole universe: scheduled services collect scheduling coordinates, report
// services jump straight to details and carry sentinel values instead.
type Flow struct {
	kind  booking.ServiceKind
	steps []Step
}

var (
	scheduledFlow = Flow{
		kind: booking.KindScheduled,
		steps: []Step{
			StepDate, StepTime, StepDuration,
			StepDetails, StepReview, StepPayment, StepConfirmed,
		},
	}
	reportFlow = Flow{
		kind:  booking.KindReport,
		steps: []Step{StepDetails, StepReview, StepPayment, StepConfirmed},
	}
)

func FlowFor(serviceSlug string) Flow {
	if booking.KindOf(serviceSlug) == booking.KindReport {
		return reportFlow
	}
	return scheduledFlow
}

func (f Flow) Kind() booking.ServiceKind { return f.kind }

// Steps returns the visible step list (confirmed is terminal, not a
// navigable step, but is included for indexing).
func (f Flow) Steps() []Step {
	return append([]Step(nil), f.steps...)
}

func (f Flow) Index(s Step) int {
	for i, step := range f.steps {
		if step == s {
			return i
		}
	}
	return -1
}

func (f Flow) Contains(s Step) bool {
	return f.Index(s) >= 0
}

// Label is the step-indicator text; report flows use the longer details
// heading since it is their entry point.
func (f Flow) Label(s Step) string {
	switch s {
	case StepDate:
		return "Date"
	case StepTime:
		return "Time"
	case StepDuration:
		return "Duration"
	case StepDetails:
		if f.kind == booking.KindReport {
			return "Your Details"
		}
		return "Details"
	case StepReview:
		return "Review"
	case StepPayment:
		return "Payment"
	case StepConfirmed:
		return "Confirmed"
	default:
		return string(s)
	}
}
