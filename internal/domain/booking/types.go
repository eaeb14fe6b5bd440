package booking

// ServiceKind distinguishes the two wizard flows.
type ServiceKind string

const (
	// KindScheduled services collect date, time slot and duration.
	KindScheduled ServiceKind = "scheduled"
	// KindReport services (written analyses) skip scheduling entirely.
	KindReport ServiceKind = "report"
)

func (k ServiceKind) String() string {
	return string(k)
}

func (k ServiceKind) IsValid() bool {
	switch k {
	case KindScheduled, KindReport:
		return true
	default:
		return false
	}
}
