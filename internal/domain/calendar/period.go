package calendar

// Period is the half-open day range [Start, End).
type Period struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// NewPeriod builds a period without validating its bounds. Query windows are
// taken as given; stays are validated by the booking aggregate.
func NewPeriod(start, end Date) Period {
	return Period{Start: start, End: end}
}

// IsValid reports whether the period is non-empty, i.e. Start < End.
func (p Period) IsValid() bool {
	return p.Start.Before(p.End)
}

// Overlaps reports whether p and other share at least one day. A period ending on
// the day the other starts does not overlap it.
func (p Period) Overlaps(other Period) bool {
	return p.Start.Before(other.End) && p.End.After(other.Start)
}

// Nights returns End - Start in whole days.
func (p Period) Nights() int {
	return p.Start.DaysUntil(p.End)
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + ")"
}
