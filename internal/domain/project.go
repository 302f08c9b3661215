package domain

import (
	"fmt"
	"time"
)

type FlatType struct {
	Kind           FlatKind
	UnitsRemaining int
	PriceSGD       int
}

type Project struct {
	ID           string
	Name         string
	ManagerNRIC  string
	Neighborhood string
	FlatTypes    []FlatType
	OpenDate     time.Time
	CloseDate    time.Time
	OfficerSlots int
	Visible      bool
	// Officers holds the NRICs of approved project officers, in approval order.
	Officers  []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the project's fields before persistence.
func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.Neighborhood == "" {
		return fmt.Errorf("neighborhood is required")
	}
	if p.CloseDate.Before(p.OpenDate) {
		return fmt.Errorf("closing date %s is before opening date %s",
			p.CloseDate.Format("2006-01-02"), p.OpenDate.Format("2006-01-02"))
	}
	if p.OfficerSlots < 0 {
		return fmt.Errorf("officer slots must not be negative")
	}
	if len(p.FlatTypes) < 1 || len(p.FlatTypes) > 2 {
		return fmt.Errorf("project must offer 1 or 2 flat types, got %d", len(p.FlatTypes))
	}
	seen := map[FlatKind]bool{}
	for _, ft := range p.FlatTypes {
		if !ValidFlatKinds[string(ft.Kind)] {
			return fmt.Errorf("flat kind %q must be TWO_ROOM or THREE_ROOM", ft.Kind)
		}
		if seen[ft.Kind] {
			return fmt.Errorf("duplicate flat kind %s", ft.Kind)
		}
		seen[ft.Kind] = true
		if ft.UnitsRemaining < 0 {
			return fmt.Errorf("%s units must not be negative", ft.Kind)
		}
		if ft.PriceSGD < 0 {
			return fmt.Errorf("%s price must not be negative", ft.Kind)
		}
	}
	return nil
}

// IsOpenAt reports whether the project accepts applications at t:
// visible and t strictly before the closing date.
func (p *Project) IsOpenAt(t time.Time) bool {
	return p.Visible && t.Before(p.CloseDate)
}

// InApplicationPeriod reports whether t falls within [OpenDate, CloseDate].
func (p *Project) InApplicationPeriod(t time.Time) bool {
	return !t.Before(p.OpenDate) && !t.After(p.CloseDate)
}

// FlatTypeOf returns the project's flat type entry for kind, or nil.
func (p *Project) FlatTypeOf(kind FlatKind) *FlatType {
	for i := range p.FlatTypes {
		if p.FlatTypes[i].Kind == kind {
			return &p.FlatTypes[i]
		}
	}
	return nil
}

// HasOfficer reports whether nric is on the approved officer roster.
func (p *Project) HasOfficer(nric string) bool {
	n := NormalizeNRIC(nric)
	for _, o := range p.Officers {
		if o == n {
			return true
		}
	}
	return false
}

// RangesOverlap reports whether the closed intervals [a1,a2] and [b1,b2]
// intersect: neither entirely precedes the other.
func RangesOverlap(a1, a2, b1, b2 time.Time) bool {
	return !a1.After(b2) && !b1.After(a2)
}

// OverlapsPeriod reports whether the project's application period overlaps
// the other project's.
func (p *Project) OverlapsPeriod(other *Project) bool {
	return RangesOverlap(p.OpenDate, p.CloseDate, other.OpenDate, other.CloseDate)
}
