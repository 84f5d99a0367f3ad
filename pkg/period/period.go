package period

import (
	"fmt"
	"time"

	"github.com/ib-77/mop/pkg/mop"
	"github.com/ib-77/mop/pkg/mop/guard"
)

// Period is an immutable half-open time range [Start, End). The zero value
// is the empty period.
type Period struct {
	start time.Time
	end   time.Time
}

// New builds a period from two instants. Both must be non-zero and end must
// not precede start.
func New(start, end time.Time) Period {
	guard.NotZeroTime(start, "start")
	guard.NotZeroTime(end, "end")
	guard.That(!end.Before(start), "end must not be before start")

	return Period{start: start, end: end}
}

// FromDuration builds a period covering d from start. The duration must not
// be negative.
func FromDuration(start time.Time, d time.Duration) Period {
	guard.NotZeroTime(start, "start")
	guard.NonNegative(d, "d")

	return Period{start: start, end: start.Add(d)}
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

func (p Period) IsZero() bool {
	return p.start.IsZero() && p.end.IsZero()
}

// Contains reports whether t falls inside the range; the end instant is
// excluded.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.start) && t.Before(p.end)
}

// Overlaps reports whether the two ranges share any instant. Touching
// periods do not overlap.
func (p Period) Overlaps(q Period) bool {
	return p.start.Before(q.end) && q.start.Before(p.end)
}

// Intersect returns the shared range of the two periods. Disjoint periods
// have no intersection, which is absence rather than an error.
func (p Period) Intersect(q Period) mop.Maybe[Period] {
	if !p.Overlaps(q) {
		return mop.None[Period]()
	}

	start := p.start
	if q.start.After(start) {
		start = q.start
	}
	end := p.end
	if q.end.Before(end) {
		end = q.end
	}

	return mop.Some(Period{start: start, end: end})
}

func (p Period) String() string {
	return fmt.Sprintf("%s..%s", p.start.Format(time.RFC3339), p.end.Format(time.RFC3339))
}
