package reservation

import (
	"errors"
	"time"
)

var ErrInvalidTimeSlot = errors.New("start time must be before end time")

// TimeSlot is a half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	return TimeSlot{
		start: start,
		end:   end,
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) IsZero() bool {
	return ts.start.IsZero() && ts.end.IsZero()
}

// Overlaps uses strict inequalities, so slots that only touch never overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

// Expand widens the slot by the given buffers.
func (ts TimeSlot) Expand(b Buffers) TimeSlot {
	return TimeSlot{
		start: ts.start.Add(-b.before),
		end:   ts.end.Add(b.after),
	}
}

// Buffers pad a reservation before and after. Negative values are stored as zero.
type Buffers struct {
	before time.Duration
	after  time.Duration
}

func NewBuffers(before, after time.Duration) Buffers {
	return Buffers{before: max(before, 0), after: max(after, 0)}
}

// BuffersFromSeconds applies the zero default to absent values.
func BuffersFromSeconds(before, after *int32) Buffers {
	var b, a time.Duration
	if before != nil {
		b = time.Duration(*before) * time.Second
	}
	if after != nil {
		a = time.Duration(*after) * time.Second
	}
	return NewBuffers(b, a)
}

func (b Buffers) Before() time.Duration { return b.before }
func (b Buffers) After() time.Duration  { return b.after }

func (b Buffers) IsZero() bool {
	return b.before == 0 && b.after == 0
}
