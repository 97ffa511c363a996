package moonphase

import (
	"testing"
	"time"
)

func TestInstantsInRange_OneOfEachKindPerMonth(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	instants := InstantsInRange(start, end)

	counts := map[Kind]int{}
	for _, in := range instants {
		counts[in.Kind]++
		if in.Time.Before(start) || !in.Time.Before(end) {
			t.Errorf("instant %v (%v) out of requested range", in.Kind, in.Time)
		}
	}

	for _, kind := range []Kind{KindNewMoon, KindFirstQuarter, KindFullMoon, KindLastQuarter} {
		if counts[kind] == 0 {
			t.Errorf("expected at least one %v in a 31-day window", kind)
		}
	}
}

func TestInstantsInRange_Ordered(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	instants := InstantsInRange(start, end)
	for i := 1; i < len(instants); i++ {
		if !instants[i].Time.After(instants[i-1].Time) {
			t.Errorf("instant %d (%v) not strictly after instant %d (%v)",
				i, instants[i].Time, i-1, instants[i-1].Time)
		}
	}
}
