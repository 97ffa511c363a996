package sun

import (
	"testing"
	"time"
)

func TestEventTime_AllKindsOrdered(t *testing.T) {
	date := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)
	const lat, lon = 33.4484, -112.0740

	var times []time.Time
	for _, kind := range AllKinds {
		tm, ok := EventTime(lat, lon, 0, date, kind)
		if !ok {
			t.Fatalf("kind %v: expected an event at mid-latitude in June", kind)
		}
		times = append(times, tm)
	}

	for i := 1; i < len(times); i++ {
		if !times[i].After(times[i-1]) {
			t.Errorf("event %d (%v) should be after event %d (%v)", i, times[i], i-1, times[i-1])
		}
	}
}

func TestEventTime_PolarNight(t *testing.T) {
	date := time.Date(2025, time.December, 21, 0, 0, 0, 0, time.UTC)
	const lat, lon = 78.0, 15.0 // Svalbard, deep in polar night at winter solstice

	_, ok := EventTime(lat, lon, 0, date, KindSunrise)
	if ok {
		t.Error("expected no sunrise at Svalbard on the winter solstice")
	}
}

func TestEventTime_PolarDay(t *testing.T) {
	date := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)
	const lat, lon = 78.0, 15.0

	_, ok := EventTime(lat, lon, 0, date, KindSunset)
	if ok {
		t.Error("expected no sunset at Svalbard on the summer solstice")
	}
}
