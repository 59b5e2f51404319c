package helper

import "testing"

func TestMinutesToClock(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{9 * 60, "09:00"},
		{12*60 + 45, "12:45"},
		{21 * 60, "21:00"},
		{24*60 + 30, "00:30"}, // 日またぎは24時間で折り返す
		{-10, "00:00"},
	}

	for _, c := range cases {
		if got := MinutesToClock(c.minutes); got != c.want {
			t.Errorf("MinutesToClock(%d) = %s, want %s", c.minutes, got, c.want)
		}
	}
}

func TestClockToMinutes(t *testing.T) {
	cases := []struct {
		clock string
		want  int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"23:30", 1410},
		{"invalid", 0},
		{"", 0},
	}

	for _, c := range cases {
		if got := ClockToMinutes(c.clock); got != c.want {
			t.Errorf("ClockToMinutes(%q) = %d, want %d", c.clock, got, c.want)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	for _, clock := range []string{"06:30", "07:45", "09:10", "23:30"} {
		if got := MinutesToClock(ClockToMinutes(clock)); got != clock {
			t.Errorf("往復変換が一致しません: %s → %s", clock, got)
		}
	}
}

func TestHoursToMinutes(t *testing.T) {
	cases := []struct {
		hours float64
		want  int
	}{
		{1, 60},
		{1.5, 90},
		{2.5, 150},
		{0, 0},
	}

	for _, c := range cases {
		if got := HoursToMinutes(c.hours); got != c.want {
			t.Errorf("HoursToMinutes(%v) = %d, want %d", c.hours, got, c.want)
		}
	}
}
