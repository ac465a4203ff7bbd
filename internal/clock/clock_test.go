package clock

import (
	"testing"
	"time"
)

func TestFixedDaysSince(t *testing.T) {
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	clk := NewFixed(base)

	if got := clk.DaysSince(base.AddDate(0, 0, -10)); got != 10 {
		t.Fatalf("expected 10 days, got %d", got)
	}
	if got := clk.DaysSince(base.Add(-36 * time.Hour)); got != 1 {
		t.Fatalf("expected partial days to truncate to 1, got %d", got)
	}
	if got := clk.DaysSince(base); got != 0 {
		t.Fatalf("expected 0 days for the same instant, got %d", got)
	}
}

func TestFixedAdvance(t *testing.T) {
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	clk := NewFixed(base)

	clk.Advance(11 * 24 * time.Hour)

	if got := clk.DaysSince(base); got != 11 {
		t.Fatalf("expected 11 days after advancing, got %d", got)
	}
	if !clk.Now().Equal(base.Add(11 * 24 * time.Hour)) {
		t.Fatalf("unexpected Now after advance: %v", clk.Now())
	}
}

func TestSystemNowIsUTC(t *testing.T) {
	if loc := NewSystem().Now().Location(); loc != time.UTC {
		t.Fatalf("expected UTC, got %v", loc)
	}
}
