package timezone_test

import (
	"hotelier/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestTimezoneFormatDate(t *testing.T) {
	// A DATE column scans as midnight UTC. The same instant expressed in a
	// negative-offset zone still falls on the previous evening, so FormatDate
	// must keep the UTC calendar day regardless of the application timezone.
	dateValue := time.Date(2024, 4, 30, 20, 0, 0, 0, time.FixedZone("EDT", -4*3600))

	got := timezone.FormatDate(dateValue, "2006-01-02")
	if got != "2024-05-01" {
		t.Errorf("FormatDate() = %q, want %q", got, "2024-05-01")
	}

	midnight := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if got := timezone.FormatDate(midnight, "2006-01-02"); got != "2024-05-01" {
		t.Errorf("FormatDate() = %q, want %q", got, "2024-05-01")
	}
}
