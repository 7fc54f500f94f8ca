package model

import "testing"

func TestUpdateStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   UpdateStatus
		expected bool
	}{
		{UpdateStatusIdle, false},
		{UpdateStatusChecking, true},
		{UpdateStatusAvailable, false},
		{UpdateStatusNotAvailable, false},
		{UpdateStatusDownloading, true},
		{UpdateStatusDownloaded, false},
		{UpdateStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("UpdateStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestUpdateStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   UpdateStatus
		expected bool
	}{
		{UpdateStatusIdle, false},
		{UpdateStatusChecking, false},
		{UpdateStatusAvailable, true},
		{UpdateStatusNotAvailable, true},
		{UpdateStatusDownloading, false},
		{UpdateStatusDownloaded, true},
		{UpdateStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("UpdateStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestParseUpdateStatus(t *testing.T) {
	if s, ok := ParseUpdateStatus("not-available"); !ok || s != UpdateStatusNotAvailable {
		t.Errorf("ParseUpdateStatus(not-available) = %q, %v", s, ok)
	}
	if _, ok := ParseUpdateStatus("exploded"); ok {
		t.Error("Expected unknown tag to be rejected")
	}
}
