package handler

import (
	"strings"
	"testing"
)

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createBookingRequest{Title: "standup"})
	if err == nil {
		t.Fatal("expected validation error for missing fields")
	}
	msg := err.Error()
	for _, want := range []string{
		"roomId is required",
		"userId is required",
		"startTime is required",
		"endTime is required",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
	if strings.Contains(msg, "RoomID") || strings.Contains(msg, "roomid") {
		t.Errorf("message %q leaks struct field casing", msg)
	}
}

func TestValidator_TagMessages(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createRoomRequest{Name: "Lab A", Capacity: -1})
	if err == nil || !strings.Contains(err.Error(), "capacity must be greater than 0") {
		t.Errorf("capacity gt message, got %v", err)
	}

	err = v.Validate(&createUserRequest{Name: "Ana", Email: "nope", Registration: "R1"})
	if err == nil || !strings.Contains(err.Error(), "email must be a valid email") {
		t.Errorf("email message, got %v", err)
	}

	status := "Tentative"
	err = v.Validate(&updateBookingRequest{Status: &status})
	if err == nil || !strings.Contains(err.Error(), "status must be one of: Pending Confirmed Cancelled") {
		t.Errorf("oneof message, got %v", err)
	}
}

func TestJSONFieldName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"RoomID", "roomId"},
		{"UserID", "userId"},
		{"StartTime", "startTime"},
		{"IsActive", "isActive"},
		{"Name", "name"},
	}
	for _, tt := range tests {
		if got := jsonFieldName(tt.in); got != tt.want {
			t.Errorf("jsonFieldName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
