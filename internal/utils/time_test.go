package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty string returns local", timezone: "", wantErr: false},
		{name: "Local returns local", timezone: "Local", wantErr: false},
		{name: "valid timezone UTC", timezone: "UTC", wantErr: false},
		{name: "valid timezone Europe/London", timezone: "Europe/London", wantErr: false},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestParseDateInLocation(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}
	got, err := ParseDateInLocation("2024-03-13", loc)
	if err != nil {
		t.Fatalf("ParseDateInLocation() error = %v", err)
	}
	if got.Hour() != 0 || got.Minute() != 0 || got.Location() != loc {
		t.Errorf("ParseDateInLocation() = %v, want local midnight in %v", got, loc)
	}
}

func TestValidateTimeFormat(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"08:00", true},
		{"23:59", true},
		{"8:00", false},
		{"24:00", false},
		{"08:60", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidateTimeFormat(tt.input); got != tt.want {
				t.Errorf("ValidateTimeFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateDateFormat(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2024-03-13", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-3-13", false},
		{"13/03/2024", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidateDateFormat(tt.input); got != tt.want {
				t.Errorf("ValidateDateFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateTimezone(t *testing.T) {
	if !ValidateTimezone("Local") || !ValidateTimezone("") || !ValidateTimezone("UTC") {
		t.Error("ValidateTimezone() rejected a valid timezone")
	}
	if ValidateTimezone("Nowhere/Land") {
		t.Error("ValidateTimezone() accepted an invalid timezone")
	}
}
