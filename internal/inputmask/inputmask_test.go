package inputmask

import "testing"

func TestFormat_DateOnly(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"1", "1"},
		{"18", "18"},
		{"180", "18/0"},
		{"1802", "18/02"},
		{"18022", "18/02/2"},
		{"18022569", "18/02/2569"},
		{"180225691", "18/02/2569"},   // excess digits truncated
		{"18/02/2569", "18/02/2569"},  // already punctuated
		{"18a02b2569", "18/02/2569"},  // non-digits stripped
		{"1 8 0 2", "18/02"},
	}
	for _, tt := range tests {
		if got := Format(tt.input, false); got != tt.want {
			t.Errorf("Format(%q, false) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormat_WithTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"18022569", "18/02/2569"},
		{"180225691", "18/02/2569 1"},
		{"1802256914", "18/02/2569 14"},
		{"18022569143", "18/02/2569 14:3"},
		{"180225691430", "18/02/2569 14:30"},
		{"1802256914305", "18/02/2569 14:30"},
	}
	for _, tt := range tests {
		if got := Format(tt.input, true); got != tt.want {
			t.Errorf("Format(%q, true) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestComplete(t *testing.T) {
	tests := []struct {
		input    string
		withTime bool
		want     bool
	}{
		{"18022569", false, true},
		{"1802256", false, false},
		{"", false, false},
		{"18022569", true, false}, // time mode needs four more digits
		{"180225691430", true, true},
		{"18/02/2569", false, true},
	}
	for _, tt := range tests {
		if got := Complete(tt.input, tt.withTime); got != tt.want {
			t.Errorf("Complete(%q, %v) = %v, want %v", tt.input, tt.withTime, got, tt.want)
		}
	}
}

func TestDigits(t *testing.T) {
	if got := Digits("18/02/2569 14:30", false); got != "18022569" {
		t.Errorf("Digits date-only = %q, want %q", got, "18022569")
	}
	if got := Digits("18/02/2569 14:30", true); got != "180225691430" {
		t.Errorf("Digits with time = %q, want %q", got, "180225691430")
	}
}
