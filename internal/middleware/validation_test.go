package middleware

import "testing"

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  int
		wantErr bool
	}{
		{"valid", "42", 42, false},
		{"trims whitespace", "  7  ", 7, false},
		{"empty", "", 0, true},
		{"zero", "0", 0, true},
		{"negative", "-3", 0, true},
		{"not a number", "abc", 0, true},
		{"float", "1.5", 0, true},
		{"sql injection", "1; DROP--", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateID(tt.input, "userId")
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.wantID {
				t.Errorf("got %d, want %d", got, tt.wantID)
			}
		})
	}
}

func TestValidateLimit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"absent defaults", "", DefaultLimit, false},
		{"valid", "50", 50, false},
		{"minimum", "1", 1, false},
		{"maximum", "100", 100, false},
		{"zero", "0", 0, true},
		{"over max", "101", 0, true},
		{"negative", "-1", 0, true},
		{"not a number", "many", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateLimit(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
