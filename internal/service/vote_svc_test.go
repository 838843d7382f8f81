package service

import "testing"

func TestValidateVotePair(t *testing.T) {
	tests := []struct {
		name    string
		park1   int
		park2   int
		winner  int
		wantErr bool
	}{
		{"valid park1 wins", 1, 2, 1, false},
		{"valid park2 wins", 1, 2, 2, false},
		{"self matchup", 3, 3, 3, true},
		{"winner outside pair", 1, 2, 5, true},
		{"zero park id", 0, 2, 2, true},
		{"negative park id", -1, 2, 2, true},
		{"zero winner", 1, 2, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVotePair(tt.park1, tt.park2, tt.winner)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
