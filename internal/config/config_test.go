package config

import "testing"

func TestLoad_PoolSizeDefaults(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "")
	t.Setenv("DB_MIN_CONNS", "")

	cfg := Load()
	if cfg.DBMaxConns != 10 {
		t.Errorf("DBMaxConns = %d, want 10", cfg.DBMaxConns)
	}
	if cfg.DBMinConns != 2 {
		t.Errorf("DBMinConns = %d, want 2", cfg.DBMinConns)
	}
}

func TestLoad_PoolSizeFromEnv(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("DB_MIN_CONNS", "5")

	cfg := Load()
	if cfg.DBMaxConns != 25 {
		t.Errorf("DBMaxConns = %d, want 25", cfg.DBMaxConns)
	}
	if cfg.DBMinConns != 5 {
		t.Errorf("DBMinConns = %d, want 5", cfg.DBMinConns)
	}
}

func TestGetInt32_RejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"non-numeric", "lots"},
		{"zero", "0"},
		{"negative", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_MAX_CONNS", tt.value)
			if got := getInt32("DB_MAX_CONNS", 10); got != 10 {
				t.Errorf("getInt32(%q) = %d, want fallback 10", tt.value, got)
			}
		})
	}
}
