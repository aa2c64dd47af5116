package logger

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		env     string
		level   string
		wantErr bool
	}{
		{"development", "debug", false},
		{"production", "INFO", false},
		{"production", "loud", true},
	}

	for _, tt := range tests {
		t.Run(tt.env+"/"+tt.level, func(t *testing.T) {
			log, err := New(tt.env, tt.level)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for invalid level")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			log.Sugar().Infow("logger ready", "env", tt.env)
		})
	}
}
