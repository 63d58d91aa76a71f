// config/duration_test.go
package config

import (
	"testing"
	"time"
)

func TestParseDurationFlexible(t *testing.T) {
	def := 30 * time.Minute

	tests := []struct {
		name    string
		raw     interface{}
		want    time.Duration
		wantErr bool
	}{
		{"duration string", "90s", 90 * time.Second, false},
		{"compound string", "1h30m", 90 * time.Minute, false},
		{"plain seconds string", "1800", 1800 * time.Second, false},
		{"empty string", "", def, false},
		{"garbage string", "soon", def, true},
		{"negative string", "-5m", def, true},
		{"time.Duration", 45 * time.Second, 45 * time.Second, false},
		{"int seconds", 60, 60 * time.Second, false},
		{"int64 seconds", int64(120), 120 * time.Second, false},
		{"float seconds", 1.5, 1500 * time.Millisecond, false},
		{"zero int", 0, def, true},
		{"nil", nil, def, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDurationFlexible(tt.raw, def)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %t", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseDurationFlexible(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
