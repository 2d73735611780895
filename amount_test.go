package forge

import (
	"errors"
	"testing"
)

func TestScaleAmount(t *testing.T) {
	tests := []struct {
		name     string
		human    string
		decimals uint8
		want     uint64
		wantErr  bool
	}{
		{"whole units", "100", 6, 100_000_000, false},
		{"fractional", "1.5", 6, 1_500_000, false},
		{"zero decimals floors", "1.9", 0, 1, false},
		{"zero decimals whole", "42", 0, 42, false},
		{"truncates excess digits", "0.1234567", 6, 123_456, false},
		{"below smallest unit", "0.0000001", 6, 0, false},
		{"nine decimals", "1", 9, 1_000_000_000, false},
		{"zero", "0", 6, 0, false},
		{"whitespace tolerated", " 2.5 ", 2, 250, false},
		{"empty", "", 6, 0, true},
		{"negative", "-1", 6, 0, true},
		{"garbage", "abc", 6, 0, true},
		{"overflow", "18446744073709551616", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScaleAmount(tt.human, tt.decimals)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ScaleAmount(%q, %d) = %d, want error", tt.human, tt.decimals, got)
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("error = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ScaleAmount(%q, %d): %v", tt.human, tt.decimals, err)
			}
			if got != tt.want {
				t.Errorf("ScaleAmount(%q, %d) = %d, want %d", tt.human, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestFmtAmount(t *testing.T) {
	tests := []struct {
		raw      uint64
		decimals uint8
		want     string
	}{
		{1_500_000, 6, "1.5"},
		{100_000_000, 6, "100"},
		{0, 6, "0"},
		{42, 0, "42"},
		{1, 9, "0.000000001"},
	}

	for _, tt := range tests {
		if got := FmtAmount(tt.raw, tt.decimals); got != tt.want {
			t.Errorf("FmtAmount(%d, %d) = %q, want %q", tt.raw, tt.decimals, got, tt.want)
		}
	}
}
