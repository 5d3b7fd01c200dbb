package domain_test

import (
	"testing"

	"wedding_venues/internal/domain"
)

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{346.5, 346.5},
		{4.56666, 4.57},
		{62.9979, 63},
		{-0.125, -0.13},
		{0, 0},
	}
	for _, tt := range tests {
		if got := domain.RoundCents(tt.in); got != tt.want {
			t.Errorf("RoundCents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
