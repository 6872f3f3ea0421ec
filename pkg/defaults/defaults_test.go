package defaults

import (
	"testing"
	"time"
)

func TestBatchTimeout(t *testing.T) {
	if BatchTimeout < 30*time.Second || BatchTimeout > 30*time.Minute {
		t.Errorf("BatchTimeout (%v) outside expected range", BatchTimeout)
	}
}

func TestLimitRelationships(t *testing.T) {
	tests := []struct {
		name  string
		value int
		min   int
		max   int
	}{
		{"MaxLineLength", MaxLineLength, 256, 1 << 16},
		{"MaxBatchLines", MaxBatchLines, 1000, 10_000_000},
		{"BatchConcurrency", BatchConcurrency, 1, MaxBatchConcurrency},
		{"MaxBatchConcurrency", MaxBatchConcurrency, BatchConcurrency, 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value < tt.min {
				t.Errorf("%s (%d) is below minimum expected value (%d)", tt.name, tt.value, tt.min)
			}
			if tt.value > tt.max {
				t.Errorf("%s (%d) is above maximum expected value (%d)", tt.name, tt.value, tt.max)
			}
		})
	}
}
