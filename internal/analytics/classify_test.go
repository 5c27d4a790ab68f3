package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		minimumStock float64
		reorderPoint float64
		want         Tier
	}{
		{"zero quantity is always critical", 0, 0, 0, TierCritical},
		{"zero quantity with thresholds", 0, 100, 50, TierCritical},
		{"below half minimum", 40, 100, 0, TierCritical},
		{"exactly half minimum is not critical", 50, 100, 0, TierLow},
		{"below minimum fallback reorder level", 60, 100, 0, TierLow},
		{"above minimum fallback reorder level", 150, 100, 0, TierOK},
		{"below explicit reorder point", 60, 10, 80, TierLow},
		{"reorder point beats minimum as reorder level", 60, 100, 50, TierOK},
		{"at reorder level is ok", 80, 10, 80, TierOK},
		{"zero thresholds never low", 1, 0, 0, TierOK},
		{"healthy position", 500, 100, 200, TierOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.quantity, tt.minimumStock, tt.reorderPoint))
		})
	}
}

func TestClassifyReturnsExactlyOneTier(t *testing.T) {
	// totality over a grid of non-negative inputs
	for q := 0; q <= 120; q += 10 {
		for _, m := range []float64{0, 50, 100} {
			for _, r := range []float64{0, 30, 90} {
				tier := Classify(q, m, r)
				assert.Contains(t, []Tier{TierCritical, TierLow, TierOK}, tier)
				if q == 0 {
					assert.Equal(t, TierCritical, tier)
				}
			}
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	assert.Equal(t, Classify(42, 90, 60), Classify(42, 90, 60))
}
