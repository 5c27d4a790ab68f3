// Package analytics derives the dashboard's numbers from raw inventory
// snapshots. Everything here is a pure function over its inputs: results are
// recomputed from scratch on every call, never patched incrementally, and the
// package holds no state, so concurrent calls over different snapshots are
// safe.
package analytics

// Tier ranks how urgently a stock position needs replenishment.
type Tier string

const (
	TierCritical Tier = "critical"
	TierLow      Tier = "low"
	TierOK       Tier = "ok"
)

// Classify derives the severity tier for a stock position from its current
// quantity and thresholds. A quantity of zero is always critical, as is
// falling below half the minimum stock. Below the effective reorder level is
// low; the reorder point falls back to minimum stock when unset. Zero
// thresholds never trip a comparison on their own, so a position with no
// configured thresholds is only ever critical at exactly zero.
func Classify(quantity int, minimumStock, reorderPoint float64) Tier {
	if quantity == 0 {
		return TierCritical
	}

	q := float64(quantity)
	if minimumStock > 0 && q < minimumStock*0.5 {
		return TierCritical
	}

	reorder := reorderPoint
	if reorder <= 0 {
		reorder = minimumStock
	}
	if reorder > 0 && q < reorder {
		return TierLow
	}

	return TierOK
}
