package analytics

import (
	"wms-dashboard/backend/pkg/models"
)

// weekDays labels the buckets Monday first, matching how the activity chart
// renders a week.
var weekDays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayBucket is one slot of the weekly movement summary.
type DayBucket struct {
	Day      string `json:"day"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// BucketWeekly folds a movement history into a fixed 7-slot week. The result
// always has exactly seven entries, Monday through Sunday, zero-filled for
// days with no activity. time.Weekday counts Sunday as 0, so the index is
// rotated to land Sunday in the last slot; without the rotation weekend
// volume charts at the start of the week.
//
// Inbound movements add to the inbound channel and outbound to the outbound
// channel. Transfers and adjustments move stock sideways and are counted in
// neither. Summation is commutative, so the input order does not matter.
func BucketWeekly(movements []models.StockMovement) [7]DayBucket {
	var week [7]DayBucket
	for i := range week {
		week[i].Day = weekDays[i]
	}

	for _, m := range movements {
		idx := (int(m.MovementDate.Weekday()) + 6) % 7
		switch m.MovementType {
		case models.MovementTypeIn:
			week[idx].Inbound += m.Quantity
		case models.MovementTypeOut:
			week[idx].Outbound += m.Quantity
		}
	}

	return week
}
