package domain

import "time"

// WorkCenter is a resource with weekly shifts and maintenance windows.
// Capacity is exactly one work order at a time. Maintenance windows on the
// same center are assumed pairwise non-overlapping and are not re-validated.
type WorkCenter struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	Shifts             []Shift    `json:"shifts"`
	MaintenanceWindows []Interval `json:"maintenanceWindows"`
	CreatedAt          time.Time  `json:"createdAt"`
	Version            int32      `json:"-"`
}
