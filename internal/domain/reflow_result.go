package domain

import "time"

// ChangeReason is the fixed explanation attached to every change record.
const ChangeReason = "reflow recomputed start/end to satisfy dependency, capacity, shift, and maintenance constraints"

// ChangeRecord describes a work order whose start or end moved during a
// reflow run.
type ChangeRecord struct {
	WorkOrderID     int64   `json:"workOrderId"`
	WorkOrderNumber string  `json:"workOrderNumber"`
	Reason          string  `json:"reason"`
	OldStart        Instant `json:"oldStart"`
	NewStart        Instant `json:"newStart"`
	OldEnd          Instant `json:"oldEnd"`
	NewEnd          Instant `json:"newEnd"`
	DeltaMinutes    int     `json:"deltaMinutes"`
}

// ReflowMetrics summarizes a reflow run.
type ReflowMetrics struct {
	MovedCount        int `json:"movedCount"`
	TotalDelayMinutes int `json:"totalDelayMinutes"`
}

// ReflowInput is the plain value object consumed by the reflow engine.
type ReflowInput struct {
	WorkCenters []WorkCenter `json:"workCenters"`
	WorkOrders  []WorkOrder  `json:"workOrders"`
}

// ReflowResult is the plain value object produced by the reflow engine.
type ReflowResult struct {
	ID                int64          `json:"id"`
	UpdatedWorkOrders []WorkOrder    `json:"updatedWorkOrders"`
	Changes           []ChangeRecord `json:"changes"`
	Explanation       string         `json:"explanation"`
	Metrics           ReflowMetrics  `json:"metrics"`
	CreatedAt         time.Time      `json:"createdAt"`
}
