package seed

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
	"github.com/Purvachakravarti/NaologicReflowProject/internal/repository"
)

// SeedDemoScenario inserts a handful of work centers and a dependency chain
// of work orders that reproduce the delay-cascade, shift-spanning, and
// maintenance-conflict scenarios the reflow engine is tested against, plus
// a planner and a viewer operator so the API has something to log in as
// besides the bootstrap admin.
func SeedDemoScenario(r *repository.Repository, operatorPassword string) {
	seedOperators(r, operatorPassword)

	wc1 := &domain.WorkCenter{
		Name: "wc1-press-line",
		Shifts: []domain.Shift{
			{DayOfWeek: 1, StartHour: 8, EndHour: 16},
			{DayOfWeek: 2, StartHour: 8, EndHour: 16},
			{DayOfWeek: 3, StartHour: 8, EndHour: 16},
			{DayOfWeek: 4, StartHour: 8, EndHour: 16},
			{DayOfWeek: 5, StartHour: 8, EndHour: 16},
		},
		MaintenanceWindows: []domain.Interval{
			{
				Start:  mustParse("2026-03-03T10:00:00Z"),
				End:    mustParse("2026-03-03T13:00:00Z"),
				Reason: "scheduled lubrication",
			},
		},
	}
	if err := r.CreateWorkCenter(wc1); err != nil {
		slog.Error("seed: create work center", "name", wc1.Name, "error", err)
		return
	}

	wc2 := &domain.WorkCenter{
		Name: "wc2-paint-booth",
		Shifts: []domain.Shift{
			{DayOfWeek: 1, StartHour: 8, EndHour: 17},
			{DayOfWeek: 2, StartHour: 8, EndHour: 17},
			{DayOfWeek: 3, StartHour: 8, EndHour: 17},
			{DayOfWeek: 4, StartHour: 8, EndHour: 17},
			{DayOfWeek: 5, StartHour: 8, EndHour: 17},
		},
	}
	if err := r.CreateWorkCenter(wc2); err != nil {
		slog.Error("seed: create work center", "name", wc2.Name, "error", err)
		return
	}

	// S1: delay cascade. A runs past its original 08:00-10:00 slot, which
	// pushes B and then C later; C no longer fits in Monday's shift and
	// rolls over onto the next working day.
	a := &domain.WorkOrder{
		WorkOrderNumber:      "WO-1001",
		ManufacturingOrderID: "MO-S1",
		WorkCenterID:         wc1.ID,
		Start:                mustParse("2026-03-02T08:00:00Z"),
		End:                  mustParse("2026-03-02T10:00:00Z"),
		DurationMinutes:      360,
	}
	if err := r.CreateWorkOrder(a); err != nil {
		slog.Error("seed: create work order", "number", a.WorkOrderNumber, "error", err)
		return
	}

	b := &domain.WorkOrder{
		WorkOrderNumber:       "WO-1002",
		ManufacturingOrderID:  "MO-S1",
		WorkCenterID:          wc1.ID,
		Start:                 a.Start,
		End:                   a.End,
		DurationMinutes:       120,
		DependsOnWorkOrderIDs: []int64{a.ID},
	}
	if err := r.CreateWorkOrder(b); err != nil {
		slog.Error("seed: create work order", "number", b.WorkOrderNumber, "error", err)
		return
	}

	c := &domain.WorkOrder{
		WorkOrderNumber:       "WO-1003",
		ManufacturingOrderID:  "MO-S1",
		WorkCenterID:          wc1.ID,
		Start:                 a.Start,
		End:                   a.End,
		DurationMinutes:       120,
		DependsOnWorkOrderIDs: []int64{b.ID},
	}
	if err := r.CreateWorkOrder(c); err != nil {
		slog.Error("seed: create work order", "number", c.WorkOrderNumber, "error", err)
		return
	}

	// S2: shift spanning. Starts near the end of one shift, rolls into the
	// next working day's shift.
	s1 := &domain.WorkOrder{
		WorkOrderNumber:      "WO-2001",
		ManufacturingOrderID: "MO-S2",
		WorkCenterID:         wc2.ID,
		Start:                mustParse("2026-03-02T16:00:00Z"),
		End:                  mustParse("2026-03-02T16:00:00Z"),
		DurationMinutes:      120,
	}
	if err := r.CreateWorkOrder(s1); err != nil {
		slog.Error("seed: create work order", "number", s1.WorkOrderNumber, "error", err)
		return
	}

	// S3: maintenance conflict. M1 is a pinned maintenance order inside
	// wc1's shift; P1 has to route around both M1 and the declared
	// maintenance window.
	m1 := &domain.WorkOrder{
		WorkOrderNumber:      "WO-3001",
		ManufacturingOrderID: "MO-S3",
		WorkCenterID:         wc1.ID,
		Start:                mustParse("2026-03-03T08:30:00Z"),
		End:                  mustParse("2026-03-03T09:30:00Z"),
		DurationMinutes:      60,
		IsMaintenance:        true,
	}
	if err := r.CreateWorkOrder(m1); err != nil {
		slog.Error("seed: create work order", "number", m1.WorkOrderNumber, "error", err)
		return
	}

	p1 := &domain.WorkOrder{
		WorkOrderNumber:      "WO-3002",
		ManufacturingOrderID: "MO-S3",
		WorkCenterID:         wc1.ID,
		Start:                mustParse("2026-03-03T09:30:00Z"),
		End:                  mustParse("2026-03-03T09:30:00Z"),
		DurationMinutes:      180,
	}
	if err := r.CreateWorkOrder(p1); err != nil {
		slog.Error("seed: create work order", "number", p1.WorkOrderNumber, "error", err)
		return
	}

	slog.Info("seed: demo scenario inserted", "work_centers", 2, "work_orders", 6)
}

func seedOperators(r *repository.Repository, password string) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("seed: hash operator password", "error", err)
		return
	}

	demo := []*domain.Operator{
		{Username: "planner1", FullName: "Demo Planner", Email: "planner1@example.com", Role: domain.RolePlanner, IsActive: true},
		{Username: "viewer1", FullName: "Demo Viewer", Email: "viewer1@example.com", Role: domain.RoleViewer, IsActive: true},
	}

	for _, op := range demo {
		op.PasswordHash = string(passwordHash)
		if err := r.CreateOperator(op); err != nil {
			slog.Error("seed: create operator", "username", op.Username, "error", err)
			continue
		}
	}
}

func mustParse(s string) domain.Instant {
	instant, err := domain.ParseInstant(s)
	if err != nil {
		panic(err)
	}
	return instant
}
