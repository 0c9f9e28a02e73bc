package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
	"github.com/Purvachakravarti/NaologicReflowProject/internal/utils"
)

func (h *Handler) GetAllWorkCenters(w http.ResponseWriter, r *http.Request) {
	centers, err := h.repository.GetAllWorkCenters()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "fetched work centers", centers)
}

func (h *Handler) CreateWorkCenter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name" validate:"required"`
		Shifts []struct {
			DayOfWeek int `json:"dayOfWeek" validate:"gte=0,lte=6"`
			StartHour int `json:"startHour" validate:"gte=0,lte=24"`
			EndHour   int `json:"endHour" validate:"gte=0,lte=24"`
		} `json:"shifts" validate:"dive"`
		MaintenanceWindows []struct {
			Start  string `json:"start" validate:"required"`
			End    string `json:"end" validate:"required"`
			Reason string `json:"reason"`
		} `json:"maintenanceWindows" validate:"dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	wc := &domain.WorkCenter{
		Name:   req.Name,
		Shifts: make([]domain.Shift, 0, len(req.Shifts)),
	}
	for _, s := range req.Shifts {
		wc.Shifts = append(wc.Shifts, domain.Shift{DayOfWeek: s.DayOfWeek, StartHour: s.StartHour, EndHour: s.EndHour})
	}

	wc.MaintenanceWindows = make([]domain.Interval, 0, len(req.MaintenanceWindows))
	for _, mw := range req.MaintenanceWindows {
		start, err := domain.ParseInstant(mw.Start)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		end, err := domain.ParseInstant(mw.End)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		wc.MaintenanceWindows = append(wc.MaintenanceWindows, domain.Interval{Start: start, End: end, Reason: mw.Reason})
	}

	if err := utils.ValidateWorkCenterShifts(wc.Shifts); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateMaintenanceWindows(wc.MaintenanceWindows); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateWorkCenter(wc); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "work_centers_name_key":
				h.badRequest(w, r, errors.New("work center name already exists"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "work center created", wc)
}

func (h *Handler) GetWorkCenter(w http.ResponseWriter, r *http.Request) {
	wc := r.Context().Value(WorkCenterCtx).(*domain.WorkCenter)
	h.successResponse(w, r, "fetched work center", wc)
}

func (h *Handler) UpdateWorkCenter(w http.ResponseWriter, r *http.Request) {
	wc := r.Context().Value(WorkCenterCtx).(*domain.WorkCenter)

	var req struct {
		Name   *string `json:"name"`
		Shifts *[]struct {
			DayOfWeek int `json:"dayOfWeek" validate:"gte=0,lte=6"`
			StartHour int `json:"startHour" validate:"gte=0,lte=24"`
			EndHour   int `json:"endHour" validate:"gte=0,lte=24"`
		} `json:"shifts" validate:"omitempty,dive"`
		MaintenanceWindows *[]struct {
			Start  string `json:"start" validate:"required"`
			End    string `json:"end" validate:"required"`
			Reason string `json:"reason"`
		} `json:"maintenanceWindows" validate:"omitempty,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		wc.Name = *req.Name
	}
	if req.Shifts != nil {
		shifts := make([]domain.Shift, 0, len(*req.Shifts))
		for _, s := range *req.Shifts {
			shifts = append(shifts, domain.Shift{DayOfWeek: s.DayOfWeek, StartHour: s.StartHour, EndHour: s.EndHour})
		}
		if err := utils.ValidateWorkCenterShifts(shifts); err != nil {
			h.badRequest(w, r, err)
			return
		}
		wc.Shifts = shifts
	}
	if req.MaintenanceWindows != nil {
		windows := make([]domain.Interval, 0, len(*req.MaintenanceWindows))
		for _, mw := range *req.MaintenanceWindows {
			start, err := domain.ParseInstant(mw.Start)
			if err != nil {
				h.badRequest(w, r, err)
				return
			}
			end, err := domain.ParseInstant(mw.End)
			if err != nil {
				h.badRequest(w, r, err)
				return
			}
			windows = append(windows, domain.Interval{Start: start, End: end, Reason: mw.Reason})
		}
		if err := utils.ValidateMaintenanceWindows(windows); err != nil {
			h.badRequest(w, r, err)
			return
		}
		wc.MaintenanceWindows = windows
	}

	if err := h.repository.UpdateWorkCenter(wc); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "work_centers_name_key":
				h.badRequest(w, r, errors.New("work center name already exists"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "work center updated", wc)
}

func (h *Handler) DeleteWorkCenter(w http.ResponseWriter, r *http.Request) {
	wc := r.Context().Value(WorkCenterCtx).(*domain.WorkCenter)

	if err := h.repository.DeleteWorkCenter(wc.ID); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "work_orders_work_center_id_fkey":
				h.errorResponse(w, r, "work center still has work orders assigned, cannot delete")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "work center deleted", nil)
}
