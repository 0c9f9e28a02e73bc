package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
)

func (h *Handler) GetAllWorkOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repository.GetAllWorkOrders()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "fetched work orders", orders)
}

func (h *Handler) CreateWorkOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WorkOrderNumber       string  `json:"workOrderNumber" validate:"required"`
		ManufacturingOrderID  string  `json:"manufacturingOrderId"`
		WorkCenterID          int64   `json:"workCenterId" validate:"required"`
		Start                 string  `json:"startDate" validate:"required"`
		End                   string  `json:"endDate" validate:"required"`
		DurationMinutes       int     `json:"durationMinutes" validate:"gte=0"`
		SetupTimeMinutes      int     `json:"setupTimeMinutes" validate:"gte=0"`
		IsMaintenance         bool    `json:"isMaintenance"`
		DependsOnWorkOrderIDs []int64 `json:"dependsOnWorkOrderIds"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	start, err := domain.ParseInstant(req.Start)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	end, err := domain.ParseInstant(req.End)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	if _, err := h.repository.GetWorkCenter(req.WorkCenterID); err != nil {
		h.badRequest(w, r, errors.New("work center does not exist"))
		return
	}

	wo := &domain.WorkOrder{
		WorkOrderNumber:       req.WorkOrderNumber,
		ManufacturingOrderID:  req.ManufacturingOrderID,
		WorkCenterID:          req.WorkCenterID,
		Start:                 start,
		End:                   end,
		DurationMinutes:       req.DurationMinutes,
		SetupTimeMinutes:      req.SetupTimeMinutes,
		IsMaintenance:         req.IsMaintenance,
		DependsOnWorkOrderIDs: req.DependsOnWorkOrderIDs,
	}
	if wo.DependsOnWorkOrderIDs == nil {
		wo.DependsOnWorkOrderIDs = []int64{}
	}

	if err := h.repository.CreateWorkOrder(wo); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "work_orders_work_order_number_key":
				h.badRequest(w, r, errors.New("work order number already exists"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "work order created", wo)
}

func (h *Handler) GetWorkOrder(w http.ResponseWriter, r *http.Request) {
	wo := r.Context().Value(WorkOrderCtx).(*domain.WorkOrder)
	h.successResponse(w, r, "fetched work order", wo)
}

func (h *Handler) DeleteWorkOrder(w http.ResponseWriter, r *http.Request) {
	wo := r.Context().Value(WorkOrderCtx).(*domain.WorkOrder)

	if err := h.repository.DeleteWorkOrder(wo.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "work order deleted", nil)
}
