package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
	"github.com/Purvachakravarti/NaologicReflowProject/internal/reflow"
)

const latestReflowCacheKey = "reflow:latest:all"

// TriggerReflow loads every work center and work order from the repository,
// runs the reflow engine, persists the result (updating every changed work
// order's schedule in the same transaction), invalidates the latest-run
// cache, and publishes one delay_notice message per order that slipped.
func (h *Handler) TriggerReflow(w http.ResponseWriter, r *http.Request) {
	centers, err := h.repository.GetAllWorkCenters()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	orders, err := h.repository.GetAllWorkOrders()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	input := domain.ReflowInput{
		WorkCenters: make([]domain.WorkCenter, len(centers)),
		WorkOrders:  make([]domain.WorkOrder, len(orders)),
	}
	for i, wc := range centers {
		input.WorkCenters[i] = *wc
	}
	for i, wo := range orders {
		input.WorkOrders[i] = *wo
	}

	result, err := reflow.Reflow(input)
	if err != nil {
		status := reflowErrorStatus(err)
		if status >= http.StatusInternalServerError {
			h.internalServerError(w, r, err)
		} else {
			w.WriteHeader(status)
			h.errorResponse(w, r, err.Error())
		}
		return
	}

	changed := make([]*domain.WorkOrder, 0, len(result.Changes))
	byID := make(map[int64]*domain.WorkOrder, len(result.UpdatedWorkOrders))
	for i := range result.UpdatedWorkOrders {
		byID[result.UpdatedWorkOrders[i].ID] = &result.UpdatedWorkOrders[i]
	}
	for _, change := range result.Changes {
		if wo, ok := byID[change.WorkOrderID]; ok {
			changed = append(changed, wo)
		}
	}

	if err := h.repository.InsertReflowRun(&result, changed); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationExpiration)*time.Minute)
	defer cancel()
	if err := h.redisClient.Del(ctx, latestReflowCacheKey).Err(); err != nil {
		h.logInternalServerError(r, err)
	}

	h.publishDelayNotices(r, result.Changes, byID)

	h.successResponse(w, r, "reflow run completed", result)
}

func (h *Handler) publishDelayNotices(r *http.Request, changes []domain.ChangeRecord, byID map[int64]*domain.WorkOrder) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	for _, change := range changes {
		if change.DeltaMinutes <= 0 {
			continue
		}

		var manufacturingOrderID string
		if wo, ok := byID[change.WorkOrderID]; ok {
			manufacturingOrderID = wo.ManufacturingOrderID
		}

		mailMessage := domain.MailMessage{
			Type: domain.MailTypeDelayNotice,
			To:   h.config.Email.NotifyAddress,
			Data: domain.DelayNoticeMailData{
				WorkOrderNumber:      change.WorkOrderNumber,
				ManufacturingOrderID: manufacturingOrderID,
				OldEnd:               change.OldEnd.String(),
				NewEnd:               change.NewEnd.String(),
				DeltaMinutes:         change.DeltaMinutes,
			},
		}

		body, err := json.Marshal(mailMessage)
		if err != nil {
			h.logInternalServerError(r, fmt.Errorf("marshal delay notice for work order %d: %w", change.WorkOrderID, err))
			continue
		}

		if err := h.mailChannel.PublishWithContext(
			ctx,
			"",
			"delay_notice_queue",
			true,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        body,
			},
		); err != nil {
			h.logInternalServerError(r, fmt.Errorf("publish delay notice for work order %d: %w", change.WorkOrderID, err))
		}
	}
}

func (h *Handler) GetReflowRun(w http.ResponseWriter, r *http.Request) {
	run := r.Context().Value(ReflowRunCtx).(*domain.ReflowResult)
	h.successResponse(w, r, "fetched reflow run", run)
}

func (h *Handler) GetLatestReflowRun(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Minute)
	defer cancel()

	if cached, err := h.redisClient.Get(ctx, latestReflowCacheKey).Result(); err == nil {
		var result domain.ReflowResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			h.successResponse(w, r, "fetched reflow run (cached)", result)
			return
		}
	}

	result, err := h.repository.GetLatestReflowRun()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := h.redisClient.Set(ctx, latestReflowCacheKey, raw, time.Duration(h.config.Notify.ReflowCacheTTL)*time.Second).Err(); err != nil {
			h.logInternalServerError(r, err)
		}
	}

	h.successResponse(w, r, "fetched reflow run", result)
}
