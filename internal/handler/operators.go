package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
	"github.com/Purvachakravarti/NaologicReflowProject/internal/utils"
)

func (h *Handler) GetAllOperators(w http.ResponseWriter, r *http.Request) {
	operators, err := h.repository.GetAllOperators()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "fetched operator list", operators)
}

func (h *Handler) CreateOperator(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		FullName string `json:"fullName" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Role     string `json:"role" validate:"required,oneof=viewer planner admin"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	password := utils.GenerateRandomPassword(h.config.NewOperator.PasswordLength)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	op := &domain.Operator{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Email:        req.Email,
		Role:         domain.Role(req.Role),
	}

	if err := h.repository.CreateOperator(op); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "operators_username_key":
				h.badRequest(w, r, errors.New("username already exists"))
			case "operators_email_key":
				h.badRequest(w, r, errors.New("email already exists"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	mailMessage := domain.MailMessage{
		Type: domain.MailTypeCreateOperator,
		To:   op.Email,
		Data: domain.CreateOperatorMailData{
			FullName: req.FullName,
			Username: req.Username,
			Password: password,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "operator created", op)
}

func (h *Handler) GetOperatorInfo(w http.ResponseWriter, r *http.Request) {
	op := r.Context().Value(OperatorInfoCtx).(*domain.Operator)
	h.successResponse(w, r, "fetched operator info", op)
}

func (h *Handler) UpdateOperator(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName *string `json:"fullName"`
		Email    *string `json:"email" validate:"omitempty,email"`
		Role     *string `json:"role" validate:"omitempty,oneof=viewer planner admin"`
		IsActive *bool   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	op := r.Context().Value(OperatorInfoCtx).(*domain.Operator)

	if req.FullName != nil {
		op.FullName = *req.FullName
	}
	if req.Email != nil {
		op.Email = *req.Email
	}
	if req.Role != nil {
		op.Role = domain.Role(*req.Role)
	}
	if req.IsActive != nil {
		op.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateOperator(op); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "operators_email_key":
				h.badRequest(w, r, errors.New("email already exists"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "failed to update operator, please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "operator updated", op)
}

func (h *Handler) DeleteOperator(w http.ResponseWriter, r *http.Request) {
	op := r.Context().Value(OperatorInfoCtx).(*domain.Operator)

	if err := h.repository.DeleteOperator(op.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "operator deleted", nil)
}

func (h *Handler) UpdateOperatorPassword(w http.ResponseWriter, r *http.Request) {
	op := r.Context().Value(OperatorInfoCtx).(*domain.Operator)

	var req struct {
		Password string `json:"password" validate:"required,min=8"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	op.PasswordHash = string(hashedPassword)
	if err := h.repository.UpdateOperator(op); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "password updated", nil)
}
