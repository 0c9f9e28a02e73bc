package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/config"
	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
	"github.com/Purvachakravarti/NaologicReflowProject/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// Everything below requires a logged-in operator.
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/operators", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateOperator)
			r.Get("/", h.GetAllOperators)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.operatorInfo)
				r.Get("/", h.GetOperatorInfo)
				r.With(h.preventOperateInitialOperator).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateOperator)
				r.With(h.preventOperateInitialOperator).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteOperator)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/password", h.UpdateOperatorPassword)
			})
		})

		r.Route("/work-centers", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RolePlanner})).Post("/", h.CreateWorkCenter)
			r.Get("/", h.GetAllWorkCenters)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.workCenter)
				r.Get("/", h.GetWorkCenter)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RolePlanner})).Patch("/", h.UpdateWorkCenter)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteWorkCenter)
			})
		})

		r.Route("/work-orders", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RolePlanner})).Post("/", h.CreateWorkOrder)
			r.Get("/", h.GetAllWorkOrders)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.workOrder)
				r.Get("/", h.GetWorkOrder)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RolePlanner})).Delete("/", h.DeleteWorkOrder)
			})
		})

		r.Route("/reflow-runs", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RolePlanner})).Post("/", h.TriggerReflow)
			r.Get("/latest", h.GetLatestReflowRun)
			r.Route("/{option}", func(r chi.Router) {
				r.Use(h.reflowRun)
				r.Get("/", h.GetReflowRun)
			})
		})
	})
}
