package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/marcelomiracles/storefront-service/internal/catalog"
	"github.com/marcelomiracles/storefront-service/internal/entities"
	"github.com/marcelomiracles/storefront-service/internal/service"
	"github.com/marcelomiracles/storefront-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, order entities.Order, initData string) (int64, error)
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
}

type AdminService interface {
	Activate(ctx context.Context, params service.ActivateAdminParams) error
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
	admins   AdminService
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, admins AdminService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		orders:   orders,
		admins:   admins,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/admin/activate", h.ActivateAdmin)
		r.Post("/orders", h.CreateOrder)
		r.Get("/orders/{order_id}", h.GetOrderByID)
		r.Get("/products", h.ListProducts)
	})
}

// ActivateAdmin активирует администратора.
// @Summary      Активировать администратора
// @Description  Делает пользователя администратором после проверки подписи initData
// @Tags         admin
// @Accept       json
// @Param        request body ActivateAdminRequest true "Данные активации"
// @Success      200  {object}  ActivateAdminResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Подпись неверна или лимит исчерпан"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/activate [post]
func (h *HTTPHandler) ActivateAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ActivateAdminRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.admins.Activate(ctx, service.ActivateAdminParams{
		UserID:   req.UserID,
		Username: req.Username,
		InitData: req.InitData,
	})

	if errors.Is(err, entities.ErrInvalidInitData) {
		rejectedInitData.Inc()
		utils.WriteError(w, "invalid telegram data", http.StatusForbidden)
		return
	}
	if errors.Is(err, entities.ErrAdminLimitReached) {
		utils.WriteError(w, "admin limit reached", http.StatusForbidden)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to activate admin", slog.Any("error", err), slog.Int64("user_id", req.UserID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	adminsActivated.Inc()
	utils.WriteJSON(w, ActivateAdminResponse{Success: true, Message: "admin activated"}, http.StatusOK)
}

// CreateOrder оформляет заказ.
// @Summary      Создать заказ
// @Description  Сохраняет заказ и уведомляет администраторов
// @Tags         orders
// @Accept       json
// @Param        request body CreateOrderRequest true "Данные заказа"
// @Success      200  {object}  CreateOrderResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Подпись неверна"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	orderID, err := h.orders.CreateOrder(ctx, OrderRequestToEntity(req), req.InitData)

	if errors.Is(err, entities.ErrInvalidInitData) {
		rejectedInitData.Inc()
		utils.WriteError(w, "invalid telegram data", http.StatusForbidden)
		return
	}
	if err != nil {
		ordersFailed.Inc()
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err), slog.Int64("user_id", req.UserID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, CreateOrderResponse{Success: true, OrderID: orderID}, http.StatusOK)
}

// GetOrderByID возвращает заказ по id.
// @Summary      Получить заказ
// @Tags         orders
// @Param        order_id   path      int  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.orders.GetOrderByID(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.Int64("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListProducts возвращает каталог.
// @Summary      Список товаров
// @Tags         catalog
// @Param        category  query  string  false  "Категория"
// @Param        q         query  string  false  "Подстрока названия"
// @Success      200  {array}  Product
// @Router       /products [get]
func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	products := catalog.Filter(category, query)

	result := make([]Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductEntityToJSON(p))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}
