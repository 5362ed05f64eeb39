package handler

import (
	"strings"
	"time"

	apppayment "github.com/Renagang21/o4o-platform-sub111/internal/application/payment"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/eventlog"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/payment"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/interfaces/http/dto"
	"github.com/Renagang21/o4o-platform-sub111/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultReplayLimit = 100

// PaymentHandler serves order payment state and the inbound payment event intake
type PaymentHandler struct {
	BaseHandler
	orders *apppayment.OrderPaymentService
	intake *apppayment.IntakeService
	scope  string
	now    func() time.Time
}

// NewPaymentHandler creates a new PaymentHandler. Events posted without a scope
// are routed under scope.
func NewPaymentHandler(orders *apppayment.OrderPaymentService, intake *apppayment.IntakeService, scope string) *PaymentHandler {
	return &PaymentHandler{orders: orders, intake: intake, scope: scope, now: time.Now}
}

// Routes returns the order payment and payment event route groups
func (h *PaymentHandler) Routes() []router.RouteRegistrar {
	orders := router.NewDomainGroup("order-payments", "/order-payments").
		POST("", h.Register).
		GET("/:orderId", h.Get).
		GET("/:orderId/history", h.History).
		POST("/:orderId/cancel", h.Cancel)

	events := router.NewDomainGroup("payment-events", "/payments/events").
		POST("", h.Receive).
		GET("", h.ListEvents).
		GET("/stats", h.Stats).
		POST("/replay", h.Replay)

	return []router.RouteRegistrar{orders, events}
}

// Register godoc
// @ID           registerOrderPayment
// @Summary      Register an order awaiting payment
// @Description  Records an order awaiting payment
// @Tags         order-payments
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        request  body  dto.RegisterOrderPaymentRequest  true  "Request body"
// @Success      201  {object}  dto.Response{data=dto.OrderPaymentResponse}
// @Failure      400  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /order-payments [post]
func (h *PaymentHandler) Register(c *gin.Context) {
	var req dto.RegisterOrderPaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	order, err := h.orders.Register(c.Request.Context(), apppayment.RegisterOrderInput{
		TenantID: tenantOf(c),
		OrderID:  uuid.MustParse(req.OrderID),
		Amount:   decimal.RequireFromString(req.Amount),
		Currency: strings.ToUpper(req.Currency),
		Actor:    actorOf(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.NewOrderPaymentResponse(order))
}

// Get godoc
// @ID           getOrderPayment
// @Summary      Get order payment state
// @Description  Returns the payment state of an order
// @Tags         order-payments
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        orderId  path  string  true  "Order ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=dto.OrderPaymentResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /order-payments/{orderId} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	orderID, ok := h.pathUUID(c, "orderId")
	if !ok {
		return
	}
	order, err := h.orders.Get(c.Request.Context(), tenantOf(c), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewOrderPaymentResponse(order))
}

// History godoc
// @ID           getOrderPaymentHistory
// @Summary      Get order payment audit trail
// @Description  Returns the audit trail of an order payment
// @Tags         order-payments
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        orderId  path  string  true  "Order ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=[]dto.AuditEntryResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /order-payments/{orderId}/history [get]
func (h *PaymentHandler) History(c *gin.Context) {
	orderID, ok := h.pathUUID(c, "orderId")
	if !ok {
		return
	}
	history, err := h.orders.History(c.Request.Context(), tenantOf(c), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewAuditEntryResponses(history))
}

// Cancel godoc
// @ID           cancelOrderPayment
// @Summary      Cancel an unpaid order
// @Description  Cancels an order that has not been paid
// @Tags         order-payments
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        orderId  path  string  true  "Order ID"  format(uuid)
// @Param        request  body  dto.ReasonRequest  true  "Request body"
// @Success      200  {object}  dto.Response{data=dto.OrderPaymentResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /order-payments/{orderId}/cancel [post]
func (h *PaymentHandler) Cancel(c *gin.Context) {
	orderID, ok := h.pathUUID(c, "orderId")
	if !ok {
		return
	}
	var req dto.ReasonRequest
	if !h.bindJSON(c, &req) {
		return
	}
	order, err := h.orders.Cancel(c.Request.Context(), tenantOf(c), orderID, req.Reason, actorOf(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewOrderPaymentResponse(order))
}

// Receive godoc
// @ID           receivePaymentEvent
// @Summary      Receive a payment event
// @Description  Accepts one payment event. A published event answers 200; an event logged as failed answers 202 since it stays available for replay.
// @Tags         payment-events
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        request  body  dto.PaymentEventRequest  true  "Request body"
// @Success      200  {object}  dto.Response{data=payment.ReceiveResult}
// @Success      202  {object}  dto.Response{data=payment.ReceiveResult}
// @Failure      400  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /payments/events [post]
func (h *PaymentHandler) Receive(c *gin.Context) {
	var req dto.PaymentEventRequest
	if !h.bindJSON(c, &req) {
		return
	}
	event, err := h.eventFrom(tenantOf(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result, err := h.intake.Receive(c.Request.Context(), event)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if result.Status == eventlog.StatusFailed {
		h.Accepted(c, result)
		return
	}
	h.Success(c, result)
}

// ListEvents godoc
// @ID           listPaymentEvents
// @Summary      List logged payment events
// @Description  Returns a page of the caller's logged payment events
// @Tags         payment-events
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        page  query  integer  false  "Page number"
// @Param        page_size  query  integer  false  "Page size"
// @Param        order_by  query  string  false  "Sort column"
// @Param        order_dir  query  string  false  "Sort direction"  Enums(asc, desc)
// @Param        status  query  string  false  "Status"  Enums(pending, published, failed)
// @Param        event_type  query  string  false  "Event type"
// @Param        order_id  query  string  false  "Order ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=[]dto.EventLogEntryResponse}
// @Failure      400  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /payments/events [get]
func (h *PaymentHandler) ListEvents(c *gin.Context) {
	var req dto.ListEventsRequest
	if !h.bindQuery(c, &req) {
		return
	}
	tenantID := tenantOf(c)
	filter := eventlog.ListFilter{
		Filter:    filterOf(req.ListRequest),
		TenantID:  &tenantID,
		Status:    eventlog.Status(req.Status),
		EventType: req.EventType,
	}
	var err error
	if filter.OrderID, err = parseOptionalUUID(req.OrderID, "order_id"); err != nil {
		h.HandleError(c, err)
		return
	}

	page, err := h.intake.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, dto.NewEventLogEntryResponses(page.Items), page.Total, page.Page, page.PageSize)
}

// Stats godoc
// @ID           getPaymentEventStats
// @Summary      Count payment events by status
// @Description  Counts logged payment events per status
// @Tags         payment-events
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Success      200  {object}  dto.Response{data=map[string]int}
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /payments/events/stats [get]
func (h *PaymentHandler) Stats(c *gin.Context) {
	stats, err := h.intake.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// Replay godoc
// @ID           replayPaymentEvents
// @Summary      Replay failed payment events
// @Description  Dispatches failed event log entries again
// @Tags         payment-events
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        limit  query  integer  false  "Maximum entries to replay"
// @Success      200  {object}  dto.Response{data=payment.ReplayResult}
// @Failure      400  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /payments/events/replay [post]
func (h *PaymentHandler) Replay(c *gin.Context) {
	var req dto.ReplayRequest
	if !h.bindQuery(c, &req) {
		return
	}
	limit := req.Limit
	if limit == 0 {
		limit = defaultReplayLimit
	}
	result, err := h.intake.Replay(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *PaymentHandler) eventFrom(tenantID uuid.UUID, req dto.PaymentEventRequest) (shared.DomainEvent, error) {
	scope := req.Scope
	if scope == "" {
		scope = h.scope
	}
	orderID := uuid.MustParse(req.OrderID)

	if req.Type == payment.EventTypePaymentFailed {
		return payment.NewPaymentFailedEvent(req.EventID, tenantID, scope, req.PaymentID, orderID, req.ErrorCode, req.ErrorMessage), nil
	}

	if req.Amount == "" {
		return nil, shared.NewValidationError("amount", "is required for payment.completed")
	}
	approvedAt := h.now().UTC()
	if req.ApprovedAt != nil {
		approvedAt = req.ApprovedAt.UTC()
	}
	return payment.NewPaymentCompletedEvent(req.EventID, tenantID, scope, req.PaymentID, req.TransactionID, orderID,
		decimal.RequireFromString(req.Amount), req.Method, approvedAt, req.Metadata), nil
}
