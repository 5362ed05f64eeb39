package handler

import (
	appsettlement "github.com/Renagang21/o4o-platform-sub111/internal/application/settlement"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/settlement"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/interfaces/http/dto"
	"github.com/Renagang21/o4o-platform-sub111/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SettlementHandler serves settlement batches, summaries and voucher retries
type SettlementHandler struct {
	BaseHandler
	settlements *appsettlement.Service
	sink        *appsettlement.SinkHandler
}

// NewSettlementHandler creates a new SettlementHandler. sink may be nil when the
// external sink is disabled; retry requests then fail with INVALID_STATE.
func NewSettlementHandler(settlements *appsettlement.Service, sink *appsettlement.SinkHandler) *SettlementHandler {
	return &SettlementHandler{settlements: settlements, sink: sink}
}

// Routes returns the settlement route group
func (h *SettlementHandler) Routes() []router.RouteRegistrar {
	g := router.NewDomainGroup("settlements", "/settlements").
		GET("/summary", h.Summary)
	g.Group("batches", "/batches").
		GET("", h.List).
		GET("/:id", h.Get).
		GET("/:id/commissions", h.Commissions).
		GET("/:id/history", h.History).
		POST("/:id/close", h.Close).
		POST("/:id/pay", h.Pay).
		POST("/:id/sink/retry", h.RetrySink)
	return []router.RouteRegistrar{g}
}

// Summary godoc
// @ID           getSettlementSummary
// @Summary      Get settlement summary
// @Description  Returns settled, pending and current period sales of a beneficiary
// @Tags         settlements
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        beneficiary_id  query  string  true  "Beneficiary ID"  format(uuid)
// @Param        settlement_type  query  string  true  "Settlement type"
// @Param        currency  query  string  true  "ISO 4217 currency code"
// @Success      200  {object}  dto.Response{data=settlement.Summary}
// @Failure      400  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /settlements/summary [get]
func (h *SettlementHandler) Summary(c *gin.Context) {
	var req dto.SummaryRequest
	if !h.bindQuery(c, &req) {
		return
	}
	summary, err := h.settlements.Summary(c.Request.Context(), appsettlement.SummaryInput{
		TenantID:       tenantOf(c),
		BeneficiaryID:  uuid.MustParse(req.BeneficiaryID),
		SettlementType: settlement.SettlementType(req.SettlementType),
		Currency:       req.Currency,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// List godoc
// @ID           listSettlementBatches
// @Summary      List settlement batches
// @Description  Returns a filtered page of settlement batches
// @Tags         settlements
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        page  query  integer  false  "Page number"
// @Param        page_size  query  integer  false  "Page size"
// @Param        order_by  query  string  false  "Sort column"
// @Param        order_dir  query  string  false  "Sort direction"  Enums(asc, desc)
// @Param        beneficiary_id  query  string  false  "Beneficiary ID"  format(uuid)
// @Param        settlement_type  query  string  false  "Settlement type"
// @Param        status  query  string  false  "Status"  Enums(OPEN, CLOSED, PAID)
// @Success      200  {object}  dto.Response{data=[]dto.BatchResponse}
// @Failure      400  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /settlements/batches [get]
func (h *SettlementHandler) List(c *gin.Context) {
	var req dto.ListBatchesRequest
	if !h.bindQuery(c, &req) {
		return
	}
	filter := settlement.BatchFilter{
		Filter:         filterOf(req.ListRequest),
		SettlementType: settlement.SettlementType(req.SettlementType),
		Status:         settlement.BatchStatus(req.Status),
	}
	var err error
	if filter.BeneficiaryID, err = parseOptionalUUID(req.BeneficiaryID, "beneficiary_id"); err != nil {
		h.HandleError(c, err)
		return
	}

	page, err := h.settlements.List(c.Request.Context(), tenantOf(c), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	items := make([]dto.BatchResponse, 0, len(page.Items))
	for _, b := range page.Items {
		items = append(items, dto.NewBatchResponse(b))
	}
	h.SuccessWithMeta(c, items, page.Total, page.Page, page.PageSize)
}

// Get godoc
// @ID           getSettlementBatchById
// @Summary      Get settlement batch by ID
// @Description  Returns one settlement batch
// @Tags         settlements
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=dto.BatchResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /settlements/batches/{id} [get]
func (h *SettlementHandler) Get(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	batch, err := h.settlements.Get(c.Request.Context(), tenantOf(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewBatchResponse(batch))
}

// Commissions godoc
// @ID           listSettlementBatchCommissions
// @Summary      List commissions of a batch
// @Description  Returns the commissions attached to a batch
// @Tags         settlements
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=[]dto.CommissionResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /settlements/batches/{id}/commissions [get]
func (h *SettlementHandler) Commissions(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	items, err := h.settlements.Commissions(c.Request.Context(), tenantOf(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewCommissionResponses(items))
}

// History godoc
// @ID           getSettlementBatchHistory
// @Summary      Get settlement batch audit trail
// @Description  Returns the audit trail of a batch
// @Tags         settlements
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=[]dto.AuditEntryResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /settlements/batches/{id}/history [get]
func (h *SettlementHandler) History(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	history, err := h.settlements.History(c.Request.Context(), tenantOf(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewAuditEntryResponses(history))
}

// Close godoc
// @ID           closeSettlementBatch
// @Summary      Close a settlement batch
// @Description  Freezes an OPEN batch once no attached commission is pending
// @Tags         settlements
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=dto.BatchResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /settlements/batches/{id}/close [post]
func (h *SettlementHandler) Close(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	batch, err := h.settlements.Close(c.Request.Context(), tenantOf(c), id, actorOf(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewBatchResponse(batch))
}

// Pay godoc
// @ID           paySettlementBatch
// @Summary      Mark a settlement batch paid
// @Description  Marks a CLOSED batch and its confirmed commissions paid
// @Tags         settlements
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=dto.BatchResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /settlements/batches/{id}/pay [post]
func (h *SettlementHandler) Pay(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	batch, err := h.settlements.MarkPaid(c.Request.Context(), tenantOf(c), id, actorOf(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewBatchResponse(batch))
}

// RetrySink godoc
// @ID           retrySettlementBatchSink
// @Summary      Resubmit batch vouchers
// @Description  Resubmits the vouchers of a batch that the external sink refused
// @Tags         settlements
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=[]dto.SinkRecordResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /settlements/batches/{id}/sink/retry [post]
func (h *SettlementHandler) RetrySink(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	if h.sink == nil {
		h.HandleError(c, shared.NewDomainError(shared.CodeInvalidState, "external sink is disabled"))
		return
	}
	records, err := h.sink.Retry(c.Request.Context(), tenantOf(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewSinkRecordResponses(records))
}
