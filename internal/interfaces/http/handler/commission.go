package handler

import (
	"strings"

	appcommission "github.com/Renagang21/o4o-platform-sub111/internal/application/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/interfaces/http/dto"
	"github.com/Renagang21/o4o-platform-sub111/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionHandler serves the commission ledger and its policies
type CommissionHandler struct {
	BaseHandler
	commissions *appcommission.Service
	policies    *appcommission.PolicyService
}

// NewCommissionHandler creates a new CommissionHandler
func NewCommissionHandler(commissions *appcommission.Service, policies *appcommission.PolicyService) *CommissionHandler {
	return &CommissionHandler{commissions: commissions, policies: policies}
}

// Routes returns the commission and policy route groups
func (h *CommissionHandler) Routes() []router.RouteRegistrar {
	commissions := router.NewDomainGroup("commissions", "/commissions").
		POST("", h.Create).
		GET("", h.List).
		GET("/:id", h.Get).
		GET("/:id/history", h.History).
		POST("/:id/confirm", h.Confirm).
		POST("/:id/cancel", h.Cancel).
		POST("/:id/adjust", h.Adjust).
		PATCH("/:id/metadata", h.Enrich)

	policies := router.NewDomainGroup("policies", "/policies").
		POST("", h.CreatePolicy).
		GET("/:id", h.GetPolicy).
		POST("/:id/deactivate", h.DeactivatePolicy)

	return []router.RouteRegistrar{commissions, policies}
}

// Create godoc
// @ID           createCommission
// @Summary      Record a commission
// @Description  Records the commission of an attributed sale
// @Tags         commissions
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        request  body  dto.CreateCommissionRequest  true  "Request body"
// @Success      201  {object}  dto.Response{data=dto.CommissionResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /commissions [post]
func (h *CommissionHandler) Create(c *gin.Context) {
	var req dto.CreateCommissionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	in := appcommission.CreateInput{
		Conversion: commission.Conversion{
			ConversionID:    req.ConversionID,
			TenantID:        tenantOf(c),
			BeneficiaryID:   uuid.MustParse(req.BeneficiaryID),
			BeneficiaryType: commission.BeneficiaryType(req.BeneficiaryType),
			OrderID:         uuid.MustParse(req.OrderID),
			OrderAmount:     decimal.RequireFromString(req.OrderAmount),
			Currency:        strings.ToUpper(req.Currency),
		},
		PolicyID: uuid.MustParse(req.PolicyID),
		Actor:    actorOf(c),
	}
	if req.ProductID != "" {
		in.Conversion.ProductID = uuid.MustParse(req.ProductID)
	}

	created, err := h.commissions.CreateFromConversion(c.Request.Context(), in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.NewCommissionResponse(created))
}

// List godoc
// @ID           listCommissions
// @Summary      List commissions
// @Description  Returns a filtered page of commissions
// @Tags         commissions
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        page  query  integer  false  "Page number"
// @Param        page_size  query  integer  false  "Page size"
// @Param        order_by  query  string  false  "Sort column"
// @Param        order_dir  query  string  false  "Sort direction"  Enums(asc, desc)
// @Param        beneficiary_id  query  string  false  "Beneficiary ID"  format(uuid)
// @Param        beneficiary_type  query  string  false  "Beneficiary type"  Enums(PARTNER, SELLER, SUPPLIER)
// @Param        status  query  string  false  "Status"  Enums(PENDING, CONFIRMED, PAID, CANCELLED)
// @Param        batch_id  query  string  false  "Settlement batch ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=[]dto.CommissionResponse}
// @Failure      400  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /commissions [get]
func (h *CommissionHandler) List(c *gin.Context) {
	var req dto.ListCommissionsRequest
	if !h.bindQuery(c, &req) {
		return
	}

	filter := commission.ListFilter{
		Filter:          filterOf(req.ListRequest),
		BeneficiaryType: commission.BeneficiaryType(req.BeneficiaryType),
		Status:          commission.Status(req.Status),
	}
	var err error
	if filter.BeneficiaryID, err = parseOptionalUUID(req.BeneficiaryID, "beneficiary_id"); err != nil {
		h.HandleError(c, err)
		return
	}
	if filter.BatchID, err = parseOptionalUUID(req.BatchID, "batch_id"); err != nil {
		h.HandleError(c, err)
		return
	}

	page, err := h.commissions.List(c.Request.Context(), tenantOf(c), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, dto.NewCommissionResponses(page.Items), page.Total, page.Page, page.PageSize)
}

// Get godoc
// @ID           getCommissionById
// @Summary      Get commission by ID
// @Description  Returns one commission
// @Tags         commissions
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=dto.CommissionResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /commissions/{id} [get]
func (h *CommissionHandler) Get(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	found, err := h.commissions.GetByID(c.Request.Context(), tenantOf(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewCommissionResponse(found))
}

// History godoc
// @ID           getCommissionHistory
// @Summary      Get commission audit trail
// @Description  Returns the audit trail of a commission
// @Tags         commissions
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=[]dto.AuditEntryResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /commissions/{id}/history [get]
func (h *CommissionHandler) History(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	history, err := h.commissions.History(c.Request.Context(), tenantOf(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewAuditEntryResponses(history))
}

// Confirm godoc
// @ID           confirmCommission
// @Summary      Confirm a commission
// @Description  Confirms a commission whose hold period has elapsed
// @Tags         commissions
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=dto.CommissionResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /commissions/{id}/confirm [post]
func (h *CommissionHandler) Confirm(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	updated, err := h.commissions.Confirm(c.Request.Context(), tenantOf(c), id, actorOf(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewCommissionResponse(updated))
}

// Cancel godoc
// @ID           cancelCommission
// @Summary      Cancel a commission
// @Description  Cancels an unpaid commission
// @Tags         commissions
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Param        request  body  dto.ReasonRequest  true  "Request body"
// @Success      200  {object}  dto.Response{data=dto.CommissionResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /commissions/{id}/cancel [post]
func (h *CommissionHandler) Cancel(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ReasonRequest
	if !h.bindJSON(c, &req) {
		return
	}
	updated, err := h.commissions.Cancel(c.Request.Context(), tenantOf(c), id, req.Reason, actorOf(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewCommissionResponse(updated))
}

// Adjust godoc
// @ID           adjustCommission
// @Summary      Adjust a commission amount
// @Description  Changes the amount of an unpaid commission
// @Tags         commissions
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Param        request  body  dto.AdjustCommissionRequest  true  "Request body"
// @Success      200  {object}  dto.Response{data=dto.CommissionResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /commissions/{id}/adjust [post]
func (h *CommissionHandler) Adjust(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.AdjustCommissionRequest
	if !h.bindJSON(c, &req) {
		return
	}
	updated, err := h.commissions.AdjustAmount(c.Request.Context(), tenantOf(c), id,
		decimal.RequireFromString(req.Amount), req.Reason, actorOf(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewCommissionResponse(updated))
}

// Enrich godoc
// @ID           enrichCommission
// @Summary      Set commission metadata
// @Description  Sets one metadata entry without changing the status
// @Tags         commissions
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Param        request  body  dto.EnrichCommissionRequest  true  "Request body"
// @Success      200  {object}  dto.Response{data=dto.CommissionResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /commissions/{id}/metadata [patch]
func (h *CommissionHandler) Enrich(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.EnrichCommissionRequest
	if !h.bindJSON(c, &req) {
		return
	}
	updated, err := h.commissions.Enrich(c.Request.Context(), tenantOf(c), id, req.Key, req.Value)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewCommissionResponse(updated))
}

// CreatePolicy godoc
// @ID           createPolicy
// @Summary      Create a commission policy
// @Description  Creates a commission policy
// @Tags         policies
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        request  body  dto.CreatePolicyRequest  true  "Request body"
// @Success      201  {object}  dto.Response{data=dto.PolicyResponse}
// @Failure      400  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /policies [post]
func (h *CommissionHandler) CreatePolicy(c *gin.Context) {
	var req dto.CreatePolicyRequest
	if !h.bindJSON(c, &req) {
		return
	}
	in := appcommission.CreatePolicyInput{
		TenantID:        tenantOf(c),
		Name:            req.Name,
		PolicyType:      req.PolicyType,
		CalculationType: commission.CalculationType(req.CalculationType),
		HoldDays:        req.HoldDays,
	}
	if req.RatePercent != nil {
		rate := decimal.RequireFromString(*req.RatePercent)
		in.RatePercent = &rate
	}
	if req.FixedAmount != nil {
		amount := decimal.RequireFromString(*req.FixedAmount)
		in.FixedAmount = &amount
	}

	policy, err := h.policies.Create(c.Request.Context(), in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.NewPolicyResponse(policy))
}

// GetPolicy godoc
// @ID           getPolicyById
// @Summary      Get policy by ID
// @Description  Returns one commission policy
// @Tags         policies
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=dto.PolicyResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /policies/{id} [get]
func (h *CommissionHandler) GetPolicy(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	policy, err := h.policies.Get(c.Request.Context(), tenantOf(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewPolicyResponse(policy))
}

// DeactivatePolicy godoc
// @ID           deactivatePolicy
// @Summary      Deactivate a policy
// @Description  Stops a policy from being used for new commissions
// @Tags         policies
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=dto.PolicyResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /policies/{id}/deactivate [post]
func (h *CommissionHandler) DeactivatePolicy(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	policy, err := h.policies.Deactivate(c.Request.Context(), tenantOf(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewPolicyResponse(policy))
}
