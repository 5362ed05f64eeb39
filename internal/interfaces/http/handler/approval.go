package handler

import (
	"context"

	appapproval "github.com/Renagang21/o4o-platform-sub111/internal/application/approval"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/approval"
	"github.com/Renagang21/o4o-platform-sub111/internal/interfaces/http/dto"
	"github.com/Renagang21/o4o-platform-sub111/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ApprovalHandler serves seller authorizations and catalog item reviews
type ApprovalHandler struct {
	BaseHandler
	authorizations *appapproval.AuthorizationService
	catalog        *appapproval.CatalogService
}

// NewApprovalHandler creates a new ApprovalHandler
func NewApprovalHandler(authorizations *appapproval.AuthorizationService, catalog *appapproval.CatalogService) *ApprovalHandler {
	return &ApprovalHandler{authorizations: authorizations, catalog: catalog}
}

// Routes returns the authorization and catalog item route groups
func (h *ApprovalHandler) Routes() []router.RouteRegistrar {
	authorizations := router.NewDomainGroup("authorizations", "/authorizations").
		POST("", h.RequestAuthorization).
		GET("", h.ListAuthorizations).
		GET("/:id", h.GetAuthorization).
		GET("/:id/history", h.AuthorizationHistory).
		POST("/:id/approve", h.ApproveAuthorization).
		POST("/:id/reject", h.RejectAuthorization).
		POST("/:id/revoke", h.RevokeAuthorization).
		POST("/:id/re-request", h.ReRequestAuthorization)

	catalog := router.NewDomainGroup("catalog-items", "/catalog-items").
		POST("", h.CreateCatalogItem).
		GET("", h.ListCatalogItems).
		GET("/:id", h.GetCatalogItem).
		GET("/:id/history", h.CatalogItemHistory).
		POST("/:id/submit", h.SubmitCatalogItem).
		POST("/:id/approve", h.ApproveCatalogItem).
		POST("/:id/draft", h.ReturnCatalogItemToDraft).
		POST("/:id/reject", h.RejectCatalogItem).
		POST("/:id/retire", h.RetireCatalogItem)

	return []router.RouteRegistrar{authorizations, catalog}
}

// RequestAuthorization godoc
// @ID           requestSellerAuthorization
// @Summary      Request a seller authorization
// @Description  Asks for permission to sell a product. A rejected seller inside the cooldown window gets COOLDOWN_ACTIVE with the days remaining.
// @Tags         authorizations
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        request  body  dto.RequestAuthorizationRequest  true  "Request body"
// @Success      201  {object}  dto.Response{data=dto.AuthorizationResponse}
// @Failure      400  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /authorizations [post]
func (h *ApprovalHandler) RequestAuthorization(c *gin.Context) {
	var req dto.RequestAuthorizationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	a, err := h.authorizations.Request(c.Request.Context(), appapproval.RequestInput{
		TenantID:  tenantOf(c),
		SellerID:  uuid.MustParse(req.SellerID),
		ProductID: uuid.MustParse(req.ProductID),
		Actor:     actorOf(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.NewAuthorizationResponse(a))
}

// ListAuthorizations godoc
// @ID           listSellerAuthorizations
// @Summary      List seller authorizations
// @Description  Returns a filtered page of seller authorizations
// @Tags         authorizations
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        page  query  integer  false  "Page number"
// @Param        page_size  query  integer  false  "Page size"
// @Param        order_by  query  string  false  "Sort column"
// @Param        order_dir  query  string  false  "Sort direction"  Enums(asc, desc)
// @Param        seller_id  query  string  false  "Seller ID"  format(uuid)
// @Param        product_id  query  string  false  "Product ID"  format(uuid)
// @Param        status  query  string  false  "Status"  Enums(REQUESTED, APPROVED, REJECTED, REVOKED)
// @Success      200  {object}  dto.Response{data=[]dto.AuthorizationResponse}
// @Failure      400  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /authorizations [get]
func (h *ApprovalHandler) ListAuthorizations(c *gin.Context) {
	var req dto.ListAuthorizationsRequest
	if !h.bindQuery(c, &req) {
		return
	}
	filter := approval.AuthorizationFilter{
		Filter: filterOf(req.ListRequest),
		Status: approval.AuthorizationStatus(req.Status),
	}
	var err error
	if filter.SellerID, err = parseOptionalUUID(req.SellerID, "seller_id"); err != nil {
		h.HandleError(c, err)
		return
	}
	if filter.ProductID, err = parseOptionalUUID(req.ProductID, "product_id"); err != nil {
		h.HandleError(c, err)
		return
	}

	page, err := h.authorizations.List(c.Request.Context(), tenantOf(c), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	items := make([]dto.AuthorizationResponse, 0, len(page.Items))
	for _, a := range page.Items {
		items = append(items, dto.NewAuthorizationResponse(a))
	}
	h.SuccessWithMeta(c, items, page.Total, page.Page, page.PageSize)
}

// GetAuthorization godoc
// @ID           getSellerAuthorizationById
// @Summary      Get seller authorization by ID
// @Description  Returns one seller authorization
// @Tags         authorizations
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=dto.AuthorizationResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /authorizations/{id} [get]
func (h *ApprovalHandler) GetAuthorization(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	a, err := h.authorizations.Get(c.Request.Context(), tenantOf(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewAuthorizationResponse(a))
}

// AuthorizationHistory godoc
// @ID           getSellerAuthorizationHistory
// @Summary      Get seller authorization audit trail
// @Description  Returns the audit trail of a seller authorization
// @Tags         authorizations
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=[]dto.AuditEntryResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /authorizations/{id}/history [get]
func (h *ApprovalHandler) AuthorizationHistory(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	history, err := h.authorizations.History(c.Request.Context(), tenantOf(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewAuditEntryResponses(history))
}

// ApproveAuthorization godoc
// @ID           approveSellerAuthorization
// @Summary      Approve a seller authorization
// @Description  Records the supplier's or the platform's approval. The request is granted once both have approved.
// @Tags         authorizations
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Param        request  body  dto.ApproveAuthorizationRequest  true  "Request body"
// @Success      200  {object}  dto.Response{data=dto.AuthorizationResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /authorizations/{id}/approve [post]
func (h *ApprovalHandler) ApproveAuthorization(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ApproveAuthorizationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	a, err := h.authorizations.Approve(c.Request.Context(), tenantOf(c), id, approval.ApproverRole(req.Role), actorOf(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewAuthorizationResponse(a))
}

// RejectAuthorization godoc
// @ID           rejectSellerAuthorization
// @Summary      Reject a seller authorization
// @Description  Refuses a pending request and starts the cooldown
// @Tags         authorizations
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Param        request  body  dto.RejectAuthorizationRequest  true  "Request body"
// @Success      200  {object}  dto.Response{data=dto.AuthorizationResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /authorizations/{id}/reject [post]
func (h *ApprovalHandler) RejectAuthorization(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.RejectAuthorizationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	a, err := h.authorizations.Reject(c.Request.Context(), tenantOf(c), id, req.Reason, req.CooldownDays, actorOf(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewAuthorizationResponse(a))
}

// RevokeAuthorization godoc
// @ID           revokeSellerAuthorization
// @Summary      Revoke a seller authorization
// @Description  Permanently withdraws an approved authorization
// @Tags         authorizations
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Param        request  body  dto.ReasonRequest  true  "Request body"
// @Success      200  {object}  dto.Response{data=dto.AuthorizationResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /authorizations/{id}/revoke [post]
func (h *ApprovalHandler) RevokeAuthorization(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ReasonRequest
	if !h.bindJSON(c, &req) {
		return
	}
	a, err := h.authorizations.Revoke(c.Request.Context(), tenantOf(c), id, req.Reason, actorOf(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewAuthorizationResponse(a))
}

// ReRequestAuthorization godoc
// @ID           reRequestSellerAuthorization
// @Summary      Re-request a rejected authorization
// @Description  Asks again after a rejection once the cooldown ended
// @Tags         authorizations
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=dto.AuthorizationResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /authorizations/{id}/re-request [post]
func (h *ApprovalHandler) ReRequestAuthorization(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	a, err := h.authorizations.ReRequest(c.Request.Context(), tenantOf(c), id, actorOf(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewAuthorizationResponse(a))
}

// CreateCatalogItem godoc
// @ID           createCatalogItem
// @Summary      Draft a catalog item
// @Description  Drafts a catalog item
// @Tags         catalog-items
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        request  body  dto.CreateCatalogItemRequest  true  "Request body"
// @Success      201  {object}  dto.Response{data=dto.CatalogItemResponse}
// @Failure      400  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /catalog-items [post]
func (h *ApprovalHandler) CreateCatalogItem(c *gin.Context) {
	var req dto.CreateCatalogItemRequest
	if !h.bindJSON(c, &req) {
		return
	}
	item, err := h.catalog.Create(c.Request.Context(), appapproval.CreateCatalogItemInput{
		TenantID:   tenantOf(c),
		SupplierID: uuid.MustParse(req.SupplierID),
		ProductID:  uuid.MustParse(req.ProductID),
		Name:       req.Name,
		Actor:      actorOf(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.NewCatalogItemResponse(item))
}

// ListCatalogItems godoc
// @ID           listCatalogItems
// @Summary      List catalog items
// @Description  Returns a filtered page of catalog items
// @Tags         catalog-items
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        page  query  integer  false  "Page number"
// @Param        page_size  query  integer  false  "Page size"
// @Param        order_by  query  string  false  "Sort column"
// @Param        order_dir  query  string  false  "Sort direction"  Enums(asc, desc)
// @Param        supplier_id  query  string  false  "Supplier ID"  format(uuid)
// @Param        status  query  string  false  "Status"  Enums(draft, pending, approved, rejected, retired)
// @Success      200  {object}  dto.Response{data=[]dto.CatalogItemResponse}
// @Failure      400  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /catalog-items [get]
func (h *ApprovalHandler) ListCatalogItems(c *gin.Context) {
	var req dto.ListCatalogItemsRequest
	if !h.bindQuery(c, &req) {
		return
	}
	filter := approval.CatalogItemFilter{
		Filter: filterOf(req.ListRequest),
		Status: approval.CatalogItemStatus(req.Status),
	}
	var err error
	if filter.SupplierID, err = parseOptionalUUID(req.SupplierID, "supplier_id"); err != nil {
		h.HandleError(c, err)
		return
	}

	page, err := h.catalog.List(c.Request.Context(), tenantOf(c), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	items := make([]dto.CatalogItemResponse, 0, len(page.Items))
	for _, i := range page.Items {
		items = append(items, dto.NewCatalogItemResponse(i))
	}
	h.SuccessWithMeta(c, items, page.Total, page.Page, page.PageSize)
}

// GetCatalogItem godoc
// @ID           getCatalogItemById
// @Summary      Get catalog item by ID
// @Description  Returns one catalog item
// @Tags         catalog-items
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=dto.CatalogItemResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /catalog-items/{id} [get]
func (h *ApprovalHandler) GetCatalogItem(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	item, err := h.catalog.Get(c.Request.Context(), tenantOf(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewCatalogItemResponse(item))
}

// CatalogItemHistory godoc
// @ID           getCatalogItemHistory
// @Summary      Get catalog item audit trail
// @Description  Returns the audit trail of a catalog item
// @Tags         catalog-items
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=[]dto.AuditEntryResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /catalog-items/{id}/history [get]
func (h *ApprovalHandler) CatalogItemHistory(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	history, err := h.catalog.History(c.Request.Context(), tenantOf(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewAuditEntryResponses(history))
}

// RejectCatalogItem godoc
// @ID           rejectCatalogItem
// @Summary      Reject a catalog item
// @Description  Refuses a pending catalog item
// @Tags         catalog-items
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Param        request  body  dto.ReasonRequest  true  "Request body"
// @Success      200  {object}  dto.Response{data=dto.CatalogItemResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /catalog-items/{id}/reject [post]
func (h *ApprovalHandler) RejectCatalogItem(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ReasonRequest
	if !h.bindJSON(c, &req) {
		return
	}
	item, err := h.catalog.Reject(c.Request.Context(), tenantOf(c), id, req.Reason, actorOf(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewCatalogItemResponse(item))
}

// RetireCatalogItem godoc
// @ID           retireCatalogItem
// @Summary      Retire a catalog item
// @Description  Withdraws an approved catalog item
// @Tags         catalog-items
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Param        request  body  dto.OptionalReasonRequest  true  "Request body"
// @Success      200  {object}  dto.Response{data=dto.CatalogItemResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /catalog-items/{id}/retire [post]
func (h *ApprovalHandler) RetireCatalogItem(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.OptionalReasonRequest
	if c.Request.ContentLength > 0 && !h.bindJSON(c, &req) {
		return
	}
	item, err := h.catalog.Retire(c.Request.Context(), tenantOf(c), id, req.Reason, actorOf(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewCatalogItemResponse(item))
}

// SubmitCatalogItem godoc
// @ID           submitCatalogItem
// @Summary      Submit a catalog item for review
// @Description  Sends a draft catalog item to review
// @Tags         catalog-items
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=dto.CatalogItemResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /catalog-items/{id}/submit [post]
func (h *ApprovalHandler) SubmitCatalogItem(c *gin.Context) {
	h.applyCatalogTransition(c, h.catalog.Submit)
}

// ApproveCatalogItem godoc
// @ID           approveCatalogItem
// @Summary      Approve a catalog item
// @Description  Approves a catalog item under review
// @Tags         catalog-items
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=dto.CatalogItemResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /catalog-items/{id}/approve [post]
func (h *ApprovalHandler) ApproveCatalogItem(c *gin.Context) {
	h.applyCatalogTransition(c, h.catalog.Approve)
}

// ReturnCatalogItemToDraft godoc
// @ID           returnCatalogItemToDraft
// @Summary      Return a catalog item to draft
// @Description  Sends a rejected catalog item back to draft
// @Tags         catalog-items
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=dto.CatalogItemResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Failure      422  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /catalog-items/{id}/draft [post]
func (h *ApprovalHandler) ReturnCatalogItemToDraft(c *gin.Context) {
	h.applyCatalogTransition(c, h.catalog.ReturnToDraft)
}

// applyCatalogTransition serves the catalog transitions that take no request body
func (h *ApprovalHandler) applyCatalogTransition(c *gin.Context, apply func(ctx context.Context, tenantID, id uuid.UUID, actor string) (*approval.CatalogItem, error)) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	item, err := apply(c.Request.Context(), tenantOf(c), id, actorOf(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewCatalogItemResponse(item))
}
