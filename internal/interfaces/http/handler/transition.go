package handler

import (
	"github.com/Renagang21/o4o-platform-sub111/internal/application/transition"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/interfaces/http/dto"
	"github.com/Renagang21/o4o-platform-sub111/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
)

// TransitionHandler exposes the state machines and the audit trail of guarded entities
type TransitionHandler struct {
	BaseHandler
	engine *transition.Engine
}

// NewTransitionHandler creates a new TransitionHandler
func NewTransitionHandler(engine *transition.Engine) *TransitionHandler {
	return &TransitionHandler{engine: engine}
}

// Routes returns the transition and audit route groups
func (h *TransitionHandler) Routes() []router.RouteRegistrar {
	transitions := router.NewDomainGroup("transitions", "/transitions").
		GET("", h.EntityTypes).
		GET("/:entityType", h.Allowed)

	audit := router.NewDomainGroup("audit", "/audit").
		GET("/:entityType/:id", h.History)

	return []router.RouteRegistrar{transitions, audit}
}

// EntityTypes godoc
// @ID           listTransitionEntityTypes
// @Summary      List guarded entity types
// @Description  Lists the entity types whose status changes are guarded
// @Tags         transitions
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Success      200  {object}  dto.Response{data=[]string}
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /transitions [get]
func (h *TransitionHandler) EntityTypes(c *gin.Context) {
	h.Success(c, h.engine.EntityTypes())
}

// Allowed godoc
// @ID           getAllowedTransitions
// @Summary      List statuses of an entity type
// @Description  Lists every status of an entity type, and with ?status= the statuses reachable from it.
// @Tags         transitions
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        entityType  path  string  true  "Entity type"
// @Success      200  {object}  dto.Response{data=dto.TransitionsResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /transitions/{entityType} [get]
func (h *TransitionHandler) Allowed(c *gin.Context) {
	entityType := c.Param("entityType")
	states, err := h.engine.States(entityType)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	resp := dto.TransitionsResponse{EntityType: entityType, States: states}

	if status := c.Query("status"); status != "" {
		allowed, err := h.engine.AllowedTransitions(entityType, status)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		resp.Status = status
		resp.Allowed = allowed
	}
	h.Success(c, resp)
}

// History godoc
// @ID           getAuditTrail
// @Summary      Get the audit trail of an entity
// @Description  Returns the audit trail of one entity of the caller's tenant
// @Tags         audit
// @Produce      json
// @Param        X-Tenant-ID  header  string  true   "Tenant ID"  format(uuid)
// @Param        X-Actor      header  string  false  "Caller recorded in audit rows"
// @Param        entityType  path  string  true  "Entity type"
// @Param        id  path  string  true  "Resource ID"  format(uuid)
// @Success      200  {object}  dto.Response{data=[]dto.AuditEntryResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Security     TenantHeader
// @Router       /audit/{entityType}/{id} [get]
func (h *TransitionHandler) History(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	entries, err := h.engine.History(c.Request.Context(), c.Param("entityType"), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	tenantID := tenantOf(c)
	owned := make([]shared.AuditEntry, 0, len(entries))
	for _, e := range entries {
		if e.TenantID == tenantID {
			owned = append(owned, e)
		}
	}
	h.Success(c, dto.NewAuditEntryResponses(owned))
}
