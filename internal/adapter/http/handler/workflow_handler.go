package handler

import (
	"transfer-workflow-service/internal/adapter/http/dto"
	"transfer-workflow-service/internal/adapter/http/middleware"
	"transfer-workflow-service/internal/core/domain"
	"transfer-workflow-service/internal/core/ports"
	"transfer-workflow-service/pkg/apperror"
	"transfer-workflow-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkflowHandler handles the transfer workflow endpoints.
type WorkflowHandler struct {
	mgr ports.WorkflowManager
}

// NewWorkflowHandler creates a new WorkflowHandler.
func NewWorkflowHandler(mgr ports.WorkflowManager) *WorkflowHandler {
	return &WorkflowHandler{mgr: mgr}
}

// identity pulls the authenticated user and bearer token out of the
// request context.
func identity(c *gin.Context) (userID, bearer string, ok bool) {
	userID = c.GetString(middleware.CtxUserID)
	bearer = c.GetString(middleware.CtxBearer)
	if userID == "" || bearer == "" {
		response.Error(c, apperror.ErrInvalidToken())
		return "", "", false
	}
	return userID, bearer, true
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid workflow id"))
		return uuid.Nil, false
	}
	return id, true
}

// Create handles POST /api/v1/workflows.
func (h *WorkflowHandler) Create(c *gin.Context) {
	userID, bearer, ok := identity(c)
	if !ok {
		return
	}

	snap, err := h.mgr.Create(c.Request.Context(), userID, bearer)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, snap)
}

// Get handles GET /api/v1/workflows/:id.
func (h *WorkflowHandler) Get(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	snap, err := h.mgr.Get(id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snap)
}

// UpdateForm handles PATCH /api/v1/workflows/:id/form.
func (h *WorkflowHandler) UpdateForm(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	patch := ports.FormPatch{
		Amount:              req.Amount,
		FromAccountID:       req.FromAccountID,
		ToInternalAccountID: req.ToInternalAccountID,
		AccountHolderName:   req.AccountHolderName,
		RoutingCode:         req.RoutingCode,
		AccountNumber:       req.AccountNumber,
		Memo:                req.Memo,
	}
	if req.TransferType != nil {
		t := domain.TransferType(*req.TransferType)
		patch.TransferType = &t
	}
	if req.AccountType != nil {
		at := domain.AccountType(*req.AccountType)
		patch.AccountType = &at
	}

	snap, err := h.mgr.UpdateForm(id, userID, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snap)
}

// QuickAmounts handles GET /api/v1/workflows/:id/quick-amounts.
func (h *WorkflowHandler) QuickAmounts(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	amounts, err := h.mgr.QuickAmounts(id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"amounts": amounts})
}

// OpenReview handles POST /api/v1/workflows/:id/review.
func (h *WorkflowHandler) OpenReview(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	snap, err := h.mgr.OpenReview(id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snap)
}

// CancelReview handles DELETE /api/v1/workflows/:id/review.
func (h *WorkflowHandler) CancelReview(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	snap, err := h.mgr.CancelReview(id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snap)
}

// Confirm handles POST /api/v1/workflows/:id/confirm.
func (h *WorkflowHandler) Confirm(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	snap, err := h.mgr.Confirm(c.Request.Context(), id, userID, req.PIN)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snap)
}

// SetupPIN handles POST /api/v1/workflows/:id/pin.
func (h *WorkflowHandler) SetupPIN(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.SetupPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	snap, err := h.mgr.SetupPIN(c.Request.Context(), id, userID, req.PIN, req.ConfirmPin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snap)
}

// Close handles DELETE /api/v1/workflows/:id.
func (h *WorkflowHandler) Close(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.mgr.Close(id, userID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
