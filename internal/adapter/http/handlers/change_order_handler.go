package handlers

import (
	"errors"
	"log"
	"net/http"

	request "aperture_studio/internal/adapter/http/dto/request"
	response "aperture_studio/internal/adapter/http/dto/response"
	"aperture_studio/internal/domain/entities"
	"aperture_studio/internal/usecase"
	"aperture_studio/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidChangeOrderPayload = pkg.NewDomainErrorSimple("INVALID_CHANGE_ORDER_INPUT", "Invalid change order payload", http.StatusBadRequest)

// ChangeOrderHandler handles HTTP requests for the change-order workflow.

type ChangeOrderHandler struct {
	usecase usecase.IChangeOrderUseCase
}

func NewChangeOrderHandler(uc usecase.IChangeOrderUseCase) *ChangeOrderHandler {
	return &ChangeOrderHandler{usecase: uc}
}

// CreateChangeOrder submits a new change order in pending state.
func (h *ChangeOrderHandler) CreateChangeOrder(c *gin.Context) {
	var payload request.ChangeOrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		log.Printf("[changeorder][handler] create failed job_id=%s err=%v", payload.JobID, err)
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[changeorder][handler] create success change_order_id=%s type=%s", created.ID, created.Type)

	c.JSON(http.StatusCreated, response.FromChangeOrder(created))
}

// ProcessChangeOrder runs cost analysis, approval and deposit orchestration.
// The response body always carries a human-readable message.
func (h *ChangeOrderHandler) ProcessChangeOrder(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[changeorder][handler] process start change_order_id=%s", id)

	result, err := h.usecase.Process(c.Request.Context(), id)
	if err != nil {
		log.Printf("[changeorder][handler] process failed change_order_id=%s err=%v", id, err)
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[changeorder][handler] process done change_order_id=%s approved=%t requires_deposit=%t", id, result.Approved, result.RequiresDeposit)

	c.JSON(http.StatusOK, response.FromWorkflowResult(result))
}

// GetChangeOrder returns a change order with its cost impact, if analyzed.
func (h *ChangeOrderHandler) GetChangeOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeOrder(o))
}

// RejectChangeOrder applies a manual rejection with a reason.
func (h *ChangeOrderHandler) RejectChangeOrder(c *gin.Context) {
	var payload request.ChangeOrderRejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[changeorder][handler] reject success change_order_id=%s", o.ID)

	c.JSON(http.StatusOK, response.FromChangeOrder(o))
}

// GetDeposit returns the latest deposit for a change order.
func (h *ChangeOrderHandler) GetDeposit(c *gin.Context) {
	d, err := h.usecase.LatestDeposit(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMicroDeposit(d))
}

func mapChangeOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidChangePayload),
		errors.Is(err, usecase.ErrInvalidChangeOrderID),
		errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidRejectionReason):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChangeOrderNotFound):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_NOT_FOUND", "Change order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMicroDepositNotFound):
		return pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Deposit not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChangeOrderNotPending):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_NOT_PENDING", "Change order already decided", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
