package checkout

import (
	"errors"
	"net/http"

	"beeos/internal/shared/utils/response"
	"beeos/internal/shows"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// currentUserID reads the user ID placed in context by the JWT middleware
func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userIDInterface, exists := ctx.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	userIDStr, ok := userIDInterface.(string)
	if !ok {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

func isAdmin(ctx *gin.Context) bool {
	roleInterface, _ := ctx.Get("user_role")
	role, _ := roleInterface.(string)
	return role == "ADMIN"
}

// StartSession handles POST /api/v1/checkout/session
func (c *Controller) StartSession(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	session, err := c.service.StartSession(ctx.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, shows.ErrShowtimeNotFound) {
			response.Error(ctx, http.StatusNotFound, "Showtime not found", nil)
			return
		}
		if errors.Is(err, ErrNoSeats) {
			response.Error(ctx, http.StatusBadRequest, "No seats selected", nil)
			return
		}
		response.Error(ctx, http.StatusBadRequest, "Failed to start checkout", err.Error())
		return
	}

	response.Success(ctx, http.StatusCreated, "Checkout session started", session)
}

// GetSession handles GET /api/v1/checkout/session
func (c *Controller) GetSession(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	session, err := c.service.GetSession(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			response.Error(ctx, http.StatusNotFound, "No active checkout session", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to load checkout session", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Checkout session retrieved", session)
}

// Submit handles POST /api/v1/checkout/submit (multipart form)
func (c *Controller) Submit(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	req := SubmitRequest{
		PaymentMethod: ctx.PostForm("payment_method"),
		Bank:          ctx.PostForm("bank"),
	}

	// A missing file is a validation error, not a bad request
	if fh, err := ctx.FormFile("proof"); err == nil {
		req.Proof = fh
	}

	result, err := c.service.Submit(ctx.Request.Context(), userID, req)
	if err != nil {
		c.respondSubmitError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Booking submitted successfully", result)
}

func (c *Controller) respondSubmitError(ctx *gin.Context, err error) {
	switch KindOf(err) {
	case KindNoSession:
		response.Error(ctx, http.StatusNotFound, err.Error(), gin.H{"kind": KindNoSession})
	case KindSessionExpired:
		response.Error(ctx, http.StatusGone, err.Error(), gin.H{"kind": KindSessionExpired})
	case KindSeatTaken:
		response.Error(ctx, http.StatusConflict, err.Error(), gin.H{"kind": KindSeatTaken})
	case KindProofMissing, KindProofType, KindProofTooLarge, KindNoSeats, KindInvalidPayment:
		response.Error(ctx, http.StatusBadRequest, err.Error(), gin.H{"kind": KindOf(err)})
	default:
		response.Error(ctx, http.StatusInternalServerError, "Transaction failed: "+err.Error(), gin.H{"kind": KindOf(err)})
	}
}

// GetTransaction handles GET /api/v1/transactions/:id
func (c *Controller) GetTransaction(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid transaction ID", nil)
		return
	}

	txn, err := c.service.GetTransactionForUser(ctx.Request.Context(), id, userID, isAdmin(ctx))
	if err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			response.Error(ctx, http.StatusNotFound, "Transaction not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to get transaction", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Transaction retrieved successfully", txn)
}

// GetUserTransactions handles GET /api/v1/transactions
func (c *Controller) GetUserTransactions(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	var query TransactionListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	transactions, totalCount, err := c.service.GetUserTransactions(ctx.Request.Context(), userID, query)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to list transactions", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Transactions retrieved successfully", gin.H{
		"transactions": transactions,
		"total_count":  totalCount,
		"page":         query.Page,
		"limit":        query.Limit,
	})
}

// ListAllTransactions handles GET /api/v1/admin/transactions
func (c *Controller) ListAllTransactions(ctx *gin.Context) {
	var query TransactionListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	transactions, totalCount, err := c.service.ListAllTransactions(ctx.Request.Context(), query)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to list transactions", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Transactions retrieved successfully", gin.H{
		"transactions": transactions,
		"total_count":  totalCount,
		"page":         query.Page,
		"limit":        query.Limit,
	})
}

// GetTransactionByCode handles GET /api/v1/admin/transactions/code/:code,
// used when verifying a transfer against the booking code on the slip
func (c *Controller) GetTransactionByCode(ctx *gin.Context) {
	code := ctx.Param("code")
	if code == "" {
		response.Error(ctx, http.StatusBadRequest, "Booking code is required", nil)
		return
	}

	txn, err := c.service.GetTransactionByBookingCode(ctx.Request.Context(), code)
	if err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			response.Error(ctx, http.StatusNotFound, "Transaction not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to get transaction", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Transaction retrieved successfully", txn)
}

// UpdatePaymentStatus handles PATCH /api/v1/admin/transactions/:id/status
func (c *Controller) UpdatePaymentStatus(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid transaction ID", nil)
		return
	}

	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if !IsValidPaymentStatus(req.Status) {
		response.Error(ctx, http.StatusBadRequest, "Invalid payment status", nil)
		return
	}

	if err := c.service.UpdatePaymentStatus(ctx.Request.Context(), id, PaymentStatus(req.Status)); err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			response.Error(ctx, http.StatusNotFound, "Transaction not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to update payment status", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Payment status updated successfully", gin.H{
		"transaction_id": id.String(),
		"status":         req.Status,
	})
}
