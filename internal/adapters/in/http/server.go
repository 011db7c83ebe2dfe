// Package http exposes the assignment core over a REST API.
// It coordinates between HTTP handlers and application use cases, translating
// request bodies into commands and domain errors into status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/schedule"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the REST API of the assignment core.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	assignOrderHandler        commands.AssignOrderCommandHandler
	finishOrderHandler        commands.FinishOrderCommandHandler
	submitLeaveRequestHandler commands.SubmitLeaveRequestCommandHandler
	reviewLeaveRequestHandler commands.ReviewLeaveRequestCommandHandler

	// Query handlers
	getUnassignedOrdersHandler     queries.GetUnassignedOrdersQueryHandler
	getPendingLeaveRequestsHandler queries.GetPendingLeaveRequestsQueryHandler
	getWorkingDaysHandler          queries.GetWorkingDaysQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	finishOrderHandler commands.FinishOrderCommandHandler,
	submitLeaveRequestHandler commands.SubmitLeaveRequestCommandHandler,
	reviewLeaveRequestHandler commands.ReviewLeaveRequestCommandHandler,
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler,
	getPendingLeaveRequestsHandler queries.GetPendingLeaveRequestsQueryHandler,
	getWorkingDaysHandler queries.GetWorkingDaysQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:             createOrderHandler,
		assignOrderHandler:             assignOrderHandler,
		finishOrderHandler:             finishOrderHandler,
		submitLeaveRequestHandler:      submitLeaveRequestHandler,
		reviewLeaveRequestHandler:      reviewLeaveRequestHandler,
		getUnassignedOrdersHandler:     getUnassignedOrdersHandler,
		getPendingLeaveRequestsHandler: getPendingLeaveRequestsHandler,
		getWorkingDaysHandler:          getWorkingDaysHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/unassigned", s.GetUnassignedOrders)
	api.POST("/orders/:id/assign", s.AssignOrder)
	api.POST("/orders/:id/finish", s.FinishOrder)

	api.POST("/leave-requests", s.SubmitLeaveRequest)
	api.GET("/leave-requests/pending", s.GetPendingLeaveRequests)
	api.POST("/leave-requests/:id/review", s.ReviewLeaveRequest)

	api.GET("/workers/:id/working-days", s.GetWorkingDays)
}

// Error is the uniform error body of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the body of POST /orders.
type NewOrderRequest struct {
	City          string `json:"city"`
	Street        string `json:"street"`
	ServiceType   string `json:"serviceType"`
	Description   string `json:"description"`
	RequestedDate string `json:"requestedDate"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// UnassignedOrderResponse is one backlog entry of GET /orders/unassigned.
type UnassignedOrderResponse struct {
	ID            string `json:"id"`
	City          string `json:"city"`
	Street        string `json:"street"`
	CategoryCode  string `json:"categoryCode"`
	Urgent        bool   `json:"urgent"`
	RequestedDate string `json:"requestedDate"`
}

// NewLeaveRequestRequest is the body of POST /leave-requests.
type NewLeaveRequestRequest struct {
	WorkerID  string `json:"workerId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

// PendingLeaveRequestResponse is one entry of GET /leave-requests/pending.
type PendingLeaveRequestResponse struct {
	ID        string `json:"id"`
	WorkerID  string `json:"workerId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"createdAt"`
}

// ReviewLeaveRequestRequest is the body of POST /leave-requests/:id/review.
type ReviewLeaveRequestRequest struct {
	ReviewerID string `json:"reviewerId"`
	Decision   string `json:"decision"`
}

// WorkingDayResponse is one entry of GET /workers/:id/working-days.
type WorkingDayResponse struct {
	Date      string `json:"date"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
}

// CreateOrder handles POST /api/v1/orders. The order is classified on the way
// in, so a service type or city outside the taxonomy is rejected.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	requestedDate, err := time.Parse(time.DateOnly, req.RequestedDate)
	if err != nil {
		return badRequest(ctx, "Invalid requestedDate, expected YYYY-MM-DD")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.City, req.Street, req.ServiceType,
		req.Description, requestedDate)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, services.ErrInvalidOrderInput) {
			return badRequest(ctx, "Order does not match the taxonomy: "+err.Error())
		}
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetUnassignedOrders handles GET /api/v1/orders/unassigned.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	query := queries.NewGetUnassignedOrdersQuery()

	orders, err := s.getUnassignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]UnassignedOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = UnassignedOrderResponse{
			ID:            o.ID.String(),
			City:          o.City,
			Street:        o.Street,
			CategoryCode:  o.CategoryCode,
			Urgent:        o.Urgent,
			RequestedDate: o.RequestedDate.Format(time.DateOnly),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignOrder handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAssignOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment request: "+err.Error())
	}

	if err = s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "Order not found")
		case errors.Is(err, order.ErrOrderNotClassified):
			return conflict(ctx, "Order is not classified yet")
		case errors.Is(err, commands.ErrOrderAlreadyAssigned):
			return conflict(ctx, "Order was assigned concurrently")
		case errors.Is(err, services.ErrNoEligibleWorker):
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:    http.StatusUnprocessableEntity,
				Message: "No capable worker is available on the requested date",
			})
		case errors.Is(err, commands.ErrAssignmentContention):
			return conflict(ctx, "Assignment contention, try again")
		}
		return internalError(ctx, "Failed to assign order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinishOrder handles POST /api/v1/orders/:id/finish.
func (s *Server) FinishOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewFinishOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid finish request: "+err.Error())
	}

	if err = s.finishOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "Order not found")
		case errors.Is(err, order.ErrInvalidTransition):
			return conflict(ctx, "Only assigned orders can be finished")
		}
		return internalError(ctx, "Failed to finish order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitLeaveRequest handles POST /api/v1/leave-requests.
func (s *Server) SubmitLeaveRequest(ctx echo.Context) error {
	var req NewLeaveRequestRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	workerID, err := kernel.UUIDFromString(req.WorkerID)
	if err != nil {
		return badRequest(ctx, "Invalid workerId")
	}

	period, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return badRequest(ctx, "Invalid leave period: "+err.Error())
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewSubmitLeaveRequestCommand(requestID, workerID, period, req.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid leave request: "+err.Error())
	}

	if err = s.submitLeaveRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "Worker not found")
		case errors.Is(err, commands.ErrOverlappingRequest):
			return conflict(ctx, "An active leave request already covers this period")
		}
		return internalError(ctx, "Failed to submit leave request")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: requestID.String()})
}

// GetPendingLeaveRequests handles GET /api/v1/leave-requests/pending.
func (s *Server) GetPendingLeaveRequests(ctx echo.Context) error {
	query := queries.NewGetPendingLeaveRequestsQuery()

	requests, err := s.getPendingLeaveRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve leave requests")
	}

	response := make([]PendingLeaveRequestResponse, len(requests))
	for i, r := range requests {
		response[i] = PendingLeaveRequestResponse{
			ID:        r.ID.String(),
			WorkerID:  r.WorkerID.String(),
			StartDate: r.StartDate.Format(time.DateOnly),
			EndDate:   r.EndDate.Format(time.DateOnly),
			Reason:    r.Reason,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReviewLeaveRequest handles POST /api/v1/leave-requests/:id/review.
func (s *Server) ReviewLeaveRequest(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid leave request id")
	}

	var req ReviewLeaveRequestRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	reviewerID, err := kernel.UUIDFromString(req.ReviewerID)
	if err != nil {
		return badRequest(ctx, "Invalid reviewerId")
	}

	decision, err := commands.DecisionFromString(req.Decision)
	if err != nil {
		return badRequest(ctx, "Invalid decision, expected approve or reject")
	}

	cmd, err := commands.NewReviewLeaveRequestCommand(requestID, reviewerID, decision)
	if err != nil {
		return badRequest(ctx, "Invalid review request: "+err.Error())
	}

	if err = s.reviewLeaveRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrForbidden):
			return ctx.JSON(http.StatusForbidden, Error{
				Code:    http.StatusForbidden,
				Message: "Only managers can review leave requests",
			})
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "Leave request not found")
		case errors.Is(err, schedule.ErrAlreadyReviewed):
			return conflict(ctx, "Leave request was already reviewed")
		}
		return internalError(ctx, "Failed to review leave request")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetWorkingDays handles GET /api/v1/workers/:id/working-days?from=...&to=...
func (s *Server) GetWorkingDays(ctx echo.Context) error {
	workerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid worker id")
	}

	period, err := parsePeriod(ctx.QueryParam("from"), ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid period: "+err.Error())
	}

	query, err := queries.NewGetWorkingDaysQuery(workerID, period)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	days, err := s.getWorkingDaysHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve working days")
	}

	response := make([]WorkingDayResponse, len(days))
	for i, d := range days {
		response[i] = WorkingDayResponse{
			Date:      d.Date.Format(time.DateOnly),
			StartHour: d.StartHour,
			EndHour:   d.EndHour,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func parsePeriod(start, end string) (kernel.DateRange, error) {
	startDate, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return kernel.DateRange{}, err
	}

	endDate, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return kernel.DateRange{}, err
	}

	return kernel.NewDateRange(startDate, endDate)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: message})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, Error{Code: http.StatusConflict, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
