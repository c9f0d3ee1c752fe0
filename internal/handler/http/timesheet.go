package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/crewops/crewops-backend-go/internal/domain/timesheet"
	"github.com/crewops/crewops-backend-go/internal/handler/http/response"
	"github.com/crewops/crewops-backend-go/internal/pkg/validator"
)

type TimesheetHandler interface {
	CreateEntry(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	GetWeeklyDashboard(w http.ResponseWriter, r *http.Request)
	GetWorkerWeeklyView(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// CreateEntry implements TimesheetHandler.
func (h *timesheetHandlerImpl) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CreateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create entry request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.CreateEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timesheet entry recorded", result)
}

// ListEntries implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := timesheet.EntryFilter{}

	if workerID := r.URL.Query().Get("worker_id"); workerID != "" {
		filter.WorkerID = &workerID
	}

	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}

	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}

	filter.Page, filter.Limit = paginationParams(r)

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.timesheetService.ListEntries(ctx, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetWeeklyDashboard implements TimesheetHandler.
//
// Note the range contract: start_date/end_date must come together, and the
// dashboard always shows the single Monday-anchored week containing
// start_date. Callers wanting an arbitrary audit span use the per-worker
// weekly view instead.
func (h *timesheetHandlerImpl) GetWeeklyDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := timesheet.DashboardFilter{}

	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}

	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}

	if workerID := r.URL.Query().Get("worker_id"); workerID != "" {
		filter.WorkerID = &workerID
	}

	filter.Page, filter.Limit = paginationParams(r)

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.GetWeeklyDashboard(ctx, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWorkerWeeklyView implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetWorkerWeeklyView(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	if !validator.IsValidUUID(workerID) {
		response.BadRequest(w, "workerID must be a valid UUID", nil)
		return
	}

	req := timesheet.WeeklyViewRequest{
		WorkerID:  workerID,
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.GetWorkerWeeklyView(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func paginationParams(r *http.Request) (page, limit int) {
	page = 1
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}

	limit = 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			limit = limitNum
		}
	}

	return page, limit
}
