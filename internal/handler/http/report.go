package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/report"
	"github.com/cmlabs-hris/attendance-portal/internal/handler/http/response"
)

type ReportHandler interface {
	// All employees on one date
	DayView(w http.ResponseWriter, r *http.Request)

	// One employee over a month, preset or custom range
	EmployeeView(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// DayView handles GET /api/views/day
func (h *reportHandlerImpl) DayView(w http.ResponseWriter, r *http.Request) {
	req := report.DayViewRequest{
		Date: r.URL.Query().Get("date"),
	}

	result, err := h.reportService.DayView(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeView handles GET /api/views/employees/{id}
func (h *reportHandlerImpl) EmployeeView(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	markSundays, ok := boolQuery(r, "mark_sundays")
	if !ok {
		response.BadRequest(w, "invalid mark_sundays parameter", nil)
		return
	}

	q := r.URL.Query()
	req := report.EmployeeViewRequest{
		EmployeeID:  id,
		Month:       q.Get("month"),
		Preset:      q.Get("preset"),
		StartDate:   q.Get("start_date"),
		EndDate:     q.Get("end_date"),
		MarkSundays: markSundays,
	}

	result, err := h.reportService.EmployeeView(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
