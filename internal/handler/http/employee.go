package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-portal/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-portal/internal/domain/report"
	"github.com/cmlabs-hris/attendance-portal/internal/handler/http/response"
)

type EmployeeHandler interface {
	ListActive(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	ExportMonthlyReport(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	reportService   report.ReportService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, reportService report.ReportService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		reportService:   reportService,
	}
}

// ListActive implements EmployeeHandler.
func (h *employeeHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.NewEmployeeResponses(employees))
}

// ListAll implements EmployeeHandler.
func (h *employeeHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.NewEmployeeResponses(employees))
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	result, err := h.employeeService.GetWithAttendance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyReport handles GET /api/employees/{id}/monthly-report
func (h *employeeHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	req := report.MonthlyReportRequest{
		EmployeeID: id,
		Month:      r.URL.Query().Get("month"),
	}

	result, err := h.reportService.MonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportMonthlyReport handles GET /api/employees/{id}/monthly-report/export
func (h *employeeHandlerImpl) ExportMonthlyReport(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = report.FormatXLSX
	}

	req := report.ExportRequest{
		MonthlyReportRequest: report.MonthlyReportRequest{
			EmployeeID: id,
			Month:      r.URL.Query().Get("month"),
		},
		Format: format,
	}

	file, err := h.reportService.ExportMonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file.Filename, file.ContentType, file.Content)
}
