package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bizmanage/payroll-grid-go/internal/domain/salarygrid"
	"github.com/bizmanage/payroll-grid-go/internal/handler/http/response"
)

// uploads larger than this are rejected before parsing
const maxSheetSize = 10 << 20 // 10 MiB

type SalaryGridHandler interface {
	Recalculate(w http.ResponseWriter, r *http.Request)
	Autofill(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
}

type salaryGridHandlerImpl struct {
	gridService salarygrid.GridService
}

func NewSalaryGridHandler(gridService salarygrid.GridService) SalaryGridHandler {
	return &salaryGridHandlerImpl{gridService: gridService}
}

func (h *salaryGridHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	var req salarygrid.RecalculateGridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.gridService.Recalculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryGridHandlerImpl) Autofill(w http.ResponseWriter, r *http.Request) {
	var req salarygrid.AutofillGridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.gridService.Autofill(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryGridHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxSheetSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Spreadsheet file is required", nil)
		return
	}
	defer file.Close()

	result, err := h.gridService.ImportSheet(r.Context(), file, header.Filename, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryGridHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	var req salarygrid.RecalculateGridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	content, filename, err := h.gridService.ExportSheet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func (h *salaryGridHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	var req salarygrid.SubmitGridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.gridService.ValidateGrid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryGridHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req salarygrid.SubmitGridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.gridService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary sheet submitted", result)
}

func periodFromQuery(w http.ResponseWriter, r *http.Request) (month, year int, ok bool) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month query parameter is required", nil)
		return 0, 0, false
	}
	year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year query parameter is required", nil)
		return 0, 0, false
	}
	return month, year, true
}
