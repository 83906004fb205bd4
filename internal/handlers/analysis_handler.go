package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/item-analysis-service/internal/models"
	"github.com/SAP-F-2025/item-analysis-service/internal/services"
	"github.com/SAP-F-2025/item-analysis-service/internal/utils"
)

// AnalysisHandler accepts spreadsheet uploads and returns the analysis
// tables. This is the boundary to the presentation layer; rendering is not
// our concern.
type AnalysisHandler struct {
	BaseHandler
	service services.AnalysisService
}

func NewAnalysisHandler(service services.AnalysisService, logger utils.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateAnalysis handles POST /api/v1/analyses.
//
// Multipart form: "info" (item-metadata sheet, optional), "answers"
// (answer sheets, repeatable), "rosters" (grade rosters, repeatable), and an
// optional "config" field holding an AnalysisConfig JSON document whose set
// fields override the defaults. "?format=xlsx" returns a workbook instead of
// JSON.
func (h *AnalysisHandler) CreateAnalysis(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "multipart form expected",
			Details: err.Error(),
		})
		return
	}

	cfg, err := parseConfig(c.PostForm("config"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "invalid config",
			Details: err.Error(),
		})
		return
	}

	req := &services.AnalysisRequest{Config: cfg}

	if infoFiles := form.File["info"]; len(infoFiles) > 0 {
		f, err := readUpload(infoFiles[0])
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		req.ItemInfo = &f
	}
	for _, fh := range form.File["answers"] {
		f, err := readUpload(fh)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		req.AnswerSheets = append(req.AnswerSheets, f)
	}
	for _, fh := range form.File["rosters"] {
		f, err := readUpload(fh)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		req.GradeRosters = append(req.GradeRosters, f)
	}

	result, err := h.service.Analyze(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if c.Query("format") == "xlsx" {
		data, err := h.service.ExportResults(c.Request.Context(), result)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="analysis.xlsx"`)
		c.Data(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "analysis completed",
		Data:    result,
	})
}

func parseConfig(raw string) (models.AnalysisConfig, error) {
	cfg := models.DefaultAnalysisConfig()
	if raw == "" {
		return cfg, nil
	}
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// readUpload loads one multipart file into memory. Failures here are the
// client's problem, not ours, so they map to a 400.
func readUpload(fh *multipart.FileHeader) (services.NamedFile, error) {
	f, err := fh.Open()
	if err != nil {
		return services.NamedFile{}, fmt.Errorf("%w: upload %q unreadable: %v", services.ErrBadRequest, fh.Filename, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return services.NamedFile{}, fmt.Errorf("%w: upload %q unreadable: %v", services.ErrBadRequest, fh.Filename, err)
	}
	return services.NamedFile{Name: fh.Filename, Content: content}, nil
}
