package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mdrafsun/Advance-tracker/internal/core/ports/services"
)

type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

func registerReportRoutes(rg *gin.RouterGroup, rs portssvc.ReportSvcFacade) {
	h := newReportHandler(rs)
	rg.GET("/report", h.getReport)
}

func (h *reportHandler) getReport(c *gin.Context) {
	report, err := h.reportService.BuildReport(
		c.Request.Context(),
		c.Query("type"),
		c.Query("userId"),
		c.Query("start"),
		c.Query("end"),
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
