package handler

import (
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

func (s *AnalyticsHandler) Dashboard(c *gin.Context) {
	data, err := s.analyticsSvc.Dashboard(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, data)
}
