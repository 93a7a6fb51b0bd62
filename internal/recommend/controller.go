package recommend

import (
	"net/http"

	"Karyatra/be/internal/skills"

	"github.com/gin-gonic/gin"
)

type ControllerImpl struct {
	service Service
	// skillExtractor is nil when no LLM provider is configured; requests
	// must then carry explicit skills.
	skillExtractor skills.Extractor
}

func NewControllerImpl(service Service, skillExtractor skills.Extractor) *ControllerImpl {
	return &ControllerImpl{service: service, skillExtractor: skillExtractor}
}

func (c *ControllerImpl) GetRecommendations(ctx *gin.Context) {
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if len(req.Skills) == 0 && c.skillExtractor != nil && req.JobContext != "" {
		extracted, err := c.skillExtractor.ExtractSkills(ctx.Request.Context(), req.JobContext)
		if err != nil {
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "failed to extract skills from job context"})
			return
		}
		req.Skills = extracted
	}
	if len(req.Skills) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "skills: at least one skill is required"})
		return
	}

	recommendations, err := c.service.GetRecommendations(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build recommendations"})
		return
	}
	ctx.JSON(http.StatusOK, Response{Recommendations: recommendations})
}

func (c *ControllerImpl) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/recommendations", c.GetRecommendations)
}
