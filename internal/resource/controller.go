package resource

import (
	"errors"
	"net/http"
	"strconv"

	"Karyatra/be/internal/auth"

	"github.com/gin-gonic/gin"
)

type ControllerImpl struct {
	service Service
}

func NewControllerImpl(service Service) *ControllerImpl {
	return &ControllerImpl{service: service}
}

func (c *ControllerImpl) AddResource(ctx *gin.Context) {
	var req AddResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	id, err := c.service.AddResource(ctx.Request.Context(), req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add resource"})
		return
	}
	ctx.JSON(http.StatusCreated, AddResourceResponse{ID: id})
}

func (c *ControllerImpl) RecordFeedback(ctx *gin.Context) {
	resourceID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource id"})
		return
	}

	var req FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	req.ResourceID = resourceID
	req.UserID = auth.UserID(ctx)

	if err := c.service.RecordFeedback(ctx.Request.Context(), req); err != nil {
		ctx.JSON(http.StatusOK, gin.H{"success": false})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (c *ControllerImpl) RegisterRoutes(router *gin.Engine, requireAuth gin.HandlerFunc) {
	router.POST("/v1/resources", requireAuth, c.AddResource)
	router.POST("/v1/resources/:id/feedback", requireAuth, c.RecordFeedback)
}
