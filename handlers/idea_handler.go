package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ideahub/models"
	"ideahub/services"
)

type IdeaHandler struct {
	ideaService services.IdeaService
}

func NewIdeaHandler(ideaService services.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

func (h *IdeaHandler) List(c *gin.Context) {
	var params models.IdeaListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ideas, err := h.ideaService.List(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ideas)
}

func (h *IdeaHandler) Create(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateIdeaRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Optional multipart upload; a missing file just means image_url is used.
	image, _ := c.FormFile("image")

	idea, err := h.ideaService.Create(userID.(uint), req, image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, idea)
}

func (h *IdeaHandler) Vote(c *gin.Context) {
	userID, _ := c.Get("user_id")
	ideaID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid idea ID"})
		return
	}

	// A malformed body binds as an empty vote, which the service treats as
	// a no-op.
	var req models.VoteRequest
	_ = c.ShouldBindJSON(&req)

	idea, err := h.ideaService.Vote(uint(ideaID), userID.(uint), req.VoteType)
	if err != nil {
		if errors.Is(err, services.ErrIdeaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, idea)
}

func (h *IdeaHandler) Report(c *gin.Context) {
	userID, _ := c.Get("user_id")
	ideaID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid idea ID"})
		return
	}

	var req models.ReportRequest
	_ = c.ShouldBindJSON(&req)

	report, err := h.ideaService.Report(uint(ideaID), userID.(uint), req.Description)
	if err != nil {
		if errors.Is(err, services.ErrIdeaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, report)
}

func (h *IdeaHandler) ListReports(c *gin.Context) {
	ideaID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid idea ID"})
		return
	}

	reports, err := h.ideaService.ListReports(uint(ideaID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (h *IdeaHandler) Edit(c *gin.Context) {
	userID, _ := c.Get("user_id")
	ideaID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid idea ID"})
		return
	}

	var req models.EditIdeaRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, _ := c.FormFile("image")

	idea, err := h.ideaService.Edit(uint(ideaID), userID.(uint), req, image)
	if err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, idea)
}

func (h *IdeaHandler) InlineEdit(c *gin.Context) {
	userID, _ := c.Get("user_id")
	ideaID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid idea ID"})
		return
	}

	var req models.InlineEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No description provided"})
		return
	}

	if err := h.ideaService.InlineEdit(uint(ideaID), userID.(uint), req.Description); err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *IdeaHandler) Delete(c *gin.Context) {
	userID, _ := c.Get("user_id")
	accountType, _ := c.Get("account_type")
	ideaID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid idea ID"})
		return
	}

	if err := h.ideaService.Delete(uint(ideaID), userID.(uint), accountType.(string)); err != nil {
		switch {
		case errors.Is(err, services.ErrIdeaNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Idea removed"})
}

func (h *IdeaHandler) DeleteReport(c *gin.Context) {
	reportID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	if err := h.ideaService.DeleteReport(uint(reportID)); err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Report deleted"})
}

// Moderation lists every idea with its reports attached; the route is gated
// to developers and admins.
func (h *IdeaHandler) Moderation(c *gin.Context) {
	ideas, err := h.ideaService.ModerationView()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ideas)
}
