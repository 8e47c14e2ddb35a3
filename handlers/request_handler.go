package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"ideahub/helper"
	"ideahub/models"
	"ideahub/services"
)

type RequestHandler struct {
	requestService services.RequestService
	Helper         *helper.HTTPHelper
}

func NewRequestHandler(requestService services.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

func (h *RequestHandler) Submit(c *gin.Context) {
	userID, _ := c.Get("user_id")
	email, _ := c.Get("email")

	var req models.DeveloperRequestForm
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.requestService.Submit(userID.(uint), email.(string), req.Reason); err != nil {
		h.Helper.SendBadRequest(c, "Could not submit request", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Your request has been sent successfully!", h.Helper.EmptyJsonMap())
}

func (h *RequestHandler) List(c *gin.Context) {
	requests, err := h.requestService.List()
	if err != nil {
		h.Helper.SendBadRequest(c, "Could not load requests", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", requests)
}

func (h *RequestHandler) Approve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid request ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.requestService.Approve(uint(id)); err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			h.Helper.SendNotFoundError(c, "Request not found.", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, "Could not approve request", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Request approved!", h.Helper.EmptyJsonMap())
}

// Approve checks existence, Reject does not: rejecting an already-processed
// request still reports success.
func (h *RequestHandler) Reject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid request ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.requestService.Reject(uint(id)); err != nil {
		h.Helper.SendBadRequest(c, "Could not reject request", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Request rejected.", h.Helper.EmptyJsonMap())
}
