package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
	"github.com/JonnyWalker81/wellness/backend/internal/service"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile handles GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Profile", "")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// CreateProfile handles POST /api/v1/profile
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req models.ProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profileService.CreateProfile(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err, "Profile", "")
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// UpdateProfile handles PUT /api/v1/profile/:id
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id := c.Param("id")
	if !validID(c, id) {
		return
	}

	var req models.ProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, err, "Profile", id)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteProfile handles DELETE /api/v1/profile/:id
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id := c.Param("id")
	if !validID(c, id) {
		return
	}

	if err := h.profileService.DeleteProfile(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "Profile", id)
		return
	}

	c.Status(http.StatusNoContent)
}
