package api

import (
	"net/http"

	"stormfins/club-app/internal/storage"

	"github.com/gin-gonic/gin"
)

// MediaHandler issues presigned URLs for avatar uploads. The handler is
// wired even when object storage is disabled so clients get a clear answer
// instead of a missing route.
type MediaHandler struct {
	files storage.FileStorage // nil when object storage is not configured
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(files storage.FileStorage) *MediaHandler {
	return &MediaHandler{files: files}
}

type AvatarUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type AvatarUploadResponse struct {
	UploadURL   string `json:"uploadUrl"`
	DownloadURL string `json:"downloadUrl"`
	ObjectKey   string `json:"objectKey"`
}

// CreateAvatarUploadURL returns a presigned PUT URL for the caller's avatar
// plus the matching download URL to store on the user record afterwards.
func (h *MediaHandler) CreateAvatarUploadURL(c *gin.Context) {
	if h.files == nil {
		abortWithError(c, http.StatusServiceUnavailable, "Object storage is not configured")
		return
	}
	var req AvatarUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	callerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify caller")
		return
	}

	key := storage.AvatarObjectKey(callerID, req.ContentType)
	uploadURL, err := h.files.GeneratePresignedUploadURL(c.Request.Context(), key, req.ContentType, 0)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not create upload URL")
		return
	}
	downloadURL, err := h.files.GeneratePresignedDownloadURL(c.Request.Context(), key, 0)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not create download URL")
		return
	}

	c.JSON(http.StatusOK, AvatarUploadResponse{
		UploadURL:   uploadURL,
		DownloadURL: downloadURL,
		ObjectKey:   key,
	})
}
