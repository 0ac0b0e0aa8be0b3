package controllers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"paisalocal/internal/models/request_models"
	"paisalocal/internal/services"
	"paisalocal/pkg/utils"
)

const maxUploadBytes = 10 << 20

type MediaController struct {
	mediaService services.MediaServiceInterface
}

func NewMediaController(mediaService services.MediaServiceInterface) *MediaController {
	return &MediaController{mediaService: mediaService}
}

// Upload handles POST /media (multipart form, fields "file" and "name").
func (mc *MediaController) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing file")
		return
	}
	defer file.Close()

	name := c.PostForm("name")
	if name == "" {
		name = header.Filename
	}
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing asset name")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read file")
		return
	}
	if len(data) > maxUploadBytes {
		utils.RespondError(c, http.StatusRequestEntityTooLarge, "File exceeds 10MB limit")
		return
	}

	asset, err := mc.mediaService.Upload(c.Request.Context(), name, header.Header.Get("Content-Type"), data)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, asset, "Asset uploaded")
}

// List handles GET /media.
func (mc *MediaController) List(c *gin.Context) {
	assets, err := mc.mediaService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, assets, "Fetched assets successfully")
}

// Delete handles DELETE /media/*path.
func (mc *MediaController) Delete(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing asset path")
		return
	}

	if err := mc.mediaService.Delete(c.Request.Context(), path); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Asset deleted")
}

// ServeFile handles GET /media/file/*path for locally stored assets.
func (mc *MediaController) ServeFile(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")

	asset, err := mc.mediaService.GetLocalFile(c.Request.Context(), path)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	contentType := asset.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, asset.Data)
}

// SetToken handles PUT /media/token.
func (mc *MediaController) SetToken(c *gin.Context) {
	var req request_models.SetStorageTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	mc.mediaService.SetToken(req.Token)
	utils.RespondSuccess(c, nil, "Storage token updated")
}
