package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "luyona.backend/internal/domain/errors"
	"luyona.backend/internal/infrastructure/media"
	"luyona.backend/internal/interfaces/http/middleware"
	"luyona.backend/internal/interfaces/http/response"
	"luyona.backend/internal/usecases"
)

// UploadHandler handles the image upload endpoints
type UploadHandler struct {
	uploadUsecase *usecases.UploadUsecase
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadUsecase *usecases.UploadUsecase) *UploadHandler {
	return &UploadHandler{
		uploadUsecase: uploadUsecase,
	}
}

// UploadProfilePicture relays a profile picture to the media host
// POST /upload/profile-picture
func (h *UploadHandler) UploadProfilePicture(c *gin.Context) {
	h.upload(c, media.KindProfilePicture)
}

// UploadLifestyleImage relays a lifestyle image to the media host
// POST /upload/lifestyle-image
func (h *UploadHandler) UploadLifestyleImage(c *gin.Context) {
	h.upload(c, media.KindLifestyleImage)
}

func (h *UploadHandler) upload(c *gin.Context, kind media.Kind) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("image file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	result, err := h.uploadUsecase.Upload(
		c.Request.Context(),
		userID,
		kind,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		switch err {
		case domainerrors.ErrPayloadTooLarge:
			response.Error(c, domainerrors.PayloadTooLarge("Image exceeds the 20MB limit"))
		case domainerrors.ErrUnsupportedMedia:
			response.Error(c, domainerrors.UnsupportedMedia("Only image files are accepted"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}
