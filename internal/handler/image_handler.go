package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cmcreport/internal/domain"
	"cmcreport/internal/service"
)

// Headers describing the display box of a processed image.
const (
	HeaderDisplayWidth  = "X-Display-Width"
	HeaderDisplayHeight = "X-Display-Height"
)

// ImageHandler previews the image normalizer.
type ImageHandler struct {
	imageService service.ImageService
	maxFileBytes int64
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(imageService service.ImageService, maxFileBytes int64) *ImageHandler {
	return &ImageHandler{imageService: imageService, maxFileBytes: maxFileBytes}
}

// Process handles POST /api/v1/images/process
// @Summary Normalize one image
// @Description Runs one image through the normalizer with the report layout for the given orientation and size
// @Tags images
// @Accept multipart/form-data
// @Produce image/jpeg
// @Produce image/png
// @Param file formData file true "Image"
// @Param rotation formData int false "Clockwise rotation, multiple of 90"
// @Param orientation formData string false "horizontal or vertical"
// @Param size formData string false "normal, mediana or grande"
// @Success 200 {file} binary "Processed image; display size in X-Display-Width/X-Display-Height"
// @Failure 400 {object} ErrorResponseBody "Invalid input"
// @Failure 422 {object} ErrorResponseBody "Unreadable image"
// @Router /images/process [post]
func (h *ImageHandler) Process(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}

	rotation := 0
	if raw := c.PostForm("rotation"); raw != "" {
		rotation, err = strconv.Atoi(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_SLOT", "rotation must be an integer")
			return
		}
	}

	evidence, err := readEvidence(header, h.maxFileBytes)
	if err != nil {
		HandleError(c, err)
		return
	}

	img, err := h.imageService.Process(c.Request.Context(), service.ProcessImageInput{
		Name:        evidence.Name,
		Data:        evidence.Data,
		Rotation:    rotation,
		Orientation: domain.Orientation(c.PostForm("orientation")),
		Size:        domain.SizeClass(c.PostForm("size")),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header(HeaderDisplayWidth, strconv.Itoa(img.DisplayWidth))
	c.Header(HeaderDisplayHeight, strconv.Itoa(img.DisplayHeight))
	c.Data(http.StatusOK, img.MimeType, img.Buffer)
}
