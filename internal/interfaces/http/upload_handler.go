package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/essence-api/internal/application/dto"
	"github.com/jhoicas/essence-api/internal/application/usecase"
)

// UploadHandler recibe la imagen de un producto vía multipart (campo "file").
type UploadHandler struct {
	uc *usecase.UploadUseCase
}

// NewUploadHandler construye el handler de upload.
func NewUploadHandler(uc *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir imagen de producto (admin)
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Imagen (content type image/*)"
// @Success      200   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UPLOAD_REJECTED", Message: "no se envió ningún archivo"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Save(fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
