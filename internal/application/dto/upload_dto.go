package dto

// UploadResponse ruta pública del archivo subido; el cliente la persiste en el
// campo image del producto dueño.
type UploadResponse struct {
	ImagePath string `json:"imagePath"`
}
