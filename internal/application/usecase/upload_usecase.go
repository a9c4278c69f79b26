package usecase

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/essence-api/internal/application/dto"
	"github.com/jhoicas/essence-api/internal/domain"
)

// unsafeChars caracteres fuera de [A-Za-z0-9.-]; se eliminan del nombre
// original para evitar path traversal y nombres problemáticos en disco.
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// UploadUseCase recibe la imagen de un producto, la valida y la escribe en el
// FileStore bajo un nombre calificado con timestamp (resistente a colisiones).
type UploadUseCase struct {
	store      FileStore
	publicPath string // prefijo público, ej. /uploads
}

// NewUploadUseCase construye el caso de uso de upload.
func NewUploadUseCase(store FileStore, publicPath string) *UploadUseCase {
	return &UploadUseCase{store: store, publicPath: publicPath}
}

// Save valida que el archivo declare un content type de imagen, genera el
// nombre <unix-millis>-<nombre-sanitizado> y lo persiste. Devuelve la ruta
// pública que el cliente debe guardar en el producto dueño. El rechazo ocurre
// antes de cualquier escritura a disco.
func (uc *UploadUseCase) Save(originalName, contentType string, data []byte) (*dto.UploadResponse, error) {
	if len(data) == 0 {
		return nil, domain.ErrUploadRejected
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, domain.ErrUploadRejected
	}
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), unsafeChars.ReplaceAllString(originalName, ""))
	if err := uc.store.Save(filename, data); err != nil {
		return nil, err
	}
	return &dto.UploadResponse{ImagePath: path.Join(uc.publicPath, filename)}, nil
}
