package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/essence-api/internal/application/usecase"
)

var _ usecase.FileStore = (*LocalFileStore)(nil)

// LocalFileStore guarda los archivos subidos en un directorio local plano,
// el mismo que cmd/api sirve estáticamente bajo la ruta pública de uploads.
type LocalFileStore struct {
	dir string
}

// NewLocalFileStore construye el store sobre dir.
func NewLocalFileStore(dir string) *LocalFileStore {
	return &LocalFileStore{dir: dir}
}

// Save escribe data en dir/name. Crea el directorio si no existe.
func (s *LocalFileStore) Save(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de uploads: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("escribir archivo: %w", err)
	}
	return nil
}
