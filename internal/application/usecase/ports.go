package usecase

// FileStore es el puerto de almacenamiento de blobs para el caso de uso de
// upload; lo implementa storage.LocalFileStore. La interfaz evita que el caso
// de uso dependa del filesystem.
type FileStore interface {
	// Save escribe data bajo name dentro del directorio de uploads.
	Save(name string, data []byte) error
}
