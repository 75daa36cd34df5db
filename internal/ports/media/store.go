package media

import (
	"context"
	"io"
)

// Upload es un archivo recibido (multipart) listo para persistir.
type Upload struct {
	Filename    string // nombre original; solo se usa la extensión
	ContentType string
	Content     io.Reader
}

// ImageStore guarda bytes y devuelve una referencia servible (ej. /images/<id>.jpg).
type ImageStore interface {
	Save(ctx context.Context, up Upload) (string, error)
	Delete(ctx context.Context, ref string) error
}
