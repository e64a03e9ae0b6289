package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sapataria_xpto/internal/usecase/interfaces"
	"sapataria_xpto/pkg/sanitize"
)

const (
	MaxFotosPorUpload = 5
	MaxFotoBytes      = 5 * 1024 * 1024
)

var (
	ErrNenhumaFoto     = errors.New("no photo sent")
	ErrMuitasFotos     = errors.New("too many photos")
	ErrFotoMuitoGrande = errors.New("photo exceeds the size limit")
	ErrFotoSemConteudo = errors.New("photo has no content")
)

// FotoUpload is one incoming multipart file.
type FotoUpload struct {
	Nome        string
	ContentType string
	Dados       []byte
}

// IUploadUseCase stores order photos and returns their public URLs.

type IUploadUseCase interface {
	UploadFotos(ctx context.Context, fotos []FotoUpload) ([]string, error)
}

type UploadUseCase struct {
	storage interfaces.IBlobStorage
}

var _ IUploadUseCase = (*UploadUseCase)(nil)

func NewUploadUseCase(storage interfaces.IBlobStorage) *UploadUseCase {
	return &UploadUseCase{storage: storage}
}

func (u *UploadUseCase) UploadFotos(ctx context.Context, fotos []FotoUpload) ([]string, error) {
	if len(fotos) == 0 {
		return nil, ErrNenhumaFoto
	}
	if len(fotos) > MaxFotosPorUpload {
		return nil, ErrMuitasFotos
	}
	for _, f := range fotos {
		if len(f.Dados) == 0 {
			return nil, ErrFotoSemConteudo
		}
		if len(f.Dados) > MaxFotoBytes {
			return nil, ErrFotoMuitoGrande
		}
	}

	urls := make([]string, 0, len(fotos))
	for _, f := range fotos {
		key := fmt.Sprintf("fotos/%d-%s", time.Now().UnixNano(), sanitize.FileName(f.Nome))
		url, err := u.storage.Put(ctx, key, f.Dados, f.ContentType)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
