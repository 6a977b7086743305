package integrator

//go:generate mockgen -source=interfaces.go -destination=mocks/integrator_mock.go -package=mocks

import (
	"context"

	"github.com/vfg2006/fluxweave-api/internal/domain"
)

// TextGenerator é o provedor de geração de texto/visão
type TextGenerator interface {
	// GenerateText devolve o texto do primeiro candidato da resposta
	GenerateText(ctx context.Context, request domain.TextRequest) (string, error)
}

// ImageGenerator é o provedor de síntese de imagens
type ImageGenerator interface {
	// GenerateImages devolve as URLs das imagens na ordem recebida
	GenerateImages(ctx context.Context, request domain.ImageRequest) ([]string, error)
}
