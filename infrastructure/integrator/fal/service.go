package fal

import (
	"context"

	"github.com/vfg2006/fluxweave-api/infrastructure/integrator"
	"github.com/vfg2006/fluxweave-api/infrastructure/integrator/fal/falclient"
	"github.com/vfg2006/fluxweave-api/internal/config"
	"github.com/vfg2006/fluxweave-api/internal/domain"
	"github.com/vfg2006/fluxweave-api/pkg/log"
)

type FalIntegrator struct {
	textToImageModel string
	editModel        string
	Client           falclient.Client
}

var _ integrator.ImageGenerator = (*FalIntegrator)(nil)

func New(cfg config.Fal, client falclient.Client) *FalIntegrator {
	return &FalIntegrator{
		textToImageModel: cfg.TextToImageModel,
		editModel:        cfg.EditModel,
		Client:           client,
	}
}

// GenerateImages escolhe o modelo de edição quando há imagens semente
func (s *FalIntegrator) GenerateImages(ctx context.Context, request domain.ImageRequest) ([]string, error) {
	model := s.textToImageModel
	if request.IsEdit() {
		model = s.editModel
	}

	format := request.OutputFormat
	if format == "" {
		format = domain.DefaultImageFormat
	}

	input := falclient.Input{
		Prompt:       request.Prompt,
		OutputFormat: format,
		ImageURLs:    request.SeedImageURLs,
	}
	if !request.IsEdit() {
		input.ImageSize = request.Size
	}

	output, err := s.Client.Run(ctx, model, input)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"model":      model,
			"image_size": request.Size,
			"error":      err.Error(),
		}).Error("Erro ao gerar imagens na fal.ai")
		return nil, err
	}

	urls := output.URLs()
	log.ForContext(ctx).WithFields(log.Fields{
		"model":  model,
		"images": len(urls),
	}).Debug("Imagens geradas na fal.ai")

	return urls, nil
}
