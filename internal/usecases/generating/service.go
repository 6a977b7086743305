package generating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/fluxweave-api/infrastructure/integrator"
	"github.com/vfg2006/fluxweave-api/internal/config"
	"github.com/vfg2006/fluxweave-api/internal/domain"
	"github.com/vfg2006/fluxweave-api/internal/usecases/copywriting"
	"github.com/vfg2006/fluxweave-api/pkg/log"
	"github.com/vfg2006/fluxweave-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const (
	copyMaxTokens = 700

	DefaultEnhanceStyle = "vibrant"
	FreeformImageSize   = "landscape_4_3"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Generator interface {
	GenerateAd(ctx context.Context, platform domain.Platform, product string, brand domain.BrandSpec) (AdOutput, error)
	GenerateSingle(ctx context.Context, request domain.AdRequest) (domain.AdResponse, error)
	GenerateKit(ctx context.Context, product string, brand domain.BrandSpec) (domain.KitResult, error)
	Enhance(ctx context.Context, imageURL, style string) (string, error)
	GenerateImages(ctx context.Context, prompt string) ([]string, error)
	Compose(ctx context.Context, prompt string, images []string) ([]string, error)
}

// AdOutput é o resultado completo de uma geração por plataforma
type AdOutput struct {
	Ad         domain.Ad
	Images     []string
	PromptUsed string
	Fallback   bool
}

type Service struct {
	textProvider  integrator.TextGenerator
	imageProvider integrator.ImageGenerator
	cfg           config.Generation
}

func NewService(textProvider integrator.TextGenerator, imageProvider integrator.ImageGenerator, cfg config.Generation) *Service {
	return &Service{
		textProvider:  textProvider,
		imageProvider: imageProvider,
		cfg:           cfg,
	}
}

// GenerateAd executa o pipeline texto -> parser -> imagem para uma plataforma
func (s *Service) GenerateAd(ctx context.Context, platform domain.Platform, product string, brand domain.BrandSpec) (AdOutput, error) {
	if strings.TrimSpace(product) == "" {
		return AdOutput{}, domain.ErrProductRequired
	}

	profile := domain.ProfileFor(platform)
	brand = brand.WithDefaults()

	raw, err := s.textProvider.GenerateText(ctx, domain.UserPrompt(buildCopyPrompt(platform, product, brand), copyMaxTokens))
	if err != nil {
		return AdOutput{}, NewGenerationError(domain.ErrTextProvider, platform, err)
	}

	parsed := copywriting.ParseAdCopy(raw, product)
	if parsed.Fallback {
		log.ForContext(ctx).WithFields(log.Fields{
			"platform": platform,
			"reason":   parsed.Reason,
		}).Warn("Resposta do provedor de texto fora do contrato, usando textos padrão")
	}

	imagePrompt := buildImagePrompt(parsed.Copy, profile, brand)

	images, err := s.imageProvider.GenerateImages(ctx, domain.ImageRequest{
		Prompt:       imagePrompt,
		Size:         profile.ImageSize,
		OutputFormat: domain.DefaultImageFormat,
	})
	if err != nil {
		return AdOutput{}, NewGenerationError(domain.ErrImageProvider, platform, err)
	}
	if len(images) == 0 {
		return AdOutput{}, NewGenerationError(domain.ErrNoImage, platform, nil)
	}

	return AdOutput{
		Ad:         domain.NewAd(utils.GenerateID(), platform, parsed.Copy, images[0]),
		Images:     images,
		PromptUsed: imagePrompt,
		Fallback:   parsed.Fallback,
	}, nil
}

func (s *Service) GenerateSingle(ctx context.Context, request domain.AdRequest) (domain.AdResponse, error) {
	if strings.TrimSpace(request.Platform) == "" {
		return domain.AdResponse{}, domain.ErrPlatformRequired
	}
	platform, err := domain.ParsePlatform(request.Platform)
	if err != nil {
		return domain.AdResponse{}, err
	}

	output, err := s.GenerateAd(ctx, platform, request.Product, request.BrandSpec)
	if err != nil {
		return domain.AdResponse{}, err
	}

	return domain.AdResponse{
		Platform:   platform,
		Images:     output.Images,
		Headline:   output.Ad.Headline,
		Caption:    output.Ad.Caption,
		PromptUsed: output.PromptUsed,
		Ad:         output.Ad,
	}, nil
}

// GenerateKit dispara uma geração por plataforma em paralelo e espera todas
// assentarem. Uma falha não cancela as irmãs; o resultado mantém a ordem fixa.
func (s *Service) GenerateKit(ctx context.Context, product string, brand domain.BrandSpec) (domain.KitResult, error) {
	if strings.TrimSpace(product) == "" {
		return domain.KitResult{}, domain.ErrProductRequired
	}

	platforms := domain.Platforms()
	results := make([]domain.PlatformResult, len(platforms))

	// errgroup sem WithContext: nenhuma goroutine retorna erro, então nada é cancelado
	var g errgroup.Group
	if s.cfg.MaxConcurrentPlatforms > 0 {
		g.SetLimit(s.cfg.MaxConcurrentPlatforms)
	}

	for i, platform := range platforms {
		g.Go(func() error {
			results[i] = s.settle(ctx, platform, product, brand)
			return nil
		})
	}
	_ = g.Wait()

	kit := domain.KitResult{Ads: make([]domain.Ad, 0, len(platforms))}
	for _, result := range results {
		if result.Succeeded() {
			kit.Ads = append(kit.Ads, *result.Ad)
			continue
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"platform": result.Platform,
			"error":    result.Err.Error(),
		}).Error("Plataforma falhou na geração do kit")

		kit.Failures = append(kit.Failures, domain.PlatformFailure{
			Platform: result.Platform,
			Error:    result.Err.Error(),
		})
	}

	if len(kit.Ads) == 0 {
		return kit, fmt.Errorf("%w: %d of %d", ErrAllPlatformsFailed, len(kit.Failures), len(platforms))
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"succeeded": len(kit.Ads),
		"failed":    len(kit.Failures),
	}).Info("Kit de anúncios finalizado")

	return kit, nil
}

func (s *Service) settle(ctx context.Context, platform domain.Platform, product string, brand domain.BrandSpec) (result domain.PlatformResult) {
	result.Platform = platform
	ctx = log.ContextWithFields(ctx, log.Fields{"platform": platform})

	// pânico do provedor vira falha da plataforma; tabela de perfis incompleta não
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok && errors.Is(err, domain.ErrNoProfile) {
				panic(r)
			}
			result.Ad = nil
			result.Err = fmt.Errorf("platform %s panicked: %v", platform, r)
		}
	}()

	if s.cfg.RequestTimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.RequestTimeoutSeconds)*time.Second)
		defer cancel()
	}

	output, err := s.GenerateAd(ctx, platform, product, brand)
	if err != nil {
		result.Err = err
		return result
	}

	result.Ad = &output.Ad
	return result
}

// Enhance reestiliza uma imagem existente em modo de edição
func (s *Service) Enhance(ctx context.Context, imageURL, style string) (string, error) {
	if strings.TrimSpace(imageURL) == "" {
		return "", domain.ErrImageURLRequired
	}
	if strings.TrimSpace(style) == "" {
		style = DefaultEnhanceStyle
	}

	images, err := s.imageProvider.GenerateImages(ctx, domain.ImageRequest{
		Prompt:        buildEnhancePrompt(style),
		OutputFormat:  domain.DefaultImageFormat,
		SeedImageURLs: []string{imageURL},
	})
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"style": style,
			"error": err.Error(),
		}).Error("Erro ao aprimorar imagem")
		return "", fmt.Errorf("%w: %v", domain.ErrImageProvider, err)
	}
	if len(images) == 0 {
		return "", domain.ErrNoImage
	}

	return images[0], nil
}

func (s *Service) GenerateImages(ctx context.Context, prompt string) ([]string, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, domain.ErrPromptRequired
	}

	images, err := s.imageProvider.GenerateImages(ctx, domain.ImageRequest{
		Prompt:       prompt,
		Size:         FreeformImageSize,
		OutputFormat: domain.DefaultImageFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageProvider, err)
	}

	return images, nil
}

// Compose combina várias imagens de referência em uma nova estética
func (s *Service) Compose(ctx context.Context, prompt string, images []string) ([]string, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, domain.ErrPromptRequired
	}
	if len(images) == 0 {
		return nil, domain.ErrImagesRequired
	}

	output, err := s.imageProvider.GenerateImages(ctx, domain.ImageRequest{
		Prompt:        prompt,
		OutputFormat:  domain.DefaultImageFormat,
		SeedImageURLs: images,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageProvider, err)
	}

	return output, nil
}
