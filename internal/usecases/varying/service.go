package varying

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/fluxweave-api/infrastructure/integrator"
	"github.com/vfg2006/fluxweave-api/internal/domain"
	"github.com/vfg2006/fluxweave-api/pkg/log"
)

const (
	DefaultStyle = "vibrant"

	describeMaxTokens = 200
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Varier interface {
	Describe(ctx context.Context, platform domain.Platform, product, style string) string
	Regenerate(ctx context.Context, ad domain.Ad, product, style string) (domain.Ad, Variation, error)
	Preview(ctx context.Context, request domain.VariationRequest) (domain.VariationResponse, error)
}

// Variation é o produto de uma regeneração, antes de ser aplicada ao anúncio
type Variation struct {
	Prompt string
	Image  string
	Style  string
}

type Service struct {
	textProvider  integrator.TextGenerator
	imageProvider integrator.ImageGenerator
}

func NewService(textProvider integrator.TextGenerator, imageProvider integrator.ImageGenerator) *Service {
	return &Service{
		textProvider:  textProvider,
		imageProvider: imageProvider,
	}
}

// Describe pede ao provedor de texto uma nova cena no estilo informado.
// Erro ou resposta vazia caem na descrição padrão; a cena nunca é vazia.
func (s *Service) Describe(ctx context.Context, platform domain.Platform, product, style string) string {
	prompt := fmt.Sprintf(`
You are an advertising creative director.
Rewrite the visual style for a %[1]s ad of this product: %[2]s.
Apply the following creative direction: "%[3]s".
Describe a new, fresh ad scene (composition, lighting, background, and mood).
Keep it in %[1]s's visual tone (e.g. Instagram = bold/trendy, LinkedIn = clean/premium, etc.).
Return a single vivid description sentence.`, platform, product, style)

	raw, err := s.textProvider.GenerateText(ctx, domain.UserPrompt(prompt, describeMaxTokens))
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"platform": platform,
			"style":    style,
			"error":    err.Error(),
		}).Warn("Erro ao descrever a nova cena, usando cena padrão")
		return defaultDescription(platform, product, style)
	}

	if description := strings.TrimSpace(raw); description != "" {
		return description
	}
	return defaultDescription(platform, product, style)
}

func defaultDescription(platform domain.Platform, product, style string) string {
	return fmt.Sprintf("A %s reinterpretation of %s ad for %s.", style, product, platform)
}

// Regenerate produz uma nova imagem para o anúncio e devolve o registro
// resultante. O anúncio recebido não é alterado.
func (s *Service) Regenerate(ctx context.Context, ad domain.Ad, product, style string) (domain.Ad, Variation, error) {
	if strings.TrimSpace(product) == "" {
		return ad, Variation{}, domain.ErrProductRequired
	}
	if strings.TrimSpace(style) == "" {
		style = DefaultStyle
	}

	variation, err := s.render(ctx, ad.Platform, product, style)
	if err != nil {
		return ad, Variation{}, err
	}

	return ad.WithVariation(variation.Image, style), variation, nil
}

// Preview é a variante sem estado usada pela rota de variação avulsa
func (s *Service) Preview(ctx context.Context, request domain.VariationRequest) (domain.VariationResponse, error) {
	if strings.TrimSpace(request.Product) == "" {
		return domain.VariationResponse{}, domain.ErrProductRequired
	}
	if strings.TrimSpace(request.Platform) == "" {
		return domain.VariationResponse{}, domain.ErrPlatformRequired
	}

	platform, err := domain.ParsePlatform(request.Platform)
	if err != nil {
		return domain.VariationResponse{}, err
	}

	style := request.Style
	if strings.TrimSpace(style) == "" {
		style = DefaultStyle
	}

	variation, err := s.render(ctx, platform, request.Product, style)
	if err != nil {
		return domain.VariationResponse{}, err
	}

	return domain.VariationResponse{
		VariationPrompt: variation.Prompt,
		Image:           variation.Image,
	}, nil
}

func (s *Service) render(ctx context.Context, platform domain.Platform, product, style string) (Variation, error) {
	description := s.Describe(ctx, platform, product, style)
	profile := domain.ProfileFor(platform)

	images, err := s.imageProvider.GenerateImages(ctx, domain.ImageRequest{
		Prompt:       fmt.Sprintf("%s. Include brand text and tone suitable for %s.", description, platform),
		Size:         profile.ImageSize,
		OutputFormat: domain.DefaultImageFormat,
	})
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"platform": platform,
			"style":    style,
			"error":    err.Error(),
		}).Error("Erro ao gerar imagem da variação")
		return Variation{}, fmt.Errorf("%w: %v", domain.ErrImageProvider, err)
	}
	if len(images) == 0 {
		return Variation{}, domain.ErrNoImage
	}

	return Variation{
		Prompt: description,
		Image:  images[0],
		Style:  style,
	}, nil
}
