package copywriting

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/fluxweave-api/infrastructure/integrator"
	"github.com/vfg2006/fluxweave-api/internal/domain"
	"github.com/vfg2006/fluxweave-api/pkg/log"
)

const (
	DefaultShortCaption = "Your next big idea."
	DefaultDescription  = "Discover the future of design and performance — where craftsmanship meets emotion, and technology becomes art."

	hashtagsMaxTokens    = 100
	captionMaxTokens     = 100
	descriptionMaxTokens = 600
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Copywriter interface {
	Hashtags(ctx context.Context, platform domain.Platform, product string) ([]string, error)
	Caption(ctx context.Context, prompt string) (string, error)
	Description(ctx context.Context, platform domain.Platform, product string) (string, error)
}

type Service struct {
	textProvider integrator.TextGenerator
}

func NewService(textProvider integrator.TextGenerator) *Service {
	return &Service{textProvider: textProvider}
}

func (s *Service) Hashtags(ctx context.Context, platform domain.Platform, product string) ([]string, error) {
	if strings.TrimSpace(product) == "" {
		return nil, domain.ErrProductRequired
	}

	prompt := fmt.Sprintf(`
Generate 2–4 optimized, catchy hashtags for a %s ad.
The product is: %s.
Keep them short, platform-appropriate, and relevant.
Return STRICT JSON array, e.g. ["#innovation", "#techstyle", "#newdrop"]
`, platform, product)

	raw, err := s.textProvider.GenerateText(ctx, domain.UserPrompt(prompt, hashtagsMaxTokens))
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"platform": platform,
			"error":    err.Error(),
		}).Error("Erro ao gerar hashtags")
		return nil, fmt.Errorf("%w: %v", domain.ErrTextProvider, err)
	}

	return ParseHashtags(raw), nil
}

func (s *Service) Caption(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", domain.ErrPromptRequired
	}

	request := fmt.Sprintf(`You are an expert creative copywriter. Write a short, catchy marketing caption (1–2 sentences max) for a product described as: "%s". The caption should sound natural and appealing, like a brand tagline.`, prompt)

	raw, err := s.textProvider.GenerateText(ctx, domain.UserPrompt(request, captionMaxTokens))
	if err != nil {
		log.ForContext(ctx).WithField("error", err.Error()).Error("Erro ao gerar legenda")
		return "", fmt.Errorf("%w: %v", domain.ErrTextProvider, err)
	}

	if caption := strings.TrimSpace(raw); caption != "" {
		return caption, nil
	}
	return DefaultShortCaption, nil
}

// Description gera a descrição longa (6–10 frases) no tom da plataforma
func (s *Service) Description(ctx context.Context, platform domain.Platform, product string) (string, error) {
	if strings.TrimSpace(product) == "" {
		return "", domain.ErrProductRequired
	}

	prompt := fmt.Sprintf(`
You are a professional creative copywriter writing long-form social captions.
Create a rich product description (6–10 sentences) tailored for the platform "%s".
It should sound like a full ad caption — long enough for a social post — persuasive, storytelling, and emotionally engaging.
Use the tone appropriate to each platform:

%s

Product: %s

Write one full paragraph that blends brand values, emotional appeal, and reasons to buy, with personality and vivid imagery.
Avoid generic lines like "this product is great" — make it feel alive and specific.
`, platform, domain.ToneGuideTable(), product)

	raw, err := s.textProvider.GenerateText(ctx, domain.UserPrompt(prompt, descriptionMaxTokens))
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"platform": platform,
			"error":    err.Error(),
		}).Error("Erro ao gerar descrição")
		return "", fmt.Errorf("%w: %v", domain.ErrTextProvider, err)
	}

	if description := strings.TrimSpace(raw); description != "" {
		return description, nil
	}
	return DefaultDescription, nil
}
