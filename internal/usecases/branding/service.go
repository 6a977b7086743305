package branding

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/coocood/freecache"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/fluxweave-api/infrastructure/integrator"
	"github.com/vfg2006/fluxweave-api/internal/domain"
	"github.com/vfg2006/fluxweave-api/internal/usecases/copywriting"
	"github.com/vfg2006/fluxweave-api/pkg/log"
)

const (
	DefaultMediaType = "image/png"

	analyzeMaxTokens = 400

	analyzePrompt = `
You are a visual brand analyst.
Analyze this brand reference image and describe:
1. The main color palette (list 3–5 key colors in words or hex if visible)
2. The overall mood/aesthetic (e.g., minimal, luxury, bold, natural)
3. The visual tone (e.g., professional, playful, artistic)
4. The kind of lighting or photography vibe it represents.

Respond in JSON like:
{
  "colors": ["#hex or color name", ...],
  "mood": "...",
  "tone": "...",
  "summary": "1–2 sentences about how future ads should look to match this brand"
}
`
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Analyzer interface {
	Analyze(ctx context.Context, imageBase64 string) (domain.BrandAnalysis, error)
	AnalyzeStyle(ctx context.Context, request domain.BrandStyleRequest) (domain.BrandStyleResponse, error)
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Service struct {
	textProvider integrator.TextGenerator
	cache        *freecache.Cache
	cacheTTL     int
}

func NewService(textProvider integrator.TextGenerator) *Service {
	return &Service{textProvider: textProvider}
}

// WithCache habilita o cache em memória das análises, indexado pelo conteúdo da imagem
func (s *Service) WithCache(cache *freecache.Cache, ttlSeconds int) *Service {
	s.cache = cache
	s.cacheTTL = ttlSeconds
	return s
}

// Analyze envia a imagem de referência ao provedor de texto e extrai a identidade visual
func (s *Service) Analyze(ctx context.Context, imageBase64 string) (domain.BrandAnalysis, error) {
	image, err := decodeDataURL(imageBase64)
	if err != nil {
		return domain.BrandAnalysis{}, err
	}

	key := cacheKey(image)
	if cached, ok := s.cached(key); ok {
		log.ForContext(ctx).Debug("Análise de marca servida do cache")
		return cached, nil
	}

	raw, err := s.textProvider.GenerateText(ctx, domain.TextRequest{
		MaxTokens: analyzeMaxTokens,
		Turns: []domain.Turn{
			{
				Role:   domain.RoleUser,
				Text:   analyzePrompt,
				Images: []domain.InlineImage{image},
			},
		},
	})
	if err != nil {
		log.ForContext(ctx).WithField("error", err.Error()).Error("Erro ao analisar imagem da marca")
		return domain.BrandAnalysis{}, fmt.Errorf("%w: %v", domain.ErrTextProvider, err)
	}

	analysis, ok := copywriting.ParseBrandAnalysis(raw)
	if !ok {
		log.ForContext(ctx).Warn("Resposta de estilo da marca fora do formato JSON, usando valores padrão")
		return analysis, nil
	}

	s.store(ctx, key, analysis)
	return analysis, nil
}

func (s *Service) cached(key []byte) (domain.BrandAnalysis, bool) {
	if s.cache == nil {
		return domain.BrandAnalysis{}, false
	}

	raw, err := s.cache.Get(key)
	if err != nil {
		return domain.BrandAnalysis{}, false
	}

	var analysis domain.BrandAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		s.cache.Del(key)
		return domain.BrandAnalysis{}, false
	}
	return analysis, true
}

// store guarda apenas análises que cumpriram o contrato JSON
func (s *Service) store(ctx context.Context, key []byte, analysis domain.BrandAnalysis) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(analysis)
	if err != nil {
		return
	}
	if err := s.cache.Set(key, raw, s.cacheTTL); err != nil {
		log.ForContext(ctx).WithField("error", err.Error()).Warn("Erro ao guardar análise de marca no cache")
	}
}

func cacheKey(image domain.InlineImage) []byte {
	sum := sha256.Sum256([]byte(image.MediaType + ":" + image.Data))
	return sum[:]
}

func (s *Service) AnalyzeStyle(ctx context.Context, request domain.BrandStyleRequest) (domain.BrandStyleResponse, error) {
	analysis, err := s.Analyze(ctx, request.ImageBase64)
	if err != nil {
		return domain.BrandStyleResponse{}, err
	}

	return domain.BrandStyleResponse{
		Analysis:  analysis,
		BrandSpec: analysis.ToBrandSpec(domain.DefaultBrandSpec()),
	}, nil
}

// decodeDataURL separa o prefixo "data:<mime>;base64," do conteúdo.
// Sem prefixo, o valor inteiro é tratado como base64 de um PNG.
func decodeDataURL(value string) (domain.InlineImage, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.InlineImage{}, ErrImageRequired
	}

	header, data, found := strings.Cut(value, ",")
	if !found {
		return domain.InlineImage{MediaType: DefaultMediaType, Data: value}, nil
	}
	if strings.TrimSpace(data) == "" {
		return domain.InlineImage{}, ErrImageRequired
	}

	mediaType := DefaultMediaType
	if strings.HasPrefix(header, "data:") {
		if mime, _, _ := strings.Cut(strings.TrimPrefix(header, "data:"), ";"); mime != "" {
			mediaType = mime
		}
	}

	return domain.InlineImage{MediaType: mediaType, Data: data}, nil
}
