package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/genai"

	"github.com/vfg2006/fluxweave-api/infrastructure/integrator"
	"github.com/vfg2006/fluxweave-api/internal/config"
	"github.com/vfg2006/fluxweave-api/internal/domain"
	"github.com/vfg2006/fluxweave-api/pkg/log"
)

// ContentGenerator é o subconjunto de genai.Models usado pelo integrador
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiIntegrator struct {
	model  string
	Models ContentGenerator
}

var _ integrator.TextGenerator = (*GeminiIntegrator)(nil)

// NewClient cria o cliente genai com a chave explícita da configuração
func NewClient(ctx context.Context, cfg config.Gemini) (*genai.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "gemini: failed to create client")
	}
	return client, nil
}

func New(cfg config.Gemini, models ContentGenerator) *GeminiIntegrator {
	return &GeminiIntegrator{
		model:  cfg.Model,
		Models: models,
	}
}

func (s *GeminiIntegrator) GenerateText(ctx context.Context, request domain.TextRequest) (string, error) {
	model := request.Model
	if model == "" {
		model = s.model
	}

	contents := make([]*genai.Content, 0, len(request.Turns))
	for _, turn := range request.Turns {
		content, err := toContent(turn)
		if err != nil {
			return "", err
		}
		contents = append(contents, content)
	}

	var generateConfig *genai.GenerateContentConfig
	if request.MaxTokens > 0 {
		generateConfig = &genai.GenerateContentConfig{MaxOutputTokens: int32(request.MaxTokens)}
	}

	resp, err := s.Models.GenerateContent(ctx, model, contents, generateConfig)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"model": model,
			"error": err.Error(),
		}).Error("Erro ao gerar conteúdo no Gemini")
		return "", errors.Wrap(err, "gemini: generate content failed")
	}

	return resp.Text(), nil
}

func toContent(turn domain.Turn) (*genai.Content, error) {
	var role genai.Role = genai.RoleUser
	if turn.Role == domain.RoleAssistant {
		role = genai.RoleModel
	}

	parts := make([]*genai.Part, 0, 1+len(turn.Images))
	if strings.TrimSpace(turn.Text) != "" {
		parts = append(parts, genai.NewPartFromText(turn.Text))
	}
	for _, img := range turn.Images {
		data, err := base64.StdEncoding.DecodeString(img.Data)
		if err != nil {
			return nil, errors.Wrap(err, "gemini: invalid inline image data")
		}
		parts = append(parts, genai.NewPartFromBytes(data, img.MediaType))
	}

	return genai.NewContentFromParts(parts, role), nil
}
