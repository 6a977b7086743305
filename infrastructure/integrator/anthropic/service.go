package anthropic

import (
	"context"
	"strings"

	"github.com/vfg2006/fluxweave-api/infrastructure/integrator"
	"github.com/vfg2006/fluxweave-api/infrastructure/integrator/anthropic/anthropicclient"
	"github.com/vfg2006/fluxweave-api/internal/config"
	"github.com/vfg2006/fluxweave-api/internal/domain"
	"github.com/vfg2006/fluxweave-api/pkg/log"
)

type AnthropicIntegrator struct {
	model  string
	Client anthropicclient.Client
}

var _ integrator.TextGenerator = (*AnthropicIntegrator)(nil)

func New(cfg config.Anthropic, client anthropicclient.Client) *AnthropicIntegrator {
	return &AnthropicIntegrator{
		model:  cfg.Model,
		Client: client,
	}
}

func (s *AnthropicIntegrator) GenerateText(ctx context.Context, request domain.TextRequest) (string, error) {
	model := request.Model
	if model == "" {
		model = s.model
	}

	messages := make([]anthropicclient.Message, 0, len(request.Turns))
	for _, turn := range request.Turns {
		messages = append(messages, toMessage(turn))
	}

	resp, err := s.Client.CreateMessage(ctx, anthropicclient.MessagesRequest{
		Model:     model,
		MaxTokens: request.MaxTokens,
		Messages:  messages,
	})
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"model": model,
			"error": err.Error(),
		}).Error("Erro ao criar mensagem na Anthropic")
		return "", err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"model":       model,
		"stop_reason": resp.StopReason,
	}).Debug("Mensagem criada na Anthropic")

	return resp.FirstText(), nil
}

func toMessage(turn domain.Turn) anthropicclient.Message {
	role := turn.Role
	if role == "" {
		role = domain.RoleUser
	}

	blocks := make([]anthropicclient.ContentBlock, 0, 1+len(turn.Images))
	if strings.TrimSpace(turn.Text) != "" {
		blocks = append(blocks, anthropicclient.ContentBlock{Type: "text", Text: turn.Text})
	}
	for _, img := range turn.Images {
		blocks = append(blocks, anthropicclient.ContentBlock{
			Type: "image",
			Source: &anthropicclient.ImageSource{
				Type:      "base64",
				MediaType: img.MediaType,
				Data:      img.Data,
			},
		})
	}

	return anthropicclient.Message{Role: role, Content: blocks}
}
