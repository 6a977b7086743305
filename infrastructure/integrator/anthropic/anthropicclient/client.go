package anthropicclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/fluxweave-api/internal/config"
)

type Client interface {
	CreateMessage(ctx context.Context, request MessagesRequest) (*MessagesResponse, error)
}

type AnthropicClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	version    string
}

// NewClient cria o cliente da Messages API com as credenciais explícitas da configuração
func NewClient(cfg config.Anthropic, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 60 * time.Second,
		}
	}

	return &AnthropicClient{
		httpClient: httpClient,
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		version:    cfg.Version,
	}
}
