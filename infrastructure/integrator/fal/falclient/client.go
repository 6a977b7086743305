package falclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/fluxweave-api/internal/config"
)

type Client interface {
	Run(ctx context.Context, model string, input Input) (*Output, error)
}

type FalClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewClient cria o cliente síncrono do fal.ai com a chave explícita da configuração
func NewClient(cfg config.Fal, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 180 * time.Second,
		}
	}

	return &FalClient{
		httpClient: httpClient,
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
	}
}
