package fal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fluxweave-api/infrastructure/integrator/fal/falclient"
	"github.com/vfg2006/fluxweave-api/internal/config"
	"github.com/vfg2006/fluxweave-api/internal/domain"
)

type stubClient struct {
	model string
	input falclient.Input
}

func (s *stubClient) Run(_ context.Context, model string, input falclient.Input) (*falclient.Output, error) {
	s.model = model
	s.input = input
	return &falclient.Output{Images: []falclient.Image{{URL: "https://fal/out.png"}}}, nil
}

func TestFalIntegrator_GenerateImages(t *testing.T) {
	cfg := config.Fal{TextToImageModel: "t2i", EditModel: "edit"}

	tests := []struct {
		name     string
		request  domain.ImageRequest
		validate func(t *testing.T, client *stubClient)
	}{
		{
			name:    "Sem sementes - deve usar o modelo text-to-image com tamanho",
			request: domain.ImageRequest{Prompt: "p", Size: "portrait_4_3"},
			validate: func(t *testing.T, client *stubClient) {
				assert.Equal(t, "t2i", client.model)
				assert.Equal(t, "portrait_4_3", client.input.ImageSize)
				assert.Equal(t, "png", client.input.OutputFormat)
				assert.Empty(t, client.input.ImageURLs)
			},
		},
		{
			name:    "Com sementes - deve usar o modelo de edição sem tamanho",
			request: domain.ImageRequest{Prompt: "p", Size: "square_hd", OutputFormat: "jpeg", SeedImageURLs: []string{"https://seed"}},
			validate: func(t *testing.T, client *stubClient) {
				assert.Equal(t, "edit", client.model)
				assert.Empty(t, client.input.ImageSize)
				assert.Equal(t, "jpeg", client.input.OutputFormat)
				assert.Equal(t, []string{"https://seed"}, client.input.ImageURLs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{}
			urls, err := New(cfg, client).GenerateImages(context.Background(), tt.request)
			require.NoError(t, err)
			assert.Equal(t, []string{"https://fal/out.png"}, urls)
			tt.validate(t, client)
		})
	}
}
