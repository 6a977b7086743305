package varying

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fluxweave-api/infrastructure/integrator/mocks"
	"github.com/vfg2006/fluxweave-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Describe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockText := mocks.NewMockTextGenerator(ctrl)
	service := NewService(mockText, mocks.NewMockImageGenerator(ctrl))

	tests := []struct {
		name     string
		setup    func()
		expected string
	}{
		{
			name: "Resposta válida - deve usar a cena do provedor",
			setup: func() {
				mockText.EXPECT().
					GenerateText(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req domain.TextRequest) (string, error) {
						assert.Equal(t, describeMaxTokens, req.MaxTokens)
						assert.Contains(t, req.Turns[0].Text, `"noir"`)
						return "  A lamp in a rainy alley.  ", nil
					})
			},
			expected: "A lamp in a rainy alley.",
		},
		{
			name: "Falha do provedor - deve usar a descrição padrão",
			setup: func() {
				mockText.EXPECT().
					GenerateText(gomock.Any(), gomock.Any()).
					Return("", errors.New("timeout"))
			},
			expected: "A noir reinterpretation of Smart Lamp ad for pinterest.",
		},
		{
			name: "Resposta vazia - deve usar a descrição padrão",
			setup: func() {
				mockText.EXPECT().
					GenerateText(gomock.Any(), gomock.Any()).
					Return("   ", nil)
			},
			expected: "A noir reinterpretation of Smart Lamp ad for pinterest.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			assert.Equal(t, tt.expected, service.Describe(context.Background(), domain.PlatformPinterest, "Smart Lamp", "noir"))
		})
	}
}

func TestService_Regenerate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockText := mocks.NewMockTextGenerator(ctrl)
	mockImage := mocks.NewMockImageGenerator(ctrl)
	service := NewService(mockText, mockImage)

	original := domain.NewAd("ad1", domain.PlatformInstagram, domain.AdCopy{
		Headline:     "Glow Up",
		Caption:      "Feel the light.",
		VisualPrompt: "a lamp",
	}, "https://img/u1.png")

	t.Run("Sucesso - deve anexar a nova imagem e anotar o estilo", func(t *testing.T) {
		mockText.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return("A neon scene", nil)
		mockImage.EXPECT().
			GenerateImages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req domain.ImageRequest) ([]string, error) {
				assert.Equal(t, "A neon scene. Include brand text and tone suitable for instagram.", req.Prompt)
				assert.Equal(t, "square_hd", req.Size)
				return []string{"https://img/u2.png"}, nil
			})

		next, variation, err := service.Regenerate(context.Background(), original, "Smart Lamp", "neon")
		require.NoError(t, err)

		assert.Equal(t, []string{"https://img/u1.png", "https://img/u2.png"}, next.Variations)
		assert.Equal(t, "https://img/u2.png", next.Image)
		assert.True(t, strings.HasPrefix(next.Caption, original.Caption))
		assert.Equal(t, "Feel the light. (neon style)", next.Caption)
		assert.Equal(t, "A neon scene", variation.Prompt)

		// o registro original permanece intacto
		assert.Equal(t, []string{"https://img/u1.png"}, original.Variations)
		assert.Equal(t, "https://img/u1.png", original.Image)
	})

	t.Run("Estilo vazio - deve usar vibrant", func(t *testing.T) {
		mockText.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return("scene", nil)
		mockImage.EXPECT().GenerateImages(gomock.Any(), gomock.Any()).Return([]string{"https://img/u3.png"}, nil)

		next, variation, err := service.Regenerate(context.Background(), original, "Smart Lamp", "")
		require.NoError(t, err)
		assert.Equal(t, DefaultStyle, variation.Style)
		assert.Equal(t, "Feel the light. (vibrant style)", next.Caption)
	})

	t.Run("Sem imagem - não deve estender o histórico", func(t *testing.T) {
		mockText.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return("scene", nil)
		mockImage.EXPECT().GenerateImages(gomock.Any(), gomock.Any()).Return([]string{}, nil)

		next, _, err := service.Regenerate(context.Background(), original, "Smart Lamp", "retro")
		assert.ErrorIs(t, err, domain.ErrNoImage)
		assert.Equal(t, original, next)
	})

	t.Run("Falha do provedor de imagem - deve retornar ErrImageProvider", func(t *testing.T) {
		mockText.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return("scene", nil)
		mockImage.EXPECT().GenerateImages(gomock.Any(), gomock.Any()).Return(nil, errors.New("503"))

		_, _, err := service.Regenerate(context.Background(), original, "Smart Lamp", "retro")
		assert.ErrorIs(t, err, domain.ErrImageProvider)
	})
}

func TestService_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockText := mocks.NewMockTextGenerator(ctrl)
	mockImage := mocks.NewMockImageGenerator(ctrl)
	service := NewService(mockText, mockImage)

	_, err := service.Preview(context.Background(), domain.VariationRequest{Platform: "x"})
	assert.ErrorIs(t, err, domain.ErrProductRequired)

	_, err = service.Preview(context.Background(), domain.VariationRequest{Product: "Desk"})
	assert.ErrorIs(t, err, domain.ErrPlatformRequired)

	mockText.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return("A desk at dawn", nil)
	mockImage.EXPECT().GenerateImages(gomock.Any(), gomock.Any()).Return([]string{"https://img/desk.png"}, nil)

	resp, err := service.Preview(context.Background(), domain.VariationRequest{Platform: "x", Product: "Desk"})
	require.NoError(t, err)
	assert.Equal(t, "A desk at dawn", resp.VariationPrompt)
	assert.Equal(t, "https://img/desk.png", resp.Image)
}
