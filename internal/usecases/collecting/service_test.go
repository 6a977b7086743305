package collecting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fluxweave-api/internal/domain"
	"github.com/vfg2006/fluxweave-api/internal/usecases/generating"
	generatingmocks "github.com/vfg2006/fluxweave-api/internal/usecases/generating/mocks"
	"github.com/vfg2006/fluxweave-api/internal/usecases/varying"
	varyingmocks "github.com/vfg2006/fluxweave-api/internal/usecases/varying/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_GenerateKit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGenerator := generatingmocks.NewMockGenerator(ctrl)
	service := NewService(NewStore(), mockGenerator, varyingmocks.NewMockVarier(ctrl))

	session := service.Create(domain.AdKitRequest{Product: "Smart Lamp"})

	tests := []struct {
		name      string
		sessionID string
		request   domain.AdKitRequest
		setup     func()
		validate  func(t *testing.T, resp domain.AdKitResponse, err error)
	}{
		{
			name:      "Sessão inexistente - deve retornar ErrSessionNotFound",
			sessionID: "missing",
			setup:     func() {},
			validate: func(t *testing.T, resp domain.AdKitResponse, err error) {
				assert.ErrorIs(t, err, ErrSessionNotFound)
			},
		},
		{
			name:      "Produto herdado da sessão - deve substituir a coleção",
			sessionID: session.ID,
			setup: func() {
				mockGenerator.EXPECT().
					GenerateKit(gomock.Any(), "Smart Lamp", domain.BrandSpec{}).
					Return(domain.KitResult{
						Ads: sampleAds(),
						Failures: []domain.PlatformFailure{
							{Platform: domain.PlatformX, Error: "boom"},
						},
					}, nil)
			},
			validate: func(t *testing.T, resp domain.AdKitResponse, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, resp.RunID)
				assert.Len(t, resp.Ads, 2)
				assert.Len(t, resp.Failures, 1)

				listed, err := service.List(session.ID)
				require.NoError(t, err)
				assert.Equal(t, resp.RunID, listed.RunID)
				assert.Len(t, listed.Ads, 2)
			},
		},
		{
			name:      "Todas as plataformas falham - a coleção anterior é mantida",
			sessionID: session.ID,
			request:   domain.AdKitRequest{Product: "Desk"},
			setup: func() {
				mockGenerator.EXPECT().
					GenerateKit(gomock.Any(), "Desk", domain.BrandSpec{}).
					Return(domain.KitResult{Ads: []domain.Ad{}}, generating.ErrAllPlatformsFailed)
			},
			validate: func(t *testing.T, resp domain.AdKitResponse, err error) {
				assert.ErrorIs(t, err, generating.ErrAllPlatformsFailed)

				listed, err := service.List(session.ID)
				require.NoError(t, err)
				assert.Len(t, listed.Ads, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			resp, err := service.GenerateKit(context.Background(), tt.sessionID, tt.request)
			tt.validate(t, resp, err)
		})
	}
}

func TestService_GenerateKitMergesBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGenerator := generatingmocks.NewMockGenerator(ctrl)
	service := NewService(NewStore(), mockGenerator, varyingmocks.NewMockVarier(ctrl))

	session := service.Create(domain.AdKitRequest{
		Product:   "Smart Lamp",
		BrandSpec: domain.BrandSpec{Brand: "Acme", Palette: "red", Vibe: "retro"},
	})

	merged := domain.BrandSpec{Brand: "Acme", Palette: "red", Vibe: "retro", CTAHint: "Buy"}

	gomock.InOrder(
		mockGenerator.EXPECT().
			GenerateKit(gomock.Any(), "Smart Lamp", merged).
			Return(domain.KitResult{Ads: sampleAds()}, nil),
		mockGenerator.EXPECT().
			GenerateKit(gomock.Any(), "Smart Lamp", domain.BrandSpec{Brand: "Acme", Palette: "blue", Vibe: "retro", CTAHint: "Buy"}).
			Return(domain.KitResult{Ads: sampleAds()}, nil),
	)

	_, err := service.GenerateKit(context.Background(), session.ID, domain.AdKitRequest{
		BrandSpec: domain.BrandSpec{CTAHint: "Buy"},
	})
	require.NoError(t, err)

	// o merge anterior fica gravado na sessão
	_, err = service.GenerateKit(context.Background(), session.ID, domain.AdKitRequest{
		BrandSpec: domain.BrandSpec{Palette: "blue", Vibe: "  "},
	})
	require.NoError(t, err)
}

func TestService_VaryAndRestore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewStore()
	mockVarier := varyingmocks.NewMockVarier(ctrl)
	service := NewService(store, generatingmocks.NewMockGenerator(ctrl), mockVarier)

	session := store.Create("Smart Lamp", domain.BrandSpec{})
	session.Collection.Replace(sampleAds())

	mockVarier.EXPECT().
		Regenerate(gomock.Any(), gomock.Any(), "Smart Lamp", "neon").
		DoAndReturn(func(_ context.Context, ad domain.Ad, _ string, style string) (domain.Ad, varying.Variation, error) {
			return ad.WithVariation("u2", style), varying.Variation{Prompt: "scene", Image: "u2", Style: style}, nil
		})

	varied, err := service.Vary(context.Background(), session.ID, 0, "neon")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, varied.Variations)
	assert.Equal(t, "u2", varied.Image)
	assert.Equal(t, "C1 (neon style)", varied.Caption)

	restored, err := service.Restore(session.ID, 0, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", restored.Image)
	assert.Equal(t, []string{"u1", "u2"}, restored.Variations)

	_, err = service.Restore(session.ID, 0, "never-generated")
	assert.ErrorIs(t, err, domain.ErrVariationNotFound)

	var sessionErr *SessionError
	require.ErrorAs(t, err, &sessionErr)
	assert.Equal(t, 0, sessionErr.Index)

	_, err = service.Restore(session.ID, 0, "")
	assert.ErrorIs(t, err, domain.ErrImageURLRequired)

	_, err = service.Vary(context.Background(), session.ID, 7, "neon")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	sibling, _ := session.Collection.At(1)
	assert.Equal(t, []string{"w1"}, sibling.Variations)
}

func TestService_VaryStaleRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewStore()
	mockVarier := varyingmocks.NewMockVarier(ctrl)
	service := NewService(store, generatingmocks.NewMockGenerator(ctrl), mockVarier)

	session := store.Create("Smart Lamp", domain.BrandSpec{})
	session.Collection.Replace(sampleAds())

	// um novo kit substitui a coleção enquanto a variação está em andamento
	mockVarier.EXPECT().
		Regenerate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ad domain.Ad, _ string, style string) (domain.Ad, varying.Variation, error) {
			session.Collection.Replace(sampleAds())
			return ad.WithVariation("u2", style), varying.Variation{Image: "u2", Style: style}, nil
		})

	_, err := service.Vary(context.Background(), session.ID, 0, "neon")
	assert.ErrorIs(t, err, ErrStaleRun)

	ad, _ := session.Collection.At(0)
	assert.Equal(t, []string{"u1"}, ad.Variations)
}

func TestService_VaryProviderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewStore()
	mockVarier := varyingmocks.NewMockVarier(ctrl)
	service := NewService(store, generatingmocks.NewMockGenerator(ctrl), mockVarier)

	session := store.Create("Smart Lamp", domain.BrandSpec{})
	session.Collection.Replace(sampleAds())

	mockVarier.EXPECT().
		Regenerate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Ad{}, varying.Variation{}, errors.Join(domain.ErrImageProvider, errors.New("503")))

	_, err := service.Vary(context.Background(), session.ID, 0, "neon")
	assert.ErrorIs(t, err, domain.ErrImageProvider)

	ad, _ := session.Collection.At(0)
	assert.Equal(t, "u1", ad.Image)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(NewStore(), generatingmocks.NewMockGenerator(ctrl), varyingmocks.NewMockVarier(ctrl))
	session := service.Create(domain.AdKitRequest{})

	require.NoError(t, service.Delete(session.ID))
	assert.ErrorIs(t, service.Delete(session.ID), ErrSessionNotFound)

	_, err := service.List(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
