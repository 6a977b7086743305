// Package bootstrap monta os integradores e casos de uso a partir da configuração.
// É compartilhado pela API e pela CLI.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fluxweave-api/infrastructure/integrator"
	"github.com/vfg2006/fluxweave-api/infrastructure/integrator/anthropic"
	"github.com/vfg2006/fluxweave-api/infrastructure/integrator/anthropic/anthropicclient"
	"github.com/vfg2006/fluxweave-api/infrastructure/integrator/fal"
	"github.com/vfg2006/fluxweave-api/infrastructure/integrator/fal/falclient"
	"github.com/vfg2006/fluxweave-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/fluxweave-api/internal/config"
	"github.com/vfg2006/fluxweave-api/internal/usecases/branding"
	"github.com/vfg2006/fluxweave-api/internal/usecases/collecting"
	"github.com/vfg2006/fluxweave-api/internal/usecases/copywriting"
	"github.com/vfg2006/fluxweave-api/internal/usecases/generating"
	"github.com/vfg2006/fluxweave-api/internal/usecases/varying"
	"github.com/vfg2006/fluxweave-api/pkg/utils"
)

type Providers struct {
	Text  integrator.TextGenerator
	Image integrator.ImageGenerator
}

type Services struct {
	Generator  *generating.Service
	Varier     *varying.Service
	Copywriter *copywriting.Service
	Analyzer   *branding.Service
	Collector  *collecting.Service
}

// NewProviders escolhe o provedor de texto configurado e monta o provedor de imagem
func NewProviders(ctx context.Context, cfg *config.Config) (Providers, error) {
	httpClient := utils.NewHTTPClient(time.Duration(cfg.App.HTTPTimeoutSeconds) * time.Second)

	var text integrator.TextGenerator
	switch cfg.App.TextProvider {
	case config.TextProviderAnthropic, "":
		if cfg.Anthropic.APIKey == "" {
			logrus.Warn("ANTHROPIC_KEY vazia, as requisições de texto serão rejeitadas")
		}
		text = anthropic.New(cfg.Anthropic, anthropicclient.NewClient(cfg.Anthropic, httpClient))
	case config.TextProviderGemini:
		client, err := gemini.NewClient(ctx, cfg.Gemini)
		if err != nil {
			return Providers{}, err
		}
		text = gemini.New(cfg.Gemini, client.Models)
	default:
		return Providers{}, fmt.Errorf("bootstrap: unknown text provider %q", cfg.App.TextProvider)
	}

	if cfg.Fal.APIKey == "" {
		logrus.Warn("FAL_KEY vazia, as requisições de imagem serão rejeitadas")
	}
	image := fal.New(cfg.Fal, falclient.NewClient(cfg.Fal, httpClient))

	logrus.WithFields(logrus.Fields{
		"text_provider":  cfg.App.TextProvider,
		"image_provider": "fal",
	}).Info("Provedores de IA prontos")

	return Providers{Text: text, Image: image}, nil
}

func NewServices(cfg *config.Config, providers Providers) Services {
	generator := generating.NewService(providers.Text, providers.Image, cfg.Generation)
	varier := varying.NewService(providers.Text, providers.Image)

	analyzer := branding.NewService(providers.Text)
	if cfg.BrandCache.SizeMB > 0 {
		analyzer = analyzer.WithCache(freecache.NewCache(cfg.BrandCache.SizeMB*1024*1024), cfg.BrandCache.TTLSeconds)
	}

	return Services{
		Generator:  generator,
		Varier:     varier,
		Copywriter: copywriting.NewService(providers.Text),
		Analyzer:   analyzer,
		Collector:  collecting.NewService(collecting.NewStore(), generator, varier),
	}
}
