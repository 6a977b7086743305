package handler

import (
	"net/http"

	"github.com/vfg2006/fluxweave-api/internal/api/handler/router"
	"github.com/vfg2006/fluxweave-api/internal/usecases/branding"
	"github.com/vfg2006/fluxweave-api/internal/usecases/collecting"
	"github.com/vfg2006/fluxweave-api/internal/usecases/copywriting"
	"github.com/vfg2006/fluxweave-api/internal/usecases/generating"
	"github.com/vfg2006/fluxweave-api/internal/usecases/varying"
	"github.com/vfg2006/fluxweave-api/pkg/middleware"
)

var (
	defaultBody = []func(http.Handler) http.Handler{middleware.BodyLimit(middleware.DefaultBodyLimit)}
	imageBody   = []func(http.Handler) http.Handler{middleware.BodyLimit(middleware.ImageBodyLimit)}
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Ads(service generating.Generator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ads",
			Method:      http.MethodPost,
			Handler:     GenerateAd(service),
			Middlewares: defaultBody,
		},
		{
			Path:        "/v1/adkit",
			Method:      http.MethodPost,
			Handler:     GenerateAdKit(service),
			Middlewares: defaultBody,
		},
		{
			Path:        "/v1/enhance-scene",
			Method:      http.MethodPost,
			Handler:     EnhanceScene(service),
			Middlewares: defaultBody,
		},
		{
			Path:        "/v1/images",
			Method:      http.MethodPost,
			Handler:     GenerateImages(service),
			Middlewares: defaultBody,
		},
		{
			Path:        "/v1/aesthetic",
			Method:      http.MethodPost,
			Handler:     ComposeAesthetic(service),
			Middlewares: defaultBody,
		},
	}
}

func Variations(service varying.Varier) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ad-variation",
			Method:      http.MethodPost,
			Handler:     GenerateVariation(service),
			Middlewares: defaultBody,
		},
	}
}

func Copywriting(service copywriting.Copywriter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/hashtags",
			Method:      http.MethodPost,
			Handler:     GenerateHashtags(service),
			Middlewares: defaultBody,
		},
		{
			Path:        "/v1/captions",
			Method:      http.MethodPost,
			Handler:     GenerateCaption(service),
			Middlewares: defaultBody,
		},
		{
			Path:        "/v1/descriptions",
			Method:      http.MethodPost,
			Handler:     GenerateDescription(service),
			Middlewares: defaultBody,
		},
	}
}

func Branding(service branding.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/brand-style",
			Method:      http.MethodPost,
			Handler:     AnalyzeBrandStyle(service),
			Middlewares: imageBody,
		},
	}
}

// Sessions retorna as rotas da coleção de anúncios com estado no servidor
func Sessions(service collecting.Collector) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sessions",
			Method:      http.MethodPost,
			Handler:     CreateSession(service),
			Middlewares: defaultBody,
		},
		{
			Path:    "/v1/sessions/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSession(service),
		},
		{
			Path:        "/v1/sessions/:id/kit",
			Method:      http.MethodPost,
			Handler:     GenerateSessionKit(service),
			Middlewares: defaultBody,
		},
		{
			Path:    "/v1/sessions/:id/ads",
			Method:  http.MethodGet,
			Handler: ListSessionAds(service),
		},
		{
			Path:        "/v1/sessions/:id/ads/:index/variations",
			Method:      http.MethodPost,
			Handler:     VarySessionAd(service),
			Middlewares: defaultBody,
		},
		{
			Path:        "/v1/sessions/:id/ads/:index/restore",
			Method:      http.MethodPost,
			Handler:     RestoreSessionAd(service),
			Middlewares: defaultBody,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
