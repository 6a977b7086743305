package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fluxweave-api/internal/api/handler/router"
	"github.com/vfg2006/fluxweave-api/internal/domain"
	brandingmocks "github.com/vfg2006/fluxweave-api/internal/usecases/branding/mocks"
	"github.com/vfg2006/fluxweave-api/internal/usecases/collecting"
	collectingmocks "github.com/vfg2006/fluxweave-api/internal/usecases/collecting/mocks"
	copywritingmocks "github.com/vfg2006/fluxweave-api/internal/usecases/copywriting/mocks"
	"github.com/vfg2006/fluxweave-api/internal/usecases/generating"
	generatingmocks "github.com/vfg2006/fluxweave-api/internal/usecases/generating/mocks"
	varyingmocks "github.com/vfg2006/fluxweave-api/internal/usecases/varying/mocks"
	"github.com/vfg2006/fluxweave-api/pkg/apiErrors"
	"github.com/vfg2006/fluxweave-api/pkg/log"
	"github.com/vfg2006/fluxweave-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	generator  *generatingmocks.MockGenerator
	varier     *varyingmocks.MockVarier
	copywriter *copywritingmocks.MockCopywriter
	analyzer   *brandingmocks.MockAnalyzer
	collector  *collectingmocks.MockCollector
}

func newTestRouter(ctrl *gomock.Controller) (http.Handler, testMocks) {
	m := testMocks{
		generator:  generatingmocks.NewMockGenerator(ctrl),
		varier:     varyingmocks.NewMockVarier(ctrl),
		copywriter: copywritingmocks.NewMockCopywriter(ctrl),
		analyzer:   brandingmocks.NewMockAnalyzer(ctrl),
		collector:  collectingmocks.NewMockCollector(ctrl),
	}

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Ads(m.generator)...),
		router.WithRoutes(Variations(m.varier)...),
		router.WithRoutes(Copywriting(m.copywriter)...),
		router.WithRoutes(Branding(m.analyzer)...),
		router.WithRoutes(Sessions(m.collector)...),
	)
	return rt, m
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt, m := newTestRouter(ctrl)

	sampleAd := domain.NewAd("a1", domain.PlatformInstagram, domain.AdCopy{Headline: "H", Caption: "C", VisualPrompt: "V"}, "u1")

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		setup    func()
		status   int
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Healthcheck - deve responder 200",
			method: http.MethodGet,
			path:   "/healthcheck",
			setup:  func() {},
			status: http.StatusOK,
		},
		{
			name:   "Anúncio único - deve devolver a resposta do serviço",
			method: http.MethodPost,
			path:   "/v1/ads",
			body:   `{"platform":"instagram","product":"Lamp","brand":"Lumen"}`,
			setup: func() {
				m.generator.EXPECT().
					GenerateSingle(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req domain.AdRequest) (domain.AdResponse, error) {
						assert.Equal(t, "Lumen", req.Brand)
						return domain.AdResponse{Platform: domain.PlatformInstagram, Images: []string{"u1"}, Ad: sampleAd}, nil
					})
			},
			status: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp domain.AdResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, []string{"u1"}, resp.Images)
				assert.Equal(t, []string{"u1"}, resp.Ad.Variations)
			},
		},
		{
			name:   "Plataforma desconhecida - deve responder 400",
			method: http.MethodPost,
			path:   "/v1/ads",
			body:   `{"platform":"myspace","product":"Lamp"}`,
			setup: func() {
				m.generator.EXPECT().
					GenerateSingle(gomock.Any(), gomock.Any()).
					Return(domain.AdResponse{}, domain.ErrUnknownPlatform)
			},
			status: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
			},
		},
		{
			name:   "JSON inválido - deve responder 400 sem chamar o serviço",
			method: http.MethodPost,
			path:   "/v1/ads",
			body:   `{"platform":`,
			setup:  func() {},
			status: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
			},
		},
		{
			name:   "Falha do provedor com plataforma - deve responder 502 com detalhes",
			method: http.MethodPost,
			path:   "/v1/ads",
			body:   `{"platform":"x","product":"Lamp"}`,
			setup: func() {
				m.generator.EXPECT().
					GenerateSingle(gomock.Any(), gomock.Any()).
					Return(domain.AdResponse{}, generating.NewGenerationError(domain.ErrImageProvider, domain.PlatformX, errors.New("503")))
			},
			status: http.StatusBadGateway,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decodeError(t, rec)
				assert.Equal(t, apiErrors.ErrImageProvider, body.Code)
				assert.Equal(t, map[string]any{"platform": "x"}, body.Details)
			},
		},
		{
			name:   "Kit parcial - deve responder 200 com as falhas marcadas",
			method: http.MethodPost,
			path:   "/v1/adkit",
			body:   `{"product":"Lamp"}`,
			setup: func() {
				m.generator.EXPECT().
					GenerateKit(gomock.Any(), "Lamp", domain.BrandSpec{}).
					Return(domain.KitResult{
						Ads:      []domain.Ad{sampleAd},
						Failures: []domain.PlatformFailure{{Platform: domain.PlatformSnapchat, Error: "boom"}},
					}, nil)
			},
			status: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp domain.AdKitResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Len(t, resp.Ads, 1)
				require.Len(t, resp.Failures, 1)
				assert.Equal(t, domain.PlatformSnapchat, resp.Failures[0].Platform)
			},
		},
		{
			name:   "Kit com todas as falhas - deve responder 502",
			method: http.MethodPost,
			path:   "/v1/adkit",
			body:   `{"product":"Lamp"}`,
			setup: func() {
				m.generator.EXPECT().
					GenerateKit(gomock.Any(), "Lamp", domain.BrandSpec{}).
					Return(domain.KitResult{Failures: []domain.PlatformFailure{{Platform: domain.PlatformX, Error: "boom"}}}, generating.ErrAllPlatformsFailed)
			},
			status: http.StatusBadGateway,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decodeError(t, rec)
				assert.Equal(t, apiErrors.ErrPipeline, body.Code)
				assert.Contains(t, rec.Body.String(), `"failures"`)
			},
		},
		{
			name:   "Produto ausente no kit - deve responder 400",
			method: http.MethodPost,
			path:   "/v1/adkit",
			body:   `{}`,
			setup: func() {
				m.generator.EXPECT().
					GenerateKit(gomock.Any(), "", domain.BrandSpec{}).
					Return(domain.KitResult{}, domain.ErrProductRequired)
			},
			status: http.StatusBadRequest,
		},
		{
			name:   "Variação avulsa - deve devolver prompt e imagem",
			method: http.MethodPost,
			path:   "/v1/ad-variation",
			body:   `{"platform":"x","product":"Lamp","style":"noir"}`,
			setup: func() {
				m.varier.EXPECT().
					Preview(gomock.Any(), domain.VariationRequest{Platform: "x", Product: "Lamp", Style: "noir"}).
					Return(domain.VariationResponse{VariationPrompt: "scene", Image: "u9"}, nil)
			},
			status: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"variationPrompt":"scene","image":"u9"}`, rec.Body.String())
			},
		},
		{
			name:   "Aprimoramento sem imagem - deve responder 502",
			method: http.MethodPost,
			path:   "/v1/enhance-scene",
			body:   `{"imageUrl":"u1"}`,
			setup: func() {
				m.generator.EXPECT().Enhance(gomock.Any(), "u1", "").Return("", domain.ErrNoImage)
			},
			status: http.StatusBadGateway,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrNoImage, decodeError(t, rec).Code)
			},
		},
		{
			name:   "Hashtags sem plataforma - deve responder 400",
			method: http.MethodPost,
			path:   "/v1/hashtags",
			body:   `{"product":"Lamp"}`,
			setup:  func() {},
			status: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
			},
		},
		{
			name:   "Hashtags - deve devolver a lista",
			method: http.MethodPost,
			path:   "/v1/hashtags",
			body:   `{"platform":"Pinterest","product":"Lamp"}`,
			setup: func() {
				m.copywriter.EXPECT().Hashtags(gomock.Any(), domain.PlatformPinterest, "Lamp").Return([]string{"#a"}, nil)
			},
			status: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"hashtags":["#a"]}`, rec.Body.String())
			},
		},
		{
			name:   "Legenda com falha do provedor - deve responder 502",
			method: http.MethodPost,
			path:   "/v1/captions",
			body:   `{"prompt":"lamp"}`,
			setup: func() {
				m.copywriter.EXPECT().Caption(gomock.Any(), "lamp").Return("", domain.ErrTextProvider)
			},
			status: http.StatusBadGateway,
		},
		{
			name:   "Estilo de marca - deve devolver análise",
			method: http.MethodPost,
			path:   "/v1/brand-style",
			body:   `{"imageBase64":"data:image/png;base64,QUJD"}`,
			setup: func() {
				m.analyzer.EXPECT().
					AnalyzeStyle(gomock.Any(), domain.BrandStyleRequest{ImageBase64: "data:image/png;base64,QUJD"}).
					Return(domain.BrandStyleResponse{Analysis: domain.BrandAnalysis{Mood: "calm", Colors: []string{}}}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "Sessão - criação deve responder 201",
			method: http.MethodPost,
			path:   "/v1/sessions",
			setup: func() {
				m.collector.EXPECT().Create(domain.AdKitRequest{}).Return(domain.SessionResponse{ID: "s1", Ads: []domain.Ad{}})
			},
			status: http.StatusCreated,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"id":"s1","ads":[]}`, rec.Body.String())
			},
		},
		{
			name:   "Sessão inexistente - deve responder 404",
			method: http.MethodGet,
			path:   "/v1/sessions/missing/ads",
			setup: func() {
				m.collector.EXPECT().List("missing").Return(domain.SessionResponse{}, collecting.NewSessionError(collecting.ErrSessionNotFound, "missing", -1))
			},
			status: http.StatusNotFound,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrSessionNotFound, decodeError(t, rec).Code)
			},
		},
		{
			name:   "Variação na sessão - deve repassar índice e estilo",
			method: http.MethodPost,
			path:   "/v1/sessions/s1/ads/2/variations",
			body:   `{"style":"retro"}`,
			setup: func() {
				m.collector.EXPECT().Vary(gomock.Any(), "s1", 2, "retro").Return(sampleAd.WithVariation("u2", "retro"), nil)
			},
			status: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var ad domain.Ad
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ad))
				assert.Equal(t, []string{"u1", "u2"}, ad.Variations)
			},
		},
		{
			name:   "Índice inválido - deve responder 400",
			method: http.MethodPost,
			path:   "/v1/sessions/s1/ads/abc/variations",
			setup:  func() {},
			status: http.StatusBadRequest,
		},
		{
			name:   "Índice fora da coleção - deve responder 404",
			method: http.MethodPost,
			path:   "/v1/sessions/s1/ads/9/variations",
			setup: func() {
				m.collector.EXPECT().Vary(gomock.Any(), "s1", 9, "").Return(domain.Ad{}, collecting.NewSessionError(collecting.ErrIndexOutOfRange, "s1", 9))
			},
			status: http.StatusNotFound,
		},
		{
			name:   "Restauração fora do histórico - deve responder 409",
			method: http.MethodPost,
			path:   "/v1/sessions/s1/ads/0/restore",
			body:   `{"imageUrl":"zzz"}`,
			setup: func() {
				m.collector.EXPECT().Restore("s1", 0, "zzz").Return(domain.Ad{}, collecting.NewSessionError(domain.ErrVariationNotFound, "s1", 0))
			},
			status: http.StatusConflict,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decodeError(t, rec)
				assert.Equal(t, apiErrors.ErrVariationNotFound, body.Code)
				assert.Equal(t, body.Message, body.Error)
			},
		},
		{
			name:   "Kit da sessão substituído - deve responder 409",
			method: http.MethodPost,
			path:   "/v1/sessions/s1/ads/0/variations",
			setup: func() {
				m.collector.EXPECT().Vary(gomock.Any(), "s1", 0, "").Return(domain.Ad{}, collecting.NewSessionError(collecting.ErrStaleRun, "s1", 0))
			},
			status: http.StatusConflict,
		},
		{
			name:   "Remoção de sessão - deve responder 204",
			method: http.MethodDelete,
			path:   "/v1/sessions/s1",
			setup: func() {
				m.collector.EXPECT().Delete("s1").Return(nil)
			},
			status: http.StatusNoContent,
		},
		{
			name:   "Rota inexistente - deve responder 404 em JSON",
			method: http.MethodGet,
			path:   "/v1/unknown",
			setup:  func() {},
			status: http.StatusNotFound,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrRouteNotFound, decodeError(t, rec).Code)
			},
		},
		{
			name:   "Método não permitido - deve responder 405",
			method: http.MethodGet,
			path:   "/v1/adkit",
			setup:  func() {},
			status: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			rec := httptest.NewRecorder()

			rt.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestBrandStyle_BodyLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt, _ := newTestRouter(ctrl)

	// brand-style usa o limite de imagem (10 MB); as demais rotas, o padrão (1 MB)
	payload := `{"imageBase64":"` + strings.Repeat("A", 11<<20) + `"}`

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/brand-style", strings.NewReader(payload)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/captions", strings.NewReader(`{"prompt":"`+strings.Repeat("A", 2<<20)+`"}`)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestSessionHandlers_LogContext(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()
	logrus.SetLevel(logrus.InfoLevel)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt, m := newTestRouter(ctrl)
	handler := middleware.LoggingMiddleware()(rt)

	m.collector.EXPECT().
		GenerateKit(gomock.Any(), "s-77", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ domain.AdKitRequest) (domain.AdKitResponse, error) {
			assert.Equal(t, "corr-1", log.GetCorrelationID(ctx))
			return domain.AdKitResponse{}, collecting.ErrSessionNotFound
		})

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s-77/kit", nil)
	req.Header.Set(middleware.CorrelationIDHeader, "corr-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var errorEntry *logrus.Entry
	for _, entry := range hook.AllEntries() {
		if _, ok := entry.Data["code"]; ok {
			errorEntry = entry
		}
	}
	require.NotNil(t, errorEntry)
	assert.Equal(t, "corr-1", errorEntry.Data["correlation_id"])
	assert.Equal(t, "s-77", errorEntry.Data["session_id"])
	assert.Equal(t, apiErrors.ErrSessionNotFound, errorEntry.Data["code"])
}
