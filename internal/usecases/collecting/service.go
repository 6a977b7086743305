package collecting

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fluxweave-api/internal/domain"
	"github.com/vfg2006/fluxweave-api/internal/usecases/generating"
	"github.com/vfg2006/fluxweave-api/internal/usecases/varying"
	"github.com/vfg2006/fluxweave-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Collector interface {
	Create(request domain.AdKitRequest) domain.SessionResponse
	GenerateKit(ctx context.Context, sessionID string, request domain.AdKitRequest) (domain.AdKitResponse, error)
	Vary(ctx context.Context, sessionID string, index int, style string) (domain.Ad, error)
	Restore(sessionID string, index int, imageURL string) (domain.Ad, error)
	List(sessionID string) (domain.SessionResponse, error)
	Delete(sessionID string) error
	ExpireIdle(ttl time.Duration) int
}

type Service struct {
	store     *Store
	generator generating.Generator
	varier    varying.Varier
}

func NewService(store *Store, generator generating.Generator, varier varying.Varier) *Service {
	return &Service{
		store:     store,
		generator: generator,
		varier:    varier,
	}
}

func (s *Service) Create(request domain.AdKitRequest) domain.SessionResponse {
	session := s.store.Create(request.Product, request.BrandSpec)

	logrus.WithField("session_id", session.ID).Info("Sessão criada")

	return domain.SessionResponse{ID: session.ID, Ads: []domain.Ad{}}
}

// GenerateKit gera um kit novo e substitui a coleção da sessão.
// Campos vazios da requisição herdam os valores guardados na sessão.
func (s *Service) GenerateKit(ctx context.Context, sessionID string, request domain.AdKitRequest) (domain.AdKitResponse, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return domain.AdKitResponse{}, err
	}

	product, brand := session.Input()
	if strings.TrimSpace(request.Product) != "" {
		product = request.Product
	}
	brand = brand.Merge(request.BrandSpec)

	kit, err := s.generator.GenerateKit(ctx, product, brand)
	if err != nil {
		return domain.AdKitResponse{Ads: []domain.Ad{}, Failures: kit.Failures}, err
	}

	session.setInput(product, brand)
	runID := session.Collection.Replace(kit.Ads)

	log.ForContext(ctx).WithFields(log.Fields{
		"session_id": sessionID,
		"run_id":     runID,
		"ads":        len(kit.Ads),
		"failures":   len(kit.Failures),
	}).Info("Coleção da sessão substituída pelo novo kit")

	return domain.AdKitResponse{
		RunID:    runID,
		Ads:      kit.Ads,
		Failures: kit.Failures,
	}, nil
}

// Vary regenera a imagem do anúncio no índice e grava a variação no registro
// atual. Se um novo kit substituiu a coleção nesse meio tempo, nada é gravado.
func (s *Service) Vary(ctx context.Context, sessionID string, index int, style string) (domain.Ad, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return domain.Ad{}, err
	}

	runID, ad, err := session.Collection.AtRun(index)
	if err != nil {
		return domain.Ad{}, NewSessionError(err, sessionID, index)
	}

	product, _ := session.Input()
	_, variation, err := s.varier.Regenerate(ctx, ad, product, style)
	if err != nil {
		return domain.Ad{}, err
	}

	updated, err := session.Collection.UpdateAtRun(runID, index, variation.Image, variation.Style)
	if err != nil {
		if errors.Is(err, ErrStaleRun) {
			log.ForContext(ctx).WithFields(log.Fields{
				"session_id": sessionID,
				"index":      index,
				"run_id":     runID,
			}).Warn("Variação descartada, a coleção foi substituída durante a geração")
		}
		return domain.Ad{}, NewSessionError(err, sessionID, index)
	}

	return updated, nil
}

func (s *Service) Restore(sessionID string, index int, imageURL string) (domain.Ad, error) {
	if strings.TrimSpace(imageURL) == "" {
		return domain.Ad{}, domain.ErrImageURLRequired
	}

	session, err := s.session(sessionID)
	if err != nil {
		return domain.Ad{}, err
	}

	restored, err := session.Collection.RestoreAt(index, imageURL)
	if err != nil {
		return domain.Ad{}, NewSessionError(err, sessionID, index)
	}
	return restored, nil
}

func (s *Service) List(sessionID string) (domain.SessionResponse, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return domain.SessionResponse{}, err
	}

	runID, ads := session.Collection.Snapshot()
	return domain.SessionResponse{
		ID:    session.ID,
		RunID: runID,
		Ads:   ads,
	}, nil
}

func (s *Service) Delete(sessionID string) error {
	if err := s.store.Delete(sessionID); err != nil {
		return NewSessionError(err, sessionID, -1)
	}
	return nil
}

func (s *Service) ExpireIdle(ttl time.Duration) int {
	return s.store.ExpireIdle(ttl)
}

func (s *Service) session(sessionID string) (*Session, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return nil, NewSessionError(err, sessionID, -1)
	}
	_ = s.store.Touch(sessionID)
	return session, nil
}
