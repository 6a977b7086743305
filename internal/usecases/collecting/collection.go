package collecting

import (
	"fmt"
	"sync"

	"github.com/vfg2006/fluxweave-api/internal/domain"
	"github.com/vfg2006/fluxweave-api/pkg/utils"
)

// Collection é a lista ordenada de anúncios de uma execução de kit.
// Toda escrita substitui o registro inteiro; leitores recebem cópias.
type Collection struct {
	mu    sync.RWMutex
	runID string
	ads   []domain.Ad
}

func NewCollection() *Collection {
	return &Collection{ads: []domain.Ad{}}
}

// Replace descarta o conteúdo anterior e inicia uma nova execução
func (c *Collection) Replace(ads []domain.Ad) string {
	next := make([]domain.Ad, len(ads))
	for i, ad := range ads {
		next[i] = ad.Clone()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.ads = next
	c.runID = utils.GenerateID()
	return c.runID
}

func (c *Collection) RunID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.runID
}

func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ads)
}

func (c *Collection) Ads() []domain.Ad {
	_, ads := c.Snapshot()
	return ads
}

// Snapshot devolve a execução atual e uma cópia profunda dos anúncios
func (c *Collection) Snapshot() (string, []domain.Ad) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ads := make([]domain.Ad, len(c.ads))
	for i, ad := range c.ads {
		ads[i] = ad.Clone()
	}
	return c.runID, ads
}

func (c *Collection) At(index int) (domain.Ad, error) {
	_, ad, err := c.AtRun(index)
	return ad, err
}

// AtRun lê o anúncio junto com a execução a que ele pertence
func (c *Collection) AtRun(index int) (string, domain.Ad, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.checkIndex(index); err != nil {
		return c.runID, domain.Ad{}, err
	}
	return c.runID, c.ads[index].Clone(), nil
}

// UpdateAt aplica uma variação ao registro atualmente no índice
func (c *Collection) UpdateAt(index int, imageURL, style string) (domain.Ad, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.updateLocked(index, imageURL, style)
}

// UpdateAtRun rejeita a variação se a coleção foi substituída desde a leitura
func (c *Collection) UpdateAtRun(runID string, index int, imageURL, style string) (domain.Ad, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if runID != c.runID {
		return domain.Ad{}, ErrStaleRun
	}
	return c.updateLocked(index, imageURL, style)
}

func (c *Collection) updateLocked(index int, imageURL, style string) (domain.Ad, error) {
	if err := c.checkIndex(index); err != nil {
		return domain.Ad{}, err
	}

	next := c.ads[index].WithVariation(imageURL, style)
	c.ads[index] = next
	return next.Clone(), nil
}

// RestoreAt só move o ponteiro da imagem; o histórico não muda
func (c *Collection) RestoreAt(index int, imageURL string) (domain.Ad, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkIndex(index); err != nil {
		return domain.Ad{}, err
	}

	next, err := c.ads[index].Restore(imageURL)
	if err != nil {
		return domain.Ad{}, err
	}
	c.ads[index] = next
	return next.Clone(), nil
}

func (c *Collection) checkIndex(index int) error {
	if index < 0 || index >= len(c.ads) {
		return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, len(c.ads))
	}
	return nil
}
