package collecting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fluxweave-api/internal/domain"
)

func TestStore_Lifecycle(t *testing.T) {
	store := NewStore()

	session := store.Create("Smart Lamp", domain.BrandSpec{Brand: "Lumen"})
	require.NotEmpty(t, session.ID)
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)

	product, brand := got.Input()
	assert.Equal(t, "Smart Lamp", product)
	assert.Equal(t, "Lumen", brand.Brand)

	require.NoError(t, store.Delete(session.ID))
	_, err = store.Get(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(session.ID), ErrSessionNotFound)
	assert.ErrorIs(t, store.Touch(session.ID), ErrSessionNotFound)
}

func TestStore_ExpireIdle(t *testing.T) {
	store := NewStore()
	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	idle := store.Create("Desk", domain.BrandSpec{})
	active := store.Create("Lamp", domain.BrandSpec{})

	now = now.Add(40 * time.Minute)
	require.NoError(t, store.Touch(active.ID))

	now = now.Add(30 * time.Minute)
	expired := store.ExpireIdle(time.Hour)

	assert.Equal(t, 1, expired)
	_, err := store.Get(idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Get(active.ID)
	assert.NoError(t, err)
}
