package outletbus_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/business/domain/outletbus"
	"github.com/stayvie/floorplan/business/sdk/order"
	"github.com/stayvie/floorplan/business/sdk/page"
	"github.com/stayvie/floorplan/business/sdk/sqldb"
	"github.com/stayvie/floorplan/business/types/name"
	"github.com/stayvie/floorplan/business/types/slug"
	"github.com/stayvie/floorplan/foundation/logger"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	outlets map[uuid.UUID]outletbus.Outlet
}

func newMemStore() *memStore {
	return &memStore{outlets: make(map[uuid.UUID]outletbus.Outlet)}
}

func (m *memStore) NewWithTx(tx sqldb.CommitRollbacker) (outletbus.Storer, error) {
	return m, nil
}

func (m *memStore) Create(_ context.Context, otl outletbus.Outlet) error {
	for _, o := range m.outlets {
		if o.Slug.Equal(otl.Slug) {
			return outletbus.ErrUniqueSlug
		}
	}
	m.outlets[otl.ID] = otl
	return nil
}

func (m *memStore) Update(_ context.Context, otl outletbus.Outlet) error {
	for _, o := range m.outlets {
		if o.ID != otl.ID && o.Slug.Equal(otl.Slug) {
			return outletbus.ErrUniqueSlug
		}
	}
	m.outlets[otl.ID] = otl
	return nil
}

func (m *memStore) Delete(_ context.Context, otl outletbus.Outlet) error {
	delete(m.outlets, otl.ID)
	return nil
}

func (m *memStore) Query(_ context.Context, _ outletbus.QueryFilter, _ order.By, _ page.Page) ([]outletbus.Outlet, error) {
	var otls []outletbus.Outlet
	for _, otl := range m.outlets {
		otls = append(otls, otl)
	}
	return otls, nil
}

func (m *memStore) Count(_ context.Context, _ outletbus.QueryFilter) (int, error) {
	return len(m.outlets), nil
}

func (m *memStore) QueryByID(_ context.Context, outletID uuid.UUID) (outletbus.Outlet, error) {
	otl, ok := m.outlets[outletID]
	if !ok {
		return outletbus.Outlet{}, outletbus.ErrNotFound
	}
	return otl, nil
}

func (m *memStore) QueryBySlug(_ context.Context, slg slug.Slug) (outletbus.Outlet, error) {
	for _, otl := range m.outlets {
		if otl.Slug.Equal(slg) {
			return otl, nil
		}
	}
	return outletbus.Outlet{}, outletbus.ErrNotFound
}

// =============================================================================

func newCore() *outletbus.Core {
	log := logger.New(os.Stdout, logger.LevelError, "TEST", nil)
	return outletbus.NewCore(log, newMemStore())
}

func TestCreateDerivesSlug(t *testing.T) {
	core := newCore()
	ctx := context.Background()

	otl, err := core.Create(ctx, outletbus.NewOutlet{
		Name:        name.MustParse("Bhaskara Osix"),
		CompanyName: name.MustParse("Stayvie Co-Living"),
	})
	require.NoError(t, err)
	require.Equal(t, "bhaskara-osix", otl.Slug.String())
}

func TestCreateSuffixesDerivedSlug(t *testing.T) {
	core := newCore()
	ctx := context.Background()

	no := outletbus.NewOutlet{
		Name:        name.MustParse("Bhaskara Osix"),
		CompanyName: name.MustParse("Stayvie Co-Living"),
	}

	first, err := core.Create(ctx, no)
	require.NoError(t, err)
	require.Equal(t, "bhaskara-osix", first.Slug.String())

	second, err := core.Create(ctx, no)
	require.NoError(t, err)
	require.Equal(t, "bhaskara-osix-2", second.Slug.String())

	third, err := core.Create(ctx, no)
	require.NoError(t, err)
	require.Equal(t, "bhaskara-osix-3", third.Slug.String())
}

func TestCreateExplicitSlugConflict(t *testing.T) {
	core := newCore()
	ctx := context.Background()

	no := outletbus.NewOutlet{
		Slug:        slug.MustParse("osix"),
		Name:        name.MustParse("Bhaskara Osix"),
		CompanyName: name.MustParse("Stayvie Co-Living"),
	}

	_, err := core.Create(ctx, no)
	require.NoError(t, err)

	_, err = core.Create(ctx, no)
	require.ErrorIs(t, err, outletbus.ErrUniqueSlug)
}
