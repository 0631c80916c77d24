package floorbus_test

import (
	"context"
	"os"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/business/domain/floorbus"
	"github.com/stayvie/floorplan/business/sdk/sqldb"
	"github.com/stayvie/floorplan/business/types/name"
	"github.com/stayvie/floorplan/foundation/logger"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	floors map[uuid.UUID]floorbus.Floor
}

func newMemStore() *memStore {
	return &memStore{floors: make(map[uuid.UUID]floorbus.Floor)}
}

func (m *memStore) NewWithTx(tx sqldb.CommitRollbacker) (floorbus.Storer, error) {
	return m, nil
}

func (m *memStore) Create(_ context.Context, flr floorbus.Floor) error {
	for _, f := range m.floors {
		if f.OutletID == flr.OutletID && f.Level == flr.Level {
			return floorbus.ErrUniqueLevel
		}
	}
	m.floors[flr.ID] = flr
	return nil
}

func (m *memStore) Update(_ context.Context, flr floorbus.Floor) error {
	for _, f := range m.floors {
		if f.ID != flr.ID && f.OutletID == flr.OutletID && f.Level == flr.Level {
			return floorbus.ErrUniqueLevel
		}
	}
	m.floors[flr.ID] = flr
	return nil
}

func (m *memStore) Delete(_ context.Context, flr floorbus.Floor) error {
	delete(m.floors, flr.ID)
	return nil
}

func (m *memStore) QueryByOutlet(_ context.Context, outletID uuid.UUID) ([]floorbus.Floor, error) {
	var flrs []floorbus.Floor
	for _, flr := range m.floors {
		if flr.OutletID == outletID {
			flrs = append(flrs, flr)
		}
	}
	sort.Slice(flrs, func(i, j int) bool { return flrs[i].Level < flrs[j].Level })
	return flrs, nil
}

func (m *memStore) QueryByID(_ context.Context, floorID uuid.UUID) (floorbus.Floor, error) {
	flr, ok := m.floors[floorID]
	if !ok {
		return floorbus.Floor{}, floorbus.ErrNotFound
	}
	return flr, nil
}

func (m *memStore) QueryByLevel(_ context.Context, outletID uuid.UUID, level int) (floorbus.Floor, error) {
	for _, flr := range m.floors {
		if flr.OutletID == outletID && flr.Level == level {
			return flr, nil
		}
	}
	return floorbus.Floor{}, floorbus.ErrNotFound
}

// =============================================================================

func newCore() *floorbus.Core {
	log := logger.New(os.Stdout, logger.LevelError, "TEST", nil)
	return floorbus.NewCore(log, newMemStore())
}

func TestCreateDuplicateLevel(t *testing.T) {
	core := newCore()
	ctx := context.Background()
	outletID := uuid.New()

	original, err := core.Create(ctx, floorbus.NewFloor{
		OutletID: outletID,
		Level:    1,
		Name:     name.MustParse("Lantai 1"),
		ViewBox:  "0 0 800 600",
	})
	require.NoError(t, err)

	_, err = core.Create(ctx, floorbus.NewFloor{
		OutletID: outletID,
		Level:    1,
		Name:     name.MustParse("Another Lantai 1"),
	})
	require.ErrorIs(t, err, floorbus.ErrUniqueLevel)

	got, err := core.QueryByLevel(ctx, outletID, 1)
	require.NoError(t, err)
	require.Equal(t, original.ID, got.ID, "the existing floor is untouched")
	require.Equal(t, "Lantai 1", got.Name.String())

	other, err := core.Create(ctx, floorbus.NewFloor{
		OutletID: uuid.New(),
		Level:    1,
		Name:     name.MustParse("Lantai 1"),
	})
	require.NoError(t, err, "the level is unique per outlet, not globally")
	require.NotEqual(t, original.ID, other.ID)
}

func TestQueryByOutletOrdersByLevel(t *testing.T) {
	core := newCore()
	ctx := context.Background()
	outletID := uuid.New()

	for _, level := range []int{3, 1, 2} {
		_, err := core.Create(ctx, floorbus.NewFloor{
			OutletID: outletID,
			Level:    level,
			Name:     name.MustParse("Lantai"),
		})
		require.NoError(t, err)
	}

	flrs, err := core.QueryByOutlet(ctx, outletID)
	require.NoError(t, err)
	require.Len(t, flrs, 3)
	for i, flr := range flrs {
		require.Equal(t, i+1, flr.Level)
	}
}

func TestUpdateLevelConflict(t *testing.T) {
	core := newCore()
	ctx := context.Background()
	outletID := uuid.New()

	_, err := core.Create(ctx, floorbus.NewFloor{OutletID: outletID, Level: 1, Name: name.MustParse("Lantai 1")})
	require.NoError(t, err)

	flr2, err := core.Create(ctx, floorbus.NewFloor{OutletID: outletID, Level: 2, Name: name.MustParse("Lantai 2")})
	require.NoError(t, err)

	conflict := 1
	_, err = core.Update(ctx, flr2, floorbus.UpdateFloor{Level: &conflict})
	require.ErrorIs(t, err, floorbus.ErrUniqueLevel)
}
