package roombus_test

import (
	"context"
	"os"
	"slices"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/business/domain/roombus"
	"github.com/stayvie/floorplan/business/sdk/sqldb"
	"github.com/stayvie/floorplan/business/types/name"
	"github.com/stayvie/floorplan/business/types/roomstatus"
	"github.com/stayvie/floorplan/foundation/logger"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	rooms map[uuid.UUID]roombus.Room
}

func newMemStore() *memStore {
	return &memStore{rooms: make(map[uuid.UUID]roombus.Room)}
}

func (m *memStore) NewWithTx(tx sqldb.CommitRollbacker) (roombus.Storer, error) {
	return m, nil
}

func (m *memStore) Create(_ context.Context, rom roombus.Room) error {
	for _, r := range m.rooms {
		if r.OutletID == rom.OutletID && r.Code == rom.Code {
			return roombus.ErrUniqueCode
		}
	}
	m.rooms[rom.ID] = rom
	return nil
}

func (m *memStore) Update(_ context.Context, rom roombus.Room) error {
	for _, r := range m.rooms {
		if r.ID != rom.ID && r.OutletID == rom.OutletID && r.Code == rom.Code {
			return roombus.ErrUniqueCode
		}
	}
	m.rooms[rom.ID] = rom
	return nil
}

func (m *memStore) Delete(_ context.Context, rom roombus.Room) error {
	delete(m.rooms, rom.ID)
	return nil
}

func (m *memStore) QueryByFloor(_ context.Context, floorID uuid.UUID) ([]roombus.Room, error) {
	var roms []roombus.Room
	for _, rom := range m.rooms {
		if rom.FloorID == floorID {
			roms = append(roms, rom)
		}
	}
	sort.Slice(roms, func(i, j int) bool { return roms[i].Code < roms[j].Code })
	return roms, nil
}

func (m *memStore) QueryByID(_ context.Context, roomID uuid.UUID) (roombus.Room, error) {
	rom, ok := m.rooms[roomID]
	if !ok {
		return roombus.Room{}, roombus.ErrNotFound
	}
	return rom, nil
}

func (m *memStore) QueryByCode(_ context.Context, outletID uuid.UUID, code string) (roombus.Room, error) {
	for _, rom := range m.rooms {
		if rom.OutletID == outletID && rom.Code == code {
			return rom, nil
		}
	}
	return roombus.Room{}, roombus.ErrNotFound
}

func (m *memStore) UpdateStatusBulk(_ context.Context, outletID uuid.UUID, codes []string, status roomstatus.Status, now time.Time) ([]roombus.Room, error) {
	var updated []roombus.Room
	for id, rom := range m.rooms {
		if rom.OutletID == outletID && slices.Contains(codes, rom.Code) {
			rom.Status = status
			rom.UpdatedAt = now
			m.rooms[id] = rom
			updated = append(updated, rom)
		}
	}
	return updated, nil
}

// =============================================================================

func newCore() *roombus.Core {
	log := logger.New(os.Stdout, logger.LevelError, "TEST", nil)
	return roombus.NewCore(log, newMemStore())
}

func seedRoom(t *testing.T, core *roombus.Core, outletID uuid.UUID, floorID uuid.UUID, code string) roombus.Room {
	t.Helper()

	rom, err := core.Create(context.Background(), roombus.NewRoom{
		OutletID: outletID,
		FloorID:  floorID,
		Code:     code,
		X:        1,
		Y:        2,
		Width:    3,
		Height:   4,
		Status:   roomstatus.Booked,
	})
	require.NoError(t, err)
	return rom
}

func TestCreateDuplicateCode(t *testing.T) {
	core := newCore()
	ctx := context.Background()
	outletID := uuid.New()
	floorID := uuid.New()

	seedRoom(t, core, outletID, floorID, "A-101")

	_, err := core.Create(ctx, roombus.NewRoom{
		OutletID: outletID,
		FloorID:  uuid.New(),
		Code:     "A-101",
		Status:   roomstatus.Booked,
	})
	require.ErrorIs(t, err, roombus.ErrUniqueCode, "the code is unique per outlet across floors")

	_, err = core.Create(ctx, roombus.NewRoom{
		OutletID: uuid.New(),
		FloorID:  uuid.New(),
		Code:     "A-101",
		Status:   roomstatus.Booked,
	})
	require.NoError(t, err, "another outlet can reuse the code")
}

func TestUpdateStatusBulk(t *testing.T) {
	core := newCore()
	ctx := context.Background()
	outletID := uuid.New()
	floorID := uuid.New()

	seedRoom(t, core, outletID, floorID, "A-101")
	seedRoom(t, core, outletID, floorID, "A-102")
	untouched := seedRoom(t, core, outletID, floorID, "A-103")

	roms, err := core.UpdateStatusBulk(ctx, outletID, []string{"A-101", "A-102", "Z-999"}, roomstatus.Temporary)
	require.NoError(t, err)
	require.Len(t, roms, 2, "unknown codes are skipped")
	for _, rom := range roms {
		require.True(t, rom.Status.Equal(roomstatus.Temporary))
	}

	got, err := core.QueryByCode(ctx, outletID, untouched.Code)
	require.NoError(t, err)
	require.True(t, got.Status.Equal(roomstatus.Booked))

	roms, err = core.UpdateStatusBulk(ctx, outletID, []string{"Z-999"}, roomstatus.Temporary)
	require.NoError(t, err)
	require.Empty(t, roms)
}

func TestUpdateTenantName(t *testing.T) {
	core := newCore()
	ctx := context.Background()
	rom := seedRoom(t, core, uuid.New(), uuid.New(), "A-101")

	tenant := name.MustParseNull("Budi")
	updated, err := core.Update(ctx, rom, roombus.UpdateRoom{TenantName: &tenant})
	require.NoError(t, err)
	require.Equal(t, "Budi", updated.TenantName.String())

	cleared := name.Null{}
	updated, err = core.Update(ctx, updated, roombus.UpdateRoom{TenantName: &cleared})
	require.NoError(t, err)
	require.False(t, updated.TenantName.Valid())
}
