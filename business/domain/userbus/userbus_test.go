package userbus_test

import (
	"context"
	"net/mail"
	"testing"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/business/domain/userbus"
	"github.com/stayvie/floorplan/business/sdk/order"
	"github.com/stayvie/floorplan/business/sdk/page"
	"github.com/stayvie/floorplan/business/sdk/sqldb"
	"github.com/stayvie/floorplan/business/types/name"
	"github.com/stayvie/floorplan/business/types/password"
	"github.com/stayvie/floorplan/business/types/role"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	users map[uuid.UUID]userbus.User
}

func newMemStore() *memStore {
	return &memStore{users: make(map[uuid.UUID]userbus.User)}
}

func (m *memStore) NewWithTx(tx sqldb.CommitRollbacker) (userbus.Storer, error) {
	return m, nil
}

func (m *memStore) Create(_ context.Context, usr userbus.User) error {
	for _, u := range m.users {
		if u.Email.Address == usr.Email.Address {
			return userbus.ErrUniqueEmail
		}
	}
	m.users[usr.ID] = usr
	return nil
}

func (m *memStore) Update(_ context.Context, usr userbus.User) error {
	m.users[usr.ID] = usr
	return nil
}

func (m *memStore) Delete(_ context.Context, usr userbus.User) error {
	delete(m.users, usr.ID)
	return nil
}

func (m *memStore) Query(_ context.Context, _ userbus.QueryFilter, _ order.By, _ page.Page) ([]userbus.User, error) {
	var usrs []userbus.User
	for _, usr := range m.users {
		usrs = append(usrs, usr)
	}
	return usrs, nil
}

func (m *memStore) Count(_ context.Context, _ userbus.QueryFilter) (int, error) {
	return len(m.users), nil
}

func (m *memStore) QueryByID(_ context.Context, userID uuid.UUID) (userbus.User, error) {
	usr, ok := m.users[userID]
	if !ok {
		return userbus.User{}, userbus.ErrNotFound
	}
	return usr, nil
}

func (m *memStore) QueryByEmail(_ context.Context, email mail.Address) (userbus.User, error) {
	for _, usr := range m.users {
		if usr.Email.Address == email.Address {
			return usr, nil
		}
	}
	return userbus.User{}, userbus.ErrNotFound
}

// =============================================================================

func newUser(email string) userbus.NewUser {
	return userbus.NewUser{
		Name:     name.MustParse("Test User"),
		Email:    mail.Address{Address: email},
		Role:     role.Editor,
		Password: password.MustParse("gophers1"),
	}
}

func TestCreateAndAuthenticate(t *testing.T) {
	core := userbus.NewCore(newMemStore())
	ctx := context.Background()

	usr, err := core.Create(ctx, newUser("Budi@Stayvie.com"))
	require.NoError(t, err)
	require.True(t, usr.Enabled)
	require.Equal(t, "budi@stayvie.com", usr.Email.Address, "email is stored lowercased")
	require.NotContains(t, string(usr.PasswordHash), "gophers1")

	got, err := core.Authenticate(ctx, mail.Address{Address: "BUDI@stayvie.com"}, "gophers1")
	require.NoError(t, err)
	require.Equal(t, usr.ID, got.ID)

	_, err = core.Authenticate(ctx, usr.Email, "wrong-pass")
	require.ErrorIs(t, err, userbus.ErrAuthenticationFailure)

	_, err = core.Authenticate(ctx, mail.Address{Address: "missing@stayvie.com"}, "gophers1")
	require.ErrorIs(t, err, userbus.ErrNotFound)
}

func TestCreateDuplicateEmail(t *testing.T) {
	core := userbus.NewCore(newMemStore())
	ctx := context.Background()

	_, err := core.Create(ctx, newUser("budi@stayvie.com"))
	require.NoError(t, err)

	_, err = core.Create(ctx, newUser("budi@stayvie.com"))
	require.ErrorIs(t, err, userbus.ErrUniqueEmail)
}

func TestUpdate(t *testing.T) {
	core := userbus.NewCore(newMemStore())
	ctx := context.Background()

	usr, err := core.Create(ctx, newUser("budi@stayvie.com"))
	require.NoError(t, err)

	newName := name.MustParse("Renamed User")
	newRole := role.Admin
	disabled := false
	newPass := password.MustParse("different1")

	usr, err = core.Update(ctx, usr, userbus.UpdateUser{
		Name:     &newName,
		Role:     &newRole,
		Enabled:  &disabled,
		Password: &newPass,
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed User", usr.Name.String())
	require.True(t, usr.Role.Equal(role.Admin))
	require.False(t, usr.Enabled)

	_, err = core.Authenticate(ctx, usr.Email, "different1")
	require.NoError(t, err)
}
