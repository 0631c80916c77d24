package auth_test

import (
	"context"
	"net/mail"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/app/sdk/auth"
	"github.com/stayvie/floorplan/business/domain/userbus"
	"github.com/stayvie/floorplan/business/sdk/order"
	"github.com/stayvie/floorplan/business/sdk/page"
	"github.com/stayvie/floorplan/business/sdk/sqldb"
	"github.com/stayvie/floorplan/business/types/name"
	"github.com/stayvie/floorplan/business/types/role"
	"github.com/stayvie/floorplan/foundation/logger"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeStore struct {
	users map[uuid.UUID]userbus.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[uuid.UUID]userbus.User)}
}

func (f *fakeStore) NewWithTx(tx sqldb.CommitRollbacker) (userbus.Storer, error) {
	return f, nil
}

func (f *fakeStore) Create(_ context.Context, usr userbus.User) error {
	f.users[usr.ID] = usr
	return nil
}

func (f *fakeStore) Update(_ context.Context, usr userbus.User) error {
	f.users[usr.ID] = usr
	return nil
}

func (f *fakeStore) Delete(_ context.Context, usr userbus.User) error {
	delete(f.users, usr.ID)
	return nil
}

func (f *fakeStore) Query(_ context.Context, _ userbus.QueryFilter, _ order.By, _ page.Page) ([]userbus.User, error) {
	var usrs []userbus.User
	for _, usr := range f.users {
		usrs = append(usrs, usr)
	}
	return usrs, nil
}

func (f *fakeStore) Count(_ context.Context, _ userbus.QueryFilter) (int, error) {
	return len(f.users), nil
}

func (f *fakeStore) QueryByID(_ context.Context, userID uuid.UUID) (userbus.User, error) {
	usr, ok := f.users[userID]
	if !ok {
		return userbus.User{}, userbus.ErrNotFound
	}
	return usr, nil
}

func (f *fakeStore) QueryByEmail(_ context.Context, email mail.Address) (userbus.User, error) {
	for _, usr := range f.users {
		if usr.Email.Address == email.Address {
			return usr, nil
		}
	}
	return userbus.User{}, userbus.ErrNotFound
}

// =============================================================================

func newTestAuth(t *testing.T, store *fakeStore) *auth.Auth {
	t.Helper()

	log := logger.New(os.Stdout, logger.LevelError, "TEST", nil)

	return auth.New(auth.Config{
		Log:     log,
		UserBus: userbus.NewCore(store),
		Secret:  "test-secret",
		Issuer:  "floorplan",
	})
}

func seedUser(t *testing.T, store *fakeStore, roleStr string, enabled bool) userbus.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("gophers"), bcrypt.MinCost)
	require.NoError(t, err)

	usr := userbus.User{
		ID:           uuid.New(),
		Name:         name.MustParse("Test User"),
		Email:        mail.Address{Address: "test@stayvie.com"},
		PasswordHash: hash,
		Role:         role.MustParse(roleStr),
		Enabled:      enabled,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	store.users[usr.ID] = usr
	return usr
}

func TestTokenRoundTrip(t *testing.T) {
	store := newFakeStore()
	a := newTestAuth(t, store)
	usr := seedUser(t, store, "ADMIN", true)

	token, err := a.GenerateToken(usr)
	require.NoError(t, err)

	ctx := context.Background()

	claims, err := a.Authenticate(ctx, "Bearer "+token)
	require.NoError(t, err)
	require.Equal(t, usr.ID.String(), claims.Subject)
	require.Equal(t, "ADMIN", claims.Role)
	require.Equal(t, "test@stayvie.com", claims.Email)

	got, err := a.UserFromClaims(ctx, claims)
	require.NoError(t, err)
	require.Equal(t, usr.ID, got.ID)
}

func TestAuthenticateRejections(t *testing.T) {
	store := newFakeStore()
	a := newTestAuth(t, store)
	usr := seedUser(t, store, "EDITOR", true)

	token, err := a.GenerateToken(usr)
	require.NoError(t, err)

	ctx := context.Background()

	_, err = a.Authenticate(ctx, token)
	require.Error(t, err, "missing Bearer prefix")

	_, err = a.Authenticate(ctx, "Bearer "+token+"x")
	require.Error(t, err, "tampered signature")

	other := auth.New(auth.Config{
		Log:     logger.New(os.Stdout, logger.LevelError, "TEST", nil),
		UserBus: userbus.NewCore(store),
		Secret:  "test-secret",
		Issuer:  "someone-else",
	})
	badIssuer, err := other.GenerateToken(usr)
	require.NoError(t, err)

	_, err = a.Authenticate(ctx, "Bearer "+badIssuer)
	require.Error(t, err, "wrong issuer")
}

func TestUserFromClaimsRejections(t *testing.T) {
	store := newFakeStore()
	a := newTestAuth(t, store)
	ctx := context.Background()

	disabled := seedUser(t, store, "EDITOR", false)
	token, err := a.GenerateToken(disabled)
	require.NoError(t, err)

	claims, err := a.Authenticate(ctx, "Bearer "+token)
	require.NoError(t, err)

	_, err = a.UserFromClaims(ctx, claims)
	require.ErrorIs(t, err, auth.ErrUserDisabled)

	deleted := seedUser(t, store, "ADMIN", true)
	token, err = a.GenerateToken(deleted)
	require.NoError(t, err)
	delete(store.users, deleted.ID)

	claims, err = a.Authenticate(ctx, "Bearer "+token)
	require.NoError(t, err)

	_, err = a.UserFromClaims(ctx, claims)
	require.Error(t, err)
}

func TestAuthorize(t *testing.T) {
	store := newFakeStore()
	a := newTestAuth(t, store)
	ctx := context.Background()

	claims := auth.Claims{Role: "EDITOR"}

	require.NoError(t, a.Authorize(ctx, claims, role.Admin, role.Editor))
	require.Error(t, a.Authorize(ctx, claims, role.Admin))
	require.Error(t, a.Authorize(ctx, claims), "no roles allowed")
}

func TestLogin(t *testing.T) {
	store := newFakeStore()
	a := newTestAuth(t, store)
	ctx := context.Background()

	usr := seedUser(t, store, "ADMIN", true)

	got, err := a.Login(ctx, usr.Email, "gophers")
	require.NoError(t, err)
	require.Equal(t, usr.ID, got.ID)

	_, err = a.Login(ctx, usr.Email, "wrong")
	require.Error(t, err)

	_, err = a.Login(ctx, mail.Address{Address: "nobody@stayvie.com"}, "gophers")
	require.Error(t, err)
}
