package migrate

import (
	"context"
	"os"
	"testing"

	"github.com/stayvie/floorplan/foundation/logger"
	"github.com/stretchr/testify/require"
)

func TestSeedAdminSkipsEmptyPassword(t *testing.T) {
	log := logger.New(os.Stdout, logger.LevelError, "TEST", nil)

	// A nil tx proves the database is never touched when no password is set.
	err := seedAdmin(context.Background(), log, nil, SeedConfig{
		AdminName:     "Admin",
		AdminEmail:    "admin@stayvie.com",
		AdminPassword: "",
	})
	require.NoError(t, err)
}
