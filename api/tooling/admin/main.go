package main

import (
	"context"
	"flag"
	"fmt"
	"net/mail"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kelseyhightower/envconfig"
	"github.com/stayvie/floorplan/business/domain/userbus"
	"github.com/stayvie/floorplan/business/domain/userbus/stores/usercache"
	"github.com/stayvie/floorplan/business/domain/userbus/stores/userdb"
	"github.com/stayvie/floorplan/business/sdk/migrate"
	"github.com/stayvie/floorplan/business/sdk/sqldb"
	"github.com/stayvie/floorplan/business/types/name"
	"github.com/stayvie/floorplan/business/types/password"
	"github.com/stayvie/floorplan/business/types/role"
	"github.com/stayvie/floorplan/foundation/logger"
)

type Config struct {
	DB struct {
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:"postgres"`
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Name         string `envconfig:"DB_NAME" default:"floorplan"`
		Schema       string `envconfig:"DB_SCHEMA" default:""`
		MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"0"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"0"`
		DisableTLS   bool   `envconfig:"DB_DISABLE_TLS" default:"true"`
	}
}

func main() {
	log := logger.New(os.Stdout, logger.LevelInfo, "ADMIN-TOOL", nil)
	ctx := context.Background()

	if err := run(ctx, log); err != nil {
		log.Error(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("processing config: %w", err)
	}

	db, err := sqldb.Open(sqldb.Config{
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Host:         cfg.DB.Host,
		Name:         cfg.DB.Name,
		Schema:       cfg.DB.Schema,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		DisableTLS:   cfg.DB.DisableTLS,
	})
	if err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}
	defer db.Close()

	userBus := userbus.NewCore(usercache.NewStore(log, userdb.NewStore(log, db), time.Minute))

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: migrate, seed, create-user")
		return nil
	}

	switch os.Args[1] {
	case "migrate":
		if err := migrate.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrating db: %w", err)
		}
		fmt.Println("migrations complete")
		return nil
	case "seed":
		return runSeed(ctx, log, db, os.Args[2:])
	case "create-user":
		return runCreateUser(ctx, userBus, os.Args[2:])
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

func runSeed(ctx context.Context, log *logger.Logger, db *sqlx.DB, args []string) error {
	cmd := flag.NewFlagSet("seed", flag.ExitOnError)
	outletSlug := cmd.String("outlet-slug", "bhaskara-osix", "Default outlet slug")
	outletName := cmd.String("outlet-name", "Bhaskara Osix", "Default outlet name")
	companyName := cmd.String("company-name", "Stayvie Co-Living", "Default company name")
	adminName := cmd.String("admin-name", "Admin", "Initial admin name")
	adminEmail := cmd.String("admin-email", "admin@stayvie.com", "Initial admin email")
	adminPassword := cmd.String("admin-password", "", "Initial admin password")
	cmd.Parse(args)

	if err := migrate.Seed(ctx, log, db, migrate.SeedConfig{
		OutletSlug:    *outletSlug,
		OutletName:    *outletName,
		CompanyName:   *companyName,
		AdminName:     *adminName,
		AdminEmail:    *adminEmail,
		AdminPassword: *adminPassword,
	}); err != nil {
		return fmt.Errorf("seeding db: %w", err)
	}

	fmt.Println("seed complete")
	return nil
}

func runCreateUser(ctx context.Context, ub *userbus.Core, args []string) error {
	cmd := flag.NewFlagSet("create-user", flag.ExitOnError)
	emailStr := cmd.String("email", "", "User email (Required)")
	passStr := cmd.String("password", "", "User password (Required)")
	nameStr := cmd.String("name", "", "User full name (Required)")
	roleStr := cmd.String("role", "EDITOR", "User role (ADMIN, EDITOR)")
	cmd.Parse(args)

	if *emailStr == "" || *passStr == "" || *nameStr == "" {
		cmd.PrintDefaults()
		return fmt.Errorf("missing required fields")
	}

	n, err := name.Parse(*nameStr)
	if err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	r, err := role.Parse(*roleStr)
	if err != nil {
		return fmt.Errorf("invalid role: %w", err)
	}

	p, err := password.Parse(*passStr)
	if err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	addr, err := mail.ParseAddress(*emailStr)
	if err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	usr, err := ub.Create(ctx, userbus.NewUser{
		Name:     n,
		Email:    *addr,
		Password: p,
		Role:     r,
	})
	if err != nil {
		return fmt.Errorf("create user failed: %w", err)
	}

	fmt.Printf("\nSUCCESS: User created!\nID: %s\nEmail: %s\nRole: %s\n", usr.ID, usr.Email.Address, usr.Role)
	return nil
}
