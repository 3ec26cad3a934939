// Command seed populates the expense category table and, with -demo, a demo
// account. Categories are upserted by name, so re-running is safe.
package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"carline/internal/config"
	"carline/internal/domain"
	"carline/internal/repository/postgres"
)

var categories = []domain.ExpenseCategory{
	{Name: "Паливо", Icon: "fuel"},
	{Name: "Ремонт", Icon: "wrench"},
	{Name: "Страховка", Icon: "shield"},
	{Name: "ТО", Icon: "gear"},
	{Name: "Мийка", Icon: "droplet"},
	{Name: "Парковка", Icon: "parking"},
	{Name: "Інше", Icon: "dots"},
}

const (
	demoEmail    = "demo@carline.app"
	demoPassword = "demo1234"
)

func main() {
	demo := flag.Bool("demo", false, "also create a demo user account")
	flag.Parse()

	if err := run(*demo); err != nil {
		log.Fatal(err)
	}
}

func run(demo bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	categoryRepo := postgres.NewExpenseCategoryRepo(db)

	created := 0
	for i := range categories {
		_, err := categoryRepo.GetByName(ctx, categories[i].Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if err := categoryRepo.Create(ctx, &categories[i]); err != nil {
			return err
		}
		created++
	}
	log.Printf("categories seeded: %d created, %d already present", created, len(categories)-created)

	if demo {
		if err := seedDemoUser(ctx, db); err != nil {
			return err
		}
	}
	return nil
}

func seedDemoUser(ctx context.Context, db *sqlx.DB) error {
	userRepo := postgres.NewUserRepo(db)

	if _, err := userRepo.GetByEmail(ctx, demoEmail); err == nil {
		log.Printf("demo user %s already present", demoEmail)
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	name := "Demo User"
	user := &domain.User{
		Email:        demoEmail,
		PasswordHash: string(hash),
		Name:         &name,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return err
	}
	log.Printf("demo user created: %s / %s", demoEmail, demoPassword)
	return nil
}
