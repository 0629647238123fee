package main

import (
	"context"
	"log"

	"github.com/hrdash/hr-dashboard-api/internal/config"
	"github.com/hrdash/hr-dashboard-api/internal/repository/postgres"
	"github.com/hrdash/hr-dashboard-api/internal/seed"
	"github.com/hrdash/hr-dashboard-api/internal/service"
	"github.com/hrdash/hr-dashboard-api/internal/util"
)

func main() {
	cfg := config.Load()

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	fixture, err := seed.Load(cfg.SeedFile)
	if err != nil {
		log.Fatalf("load seed file: %v", err)
	}

	userRepo := postgres.NewUserRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)
	resetRepo := postgres.NewPasswordResetRepo(db)
	jwtManager := util.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)

	authService := service.NewAuthService(userRepo, sessionRepo, resetRepo, nil, jwtManager, cfg.GoogleAudience)
	departmentService := service.NewDepartmentService(postgres.NewDepartmentRepo(db))
	roleService := service.NewRoleService(postgres.NewRoleRepo(db))

	seeder := seed.NewSeeder(authService, departmentService, roleService)
	if err := seeder.Apply(context.Background(), fixture); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Println("seed complete")
}
