package main

import (
	"io"
	"log"
	"os"

	"github.com/hrdash/hr-dashboard-api/internal/config"
	"github.com/hrdash/hr-dashboard-api/internal/logging"
	"github.com/hrdash/hr-dashboard-api/internal/media"
	miniostore "github.com/hrdash/hr-dashboard-api/internal/repository/minio"
	"github.com/hrdash/hr-dashboard-api/internal/repository/postgres"
	"github.com/hrdash/hr-dashboard-api/internal/service"
	transport "github.com/hrdash/hr-dashboard-api/internal/transport/http"
	"github.com/hrdash/hr-dashboard-api/internal/transport/mail"
	"github.com/hrdash/hr-dashboard-api/internal/util"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("Warning: logstash writer disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	minioClient, err := miniostore.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
	if err != nil {
		log.Fatalf("connect object storage: %v", err)
	}
	storage := miniostore.NewStorage(minioClient, cfg.MinIOPublicURL, cfg.MinIOUseSSL)

	userRepo := postgres.NewUserRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)
	resetRepo := postgres.NewPasswordResetRepo(db)
	employeeRepo := postgres.NewEmployeeRepo(db)
	departmentRepo := postgres.NewDepartmentRepo(db)
	roleRepo := postgres.NewRoleRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	jwtManager := util.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)
	mailer := mail.NewPasswordResetMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)

	authService := service.NewAuthService(userRepo, sessionRepo, resetRepo, mailer, jwtManager, cfg.GoogleAudience)
	employeeService := service.NewEmployeeService(employeeRepo, storage, media.NewImageProcessor(), cfg.MinIOBucketAvatars)
	departmentService := service.NewDepartmentService(departmentRepo)
	roleService := service.NewRoleService(roleRepo)
	statsService := service.NewStatsService(statsRepo)

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterPages(e)
	transport.RegisterSwagger(e)
	transport.RegisterAuth(e, authService)
	transport.RegisterEmployees(e, authService, employeeService)
	transport.RegisterDepartments(e, authService, departmentService)
	transport.RegisterRoles(e, authService, roleService)
	transport.RegisterStats(e, authService, statsService)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
