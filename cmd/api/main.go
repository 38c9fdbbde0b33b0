package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	httpadp "elite-paisa-backend/internal/adapter/http"
	"elite-paisa-backend/internal/adapter/middleware"
	mysqlrepo "elite-paisa-backend/internal/adapter/repository/mysql"
	"elite-paisa-backend/internal/config"
	applicationDomain "elite-paisa-backend/internal/domain/application"
	loantypeDomain "elite-paisa-backend/internal/domain/loantype"
	profileDomain "elite-paisa-backend/internal/domain/profile"
	userDomain "elite-paisa-backend/internal/domain/user"
	"elite-paisa-backend/internal/infrastructure/cache"
	"elite-paisa-backend/internal/infrastructure/db"
	"elite-paisa-backend/internal/infrastructure/logger"
	"elite-paisa-backend/internal/infrastructure/mail"
	"elite-paisa-backend/internal/infrastructure/storage"
	"elite-paisa-backend/internal/usecase/application"
	"elite-paisa-backend/internal/usecase/auth"
	"elite-paisa-backend/internal/usecase/dashboard"
	"elite-paisa-backend/internal/usecase/loantype"
	"elite-paisa-backend/internal/usecase/password"
	"elite-paisa-backend/internal/usecase/profile"
	"elite-paisa-backend/pkg/token"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal("mysql connect failed", zap.Error(err))
	}
	if err := gdb.AutoMigrate(
		&userDomain.User{},
		&profileDomain.Profile{},
		&loantypeDomain.LoanType{},
		&applicationDomain.LoanApplication{},
	); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal("redis connect failed", zap.Error(err))
	}

	ctx := context.Background()
	s3c, err := storage.NewS3Client(ctx, cfg.AWSRegion, cfg.S3Bucket)
	if err != nil {
		log.Fatal("s3 client init failed", zap.Error(err))
	}
	mailer, err := mail.NewSESMailer(ctx, cfg.AWSRegion, cfg.MailSender)
	if err != nil {
		log.Fatal("ses client init failed", zap.Error(err))
	}

	users := mysqlrepo.NewUserRepository(gdb)
	profiles := mysqlrepo.NewProfileRepository(gdb)
	loanTypes := mysqlrepo.NewLoanTypeRepository(gdb)
	applications := mysqlrepo.NewApplicationRepository(gdb)
	txm := mysqlrepo.NewGormUoW(gdb)

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	otps := cache.NewOTPStore(rdb, cfg.OTPTTL)

	authUC := auth.NewUsecase(users, tokens, auth.BootstrapPolicy{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	loanTypeUC := loantype.NewUsecase(loanTypes)
	applicationUC := application.NewUsecase(applications, loanTypes, profiles, users, s3c, txm)
	profileUC := profile.NewUsecase(profiles, s3c, log)
	passwordUC := password.NewUsecase(users, otps, mailer)
	dashboardUC := dashboard.NewUsecase(users, loanTypes, applications)

	authn := middleware.NewAuthenticator(tokens, authUC)
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log)

	e := httpadp.NewRouter(httpadp.Handlers{
		Base:        httpadp.NewHandler(),
		Auth:        httpadp.NewAuthHandler(authUC),
		LoanType:    httpadp.NewLoanTypeHandler(loanTypeUC),
		Application: httpadp.NewApplicationHandler(applicationUC),
		Profile:     httpadp.NewProfileHandler(profileUC),
		Password:    httpadp.NewPasswordHandler(passwordUC),
		Dashboard:   httpadp.NewDashboardHandler(dashboardUC),
	}, authn, idemp)

	addr := ":" + cfg.AppPort
	log.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
