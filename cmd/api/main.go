package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"schoolsite/internal/config"
	"schoolsite/internal/domain/model"
	"schoolsite/internal/handler"
	"schoolsite/internal/infra/db"
	infraRepo "schoolsite/internal/infra/repository"
	"schoolsite/internal/infra/storage"
	"schoolsite/internal/server"
	"schoolsite/internal/usecase"
)

const accessTokenTTL = 12 * time.Hour

type jwtIssuer struct {
	secret []byte
	ttl    time.Duration
}

func (i *jwtIssuer) Issue(userID int64, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.ttl)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config")
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.WithError(err).Fatal("database")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Teacher{},
		&model.Review{},
		&model.SchoolInfo{},
		&model.Document{},
		&model.Category{},
		&model.Product{},
		&model.ProductImage{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.WithError(err).Fatal("migrate")
	}

	store, err := storage.NewLocalStore(cfg.MediaRoot)
	if err != nil {
		log.WithError(err).Fatal("media storage")
	}
	media := usecase.MediaURL(func(rel string) string {
		return cfg.MediaBaseURL + "/" + rel
	})

	userRepo := infraRepo.NewUserGormRepository(gormDB)
	teacherRepo := infraRepo.NewTeacherGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	schoolRepo := infraRepo.NewSchoolInfoGormRepository(gormDB)
	documentRepo := infraRepo.NewDocumentGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	imageRepo := infraRepo.NewProductImageGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	issuer := &jwtIssuer{secret: []byte(cfg.JWTSecret), ttl: accessTokenTTL}

	authUC := usecase.NewAuthUsecase(userRepo, issuer)
	merchUC := usecase.NewMerchUsecase(productRepo, categoryRepo, media)
	orderUC := usecase.NewOrderUsecase(txManager)
	teacherUC := usecase.NewTeacherUsecase(teacherRepo, store, media)
	reviewUC := usecase.NewReviewUsecase(reviewRepo)
	schoolUC := usecase.NewSchoolUsecase(schoolRepo)
	documentUC := usecase.NewDocumentUsecase(documentRepo, store, media)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	adminProductUC := usecase.NewAdminProductUsecase(txManager, productRepo, categoryRepo, store)
	imageUC := usecase.NewProductImageUsecase(txManager, imageRepo, store, media)
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager)

	if cfg.AdminEmail != "" {
		if err := authUC.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.WithError(err).Fatal("seed admin")
		}
	}

	srv := server.New(cfg, server.Handlers{
		Auth:         handler.NewAuthHandler(authUC),
		Merch:        handler.NewMerchHandler(merchUC),
		Order:        handler.NewOrderHandler(orderUC),
		Teacher:      handler.NewTeacherHandler(teacherUC),
		Review:       handler.NewReviewHandler(reviewUC),
		School:       handler.NewSchoolHandler(schoolUC),
		Document:     handler.NewDocumentHandler(documentUC),
		Category:     handler.NewCategoryHandler(categoryUC),
		AdminProduct: handler.NewAdminProductHandler(adminProductUC),
		ProductImage: handler.NewProductImageHandler(imageUC),
		AdminOrder:   handler.NewAdminOrderHandler(adminOrderUC),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		log.WithError(err).Fatal("server")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}
