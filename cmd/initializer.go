package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"stayback/internal/config"
	"stayback/internal/handlers"
	"stayback/internal/notify"
	"stayback/internal/repositories"
	"stayback/internal/services"
	"stayback/utils"
)

type application struct {
	errorLog        *log.Logger
	infoLog         *log.Logger
	db              *sql.DB
	rdb             *redis.Client
	sessionRepo     *repositories.SessionRepository
	tokens          *utils.Manager
	signingKey      string
	accessTTL       time.Duration
	userHandler     *handlers.UserHandler
	offerHandler    *handlers.OfferHandler
	commentHandler  *handlers.CommentHandler
	favoriteHandler *handlers.FavoriteHandler
	uploadHandler   *handlers.UploadHandler
}

func initializeApp(cfg config.Config, db *sql.DB, errorLog, infoLog *log.Logger) (*application, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	tokens, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		return nil, err
	}

	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	offerRepo := repositories.OfferRepository{DB: db}
	commentRepo := repositories.CommentRepository{DB: db}
	favoriteRepo := repositories.FavoriteRepository{DB: db}
	sessionRepo := repositories.SessionRepository{RDB: rdb}

	// Services
	userService := &services.UserService{
		UserRepo:    &userRepo,
		SessionRepo: &sessionRepo,
		Tokens:      tokens,
		AccessTTL:   time.Duration(cfg.Auth.AccessTTLHours) * time.Hour,
		RefreshTTL:  time.Duration(cfg.Auth.RefreshTTLHours) * time.Hour,
	}
	offerService := &services.OfferService{OfferRepo: &offerRepo}
	commentService := &services.CommentService{
		CommentRepo: &commentRepo,
		OfferRepo:   &offerRepo,
		UserRepo:    &userRepo,
		Notifier:    newCommentNotifier(cfg, errorLog),
	}
	favoriteService := &services.FavoriteService{FavoriteRepo: &favoriteRepo}

	files := &utils.FileStore{Dir: cfg.Uploads.Dir}
	if cfg.S3.Enabled {
		files.S3 = &utils.S3Config{
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
		}
	}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	offerHandler := &handlers.OfferHandler{Service: offerService}
	commentHandler := &handlers.CommentHandler{Service: commentService, OfferService: offerService}
	favoriteHandler := &handlers.FavoriteHandler{Service: favoriteService, OfferService: offerService}
	uploadHandler := &handlers.UploadHandler{Files: files, UserService: userService}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		db:              db,
		rdb:             rdb,
		sessionRepo:     &sessionRepo,
		tokens:          tokens,
		signingKey:      cfg.Auth.SigningKey,
		accessTTL:       time.Duration(cfg.Auth.AccessTTLHours) * time.Hour,
		userHandler:     userHandler,
		offerHandler:    offerHandler,
		commentHandler:  commentHandler,
		favoriteHandler: favoriteHandler,
		uploadHandler:   uploadHandler,
	}, nil
}

// newCommentNotifier builds the FCM client when credentials are
// configured. Without credentials notifications are silently disabled.
func newCommentNotifier(cfg config.Config, errorLog *log.Logger) *notify.CommentNotifier {
	notifier := &notify.CommentNotifier{ErrorLog: errorLog}
	if cfg.FCM.CredentialsFile == "" {
		return notifier
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.FCM.CredentialsFile))
	if err != nil {
		errorLog.Printf("firebase init failed: %v", err)
		return notifier
	}

	var client *messaging.Client
	if client, err = app.Messaging(ctx); err != nil {
		errorLog.Printf("fcm client init failed: %v", err)
		return notifier
	}

	notifier.Client = client
	return notifier
}

func (app *application) close() {
	if app.rdb != nil {
		app.rdb.Close()
	}
}

func openDB(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
