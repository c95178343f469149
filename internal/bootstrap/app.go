// Package bootstrap wires configuration, storage, stores, and the HTTP
// router into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"pastebin-backend/internal/files"
	"pastebin-backend/internal/pastes"
	"pastebin-backend/internal/shared/config"
	"pastebin-backend/internal/shared/server"
	"pastebin-backend/internal/shared/storage/blob"
	localblob "pastebin-backend/internal/shared/storage/blob/local"
	s3blob "pastebin-backend/internal/shared/storage/blob/s3"
	"pastebin-backend/internal/shared/storage/mongodb"
)

// App holds shared dependencies, constructed once at service start and held
// for the process lifetime.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *mongo.Database
	Blobs  blob.Store

	PastesRepo   pastes.Repo
	FilesRepo    files.Repo
	PasteService *pastes.Service
	FileService  *files.Service
	PasteHandler *pastes.Handler
	FileHandler  *files.Handler
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	db, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	blobs, err := buildBlobs(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Blobs:  blobs,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:       app.Config,
		PasteHandler: app.PasteHandler,
		FileHandler:  app.FileHandler,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*mongo.Database, error) {
	if strings.TrimSpace(cfg.MongoURI) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: MONGO_URI empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: mongo connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return db, nil
}

func buildBlobs(ctx context.Context, cfg config.Config) (blob.Store, error) {
	switch cfg.BlobStoreType {
	case "s3":
		return s3blob.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localblob.New(cfg.UploadDir)
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.PastesRepo = pastes.NewMongoRepo(app.DB)
		app.FilesRepo = files.NewMongoRepo(app.DB)
	} else {
		app.PastesRepo = pastes.NewMemoryRepo()
		app.FilesRepo = files.NewMemoryRepo()
	}

	app.PasteService = &pastes.Service{Repo: app.PastesRepo}
	app.FileService = &files.Service{
		Repo:           app.FilesRepo,
		Blobs:          app.Blobs,
		Pastes:         app.PasteService,
		MaxUploadBytes: app.Config.MaxUploadBytes,
	}
	app.PasteHandler = pastes.NewHandler(app.PasteService)
	app.FileHandler = files.NewHandler(app.FileService)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
