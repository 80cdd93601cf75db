package main

import (
	"context"
	"log"

	"github.com/NetanelBaruch/Moddo/config"
	"github.com/NetanelBaruch/Moddo/internal/auth"
	"github.com/NetanelBaruch/Moddo/internal/bootstrap"
	"github.com/NetanelBaruch/Moddo/internal/cleanup"
	"github.com/NetanelBaruch/Moddo/internal/generation"
	"github.com/NetanelBaruch/Moddo/internal/projects/repository"
	"github.com/NetanelBaruch/Moddo/internal/storage/gcs"
)

const serviceName = "moddo-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	app, err := auth.InitializeFirebase(&cfg.Firebase)
	if err != nil {
		log.Fatalf("failed to initialize Firebase: %v", err)
	}

	authClient, err := auth.AuthClient(app)
	if err != nil {
		log.Fatalf("failed to initialize Firebase auth: %v", err)
	}

	fsClient, err := bootstrap.FirestoreClient(ctx, app)
	if err != nil {
		log.Fatalf("failed to initialize Firestore: %v", err)
	}
	defer fsClient.Close()

	redisClient, err := bootstrap.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Fatalf("failed to initialize Redis: %v", err)
	}
	defer redisClient.Close()

	var store *gcs.Store
	if cfg.Storage.Bucket != "" {
		storageClient, err := bootstrap.StorageClient(ctx, &cfg.Firebase)
		if err != nil {
			log.Fatalf("failed to initialize Storage: %v", err)
		}
		defer storageClient.Close()
		store = gcs.NewStore(storageClient, cfg.Storage.Bucket)
	} else {
		log.Println("STORAGE_BUCKET not set, generated files will not be persisted")
	}

	scheduler := cleanup.NewScheduler(repository.NewProjectRepository(fsClient))
	scheduler.Start()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Firestore:   fsClient,
		Redis:       redisClient,
		Auth:        authClient,
		Store:       store,
		Images:      generation.NewImageClient(cfg.Services.ImageGenURL),
		Meshes:      generation.NewMeshClient(cfg.Services.ReconstructURL, cfg.Services.ConvertURL),
	})

	log.Printf("%s v%s listening on :%s", serviceName, cfg.App.Version, cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
