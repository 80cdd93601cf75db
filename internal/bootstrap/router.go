package bootstrap

import (
	"cloud.google.com/go/firestore"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/NetanelBaruch/Moddo/internal/api/http"
	"github.com/NetanelBaruch/Moddo/internal/api/http/middleware"
	authmw "github.com/NetanelBaruch/Moddo/internal/auth/middleware"
	"github.com/NetanelBaruch/Moddo/internal/generation"
	jobsrepo "github.com/NetanelBaruch/Moddo/internal/jobs/repository"
	projectshttp "github.com/NetanelBaruch/Moddo/internal/projects/http"
	"github.com/NetanelBaruch/Moddo/internal/projects/repository"
	"github.com/NetanelBaruch/Moddo/internal/projects/service"
	"github.com/NetanelBaruch/Moddo/internal/storage/gcs"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Firestore   *firestore.Client
	Redis       *redis.Client
	Auth        *fbauth.Client
	Store       *gcs.Store
	Images      *generation.ImageClient
	Meshes      *generation.MeshClient
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Firestore, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(authmw.FirebaseAuthMiddleware(dep.Auth))

	projectRepo := repository.NewProjectRepository(dep.Firestore)
	jobRepo := jobsrepo.NewJobRepository(dep.Redis)
	svc := service.NewProjectService(projectRepo, dep.Images, dep.Meshes, jobRepo, dep.Store)

	projectsGroup := api.Group("/projects")
	projectshttp.Register(projectsGroup, projectshttp.New(svc))

	return r
}
