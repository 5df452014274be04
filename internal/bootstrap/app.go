package bootstrap

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-backend/internal/chat"
	"portfolio-backend/internal/llm"
	"portfolio-backend/internal/llm/openrouter"
	"portfolio-backend/internal/resume"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/server"
	"portfolio-backend/internal/shared/storage/db"
)

const (
	resumeCollection = "resume"
	chatsCollection  = "chats"
)

// App holds shared dependencies wired by Build.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	Mongo         *mongo.Client
	ResumeRepo    resume.Repo
	ChatRepo      chat.Repo
	ResumeService *resume.Service
	ChatService   *chat.Service
	ResumeHandler *resume.Handler
	ChatHandler   *chat.Handler
}

// Build prepares dependencies, seeds the resume store, and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	mongoClient, err := buildMongo(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var resumeRepo resume.Repo
	var chatRepo chat.Repo
	if mongoClient != nil {
		database := mongoClient.Database(cfg.MongoDatabase)
		resumeRepo = resume.NewMongoRepo(database.Collection(resumeCollection))
		chatRepo = chat.NewMongoRepo(database.Collection(chatsCollection))
	} else {
		resumeRepo = resume.NewMemoryRepo()
		chatRepo = chat.NewMemoryRepo()
	}

	resumeSvc := &resume.Service{Repo: resumeRepo}
	if err := resumeSvc.EnsureSeed(ctx); err != nil {
		return nil, fmt.Errorf("seed resume: %w", err)
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	key := strings.TrimSpace(cfg.OpenRouterAPIKey)
	if key != "" && key != openrouter.PlaceholderAPIKey {
		client, err := openrouter.NewClient(key, cfg.OpenRouterModel)
		if err != nil {
			return nil, err
		}
		llmClient = client
	} else {
		log.Printf("bootstrap: OPENROUTER_API_KEY not configured; chat requests will fail until it is set")
	}

	chatSvc := &chat.Service{
		LLM:    llmClient,
		Repo:   chatRepo,
		Resume: resumeSvc,
	}

	app := &App{
		Config:        cfg,
		Mongo:         mongoClient,
		ResumeRepo:    resumeRepo,
		ChatRepo:      chatRepo,
		ResumeService: resumeSvc,
		ChatService:   chatSvc,
		ResumeHandler: resume.NewHandler(resumeSvc),
		ChatHandler:   chat.NewHandler(chatSvc),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		ChatHandler:   app.ChatHandler,
		ResumeHandler: app.ResumeHandler,
	})

	return app, nil
}

// Close releases held resources.
func (a *App) Close() {
	if err := db.Close(a.Mongo); err != nil {
		log.Printf("bootstrap: mongo disconnect: %v", err)
	}
}

func buildMongo(ctx context.Context, cfg config.Config) (*mongo.Client, error) {
	if strings.TrimSpace(cfg.MongoURI) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: MONGODB_URI empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("MONGODB_URI is required")
	}

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: mongo connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return client, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
