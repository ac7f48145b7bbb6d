package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"dnavault.com/internal/api/middleware"
	"dnavault.com/internal/auth"
	"dnavault.com/internal/config"
	"dnavault.com/internal/repository"
	"dnavault.com/internal/service"
)

// Router registers all business routes
type Router struct {
	app *fiber.App
	cfg *config.Config
	db  *gorm.DB
	rdb *redis.Client // optional, backs the logout denylist
}

func NewRouter(app *fiber.App, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *Router {
	return &Router{
		app: app,
		cfg: cfg,
		db:  db,
		rdb: rdb,
	}
}

// RegisterRoutes wires repositories, services and handlers onto the app
func (r *Router) RegisterRoutes() {
	userRepo := repository.NewUserRepository(r.db)
	seqRepo := repository.NewSequenceRepository(r.db)

	denylist := auth.NewDenylist(r.rdb)
	tokens := auth.NewTokenManager(r.cfg.JWT.Secret, r.cfg.JWT.TTL, denylist)

	userSvc := service.NewUserService(userRepo, tokens)
	seqSvc := service.NewSequenceService(seqRepo)

	authHandler := NewAuthHandler(userSvc, userRepo, tokens)
	seqHandler := NewSequenceHandler(seqSvc)

	// Public auth routes
	r.app.Post("/auth/register", authHandler.Register)
	r.app.Post("/auth/login", authHandler.Login)
	authHandler.EnsureAdminUser(r.cfg.Admin)

	// Everything below resolves identity before the access policy runs
	requireAuth := middleware.RequireAuth(tokens, userRepo)

	authed := r.app.Group("/auth", requireAuth)
	authed.Get("/me", authHandler.GetMe)
	authed.Post("/logout", authHandler.Logout)

	sequences := r.app.Group("/sequences", requireAuth)
	sequences.Post("/", seqHandler.Create)
	sequences.Post("/import", seqHandler.Import)
	sequences.Get("/search", seqHandler.Search)
	sequences.Get("/me", seqHandler.ListMine)
	sequences.Get("/", seqHandler.ListAll)
}
