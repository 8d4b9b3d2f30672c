package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres"
	commentrepo "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres/comment"
	evaluationrepo "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres/evaluation"
	eventrepo "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres/event"
	folderrepo "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres/folder"
	membershiprepo "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres/membership"
	noterepo "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres/note"
	subscriptionrepo "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres/subscription"
	userrepo "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres/user"
	authpkg "github.com/RoniAntikainen/Taitoarvio-sub000/internal/auth"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/config"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/access"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/auth"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/calendar"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/comment"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/evaluation"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/folder"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/note"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/user"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/transport/middleware"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/transport/rest"
)

// Handler is the fully wired HTTP stack. Stop releases the rate limiter's
// background goroutine.
type Handler struct {
	http.Handler
	limiter *middleware.RateLimiter
}

func (h *Handler) Stop() { h.limiter.Stop() }

// NewHandler builds repositories, services and the middleware-wrapped router
// on top of an open pool.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *Handler {
	// Repositories.
	txm := postgres.NewTxManager(pool)
	locker := postgres.NewLocker(pool)
	users := userrepo.New(pool)
	subscriptions := subscriptionrepo.New(pool)
	folders := folderrepo.New(pool)
	memberships := membershiprepo.New(pool)
	evaluations := evaluationrepo.New(pool)
	notes := noterepo.New(pool)
	events := eventrepo.New(pool)
	comments := commentrepo.New(pool)

	// Services.
	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)
	hasher := authpkg.NewPasswordHasher(cfg.Auth.BcryptCost)

	accessSvc := access.NewService(logger, folders, memberships, evaluations, access.Limits{
		MaxFolders:     cfg.Limits.FreeMaxFolders,
		MaxEvaluations: cfg.Limits.FreeMaxEvaluations,
	})
	authSvc := auth.NewService(logger, users, users, subscriptions, txm, jwtMgr, hasher, cfg.Auth)
	userSvc := user.NewService(logger, users, txm)
	folderSvc := folder.NewService(logger, folders, memberships, accessSvc, txm, locker)
	evaluationSvc := evaluation.NewService(logger, evaluations, accessSvc, txm, locker)
	noteSvc := note.NewService(logger, notes, accessSvc)
	calendarSvc := calendar.NewService(logger, events, accessSvc)
	commentSvc := comment.NewService(logger, comments, evaluations, accessSvc)

	// Transport.
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	router := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(pool, postgres.NewSchemaInspector(pool), BuildVersion()),
		Auth:       rest.NewAuthHandler(authSvc, logger),
		Settings:   rest.NewSettingsHandler(userSvc, logger),
		Folder:     rest.NewFolderHandler(folderSvc, logger),
		Evaluation: rest.NewEvaluationHandler(evaluationSvc, logger),
		Note:       rest.NewNoteHandler(noteSvc, logger),
		Event:      rest.NewEventHandler(calendarSvc, logger),
		Comment:    rest.NewCommentHandler(commentSvc, logger),
	}, limiter.Limit(cfg.RateLimit.AuthPerMinute))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtMgr),
	)(router)

	return &Handler{Handler: handler, limiter: limiter}
}
