package app

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	redigo "github.com/garyburd/redigo/redis"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/reporemover/reporemover-api/internal/api/endpointutil"
	"github.com/reporemover/reporemover-api/internal/api/events"
	apisession "github.com/reporemover/reporemover-api/internal/api/session"
	"github.com/reporemover/reporemover-api/internal/shared/apperrors"
	"github.com/reporemover/reporemover-api/internal/shared/config"
	"github.com/reporemover/reporemover-api/internal/shared/db/redis"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	"github.com/reporemover/reporemover-api/internal/shared/providers"
	apiauth "github.com/reporemover/reporemover-api/pkg/api/auth"
	"github.com/reporemover/reporemover-api/pkg/api/auth/oauth"
	"github.com/reporemover/reporemover-api/pkg/api/services/auth"
	eventsservice "github.com/reporemover/reporemover-api/pkg/api/services/events"
	"github.com/reporemover/reporemover-api/pkg/api/services/health"
	"github.com/reporemover/reporemover-api/pkg/api/services/repo"
	"github.com/reporemover/reporemover-api/pkg/api/services/star"
	"github.com/rs/cors"
	"github.com/urfave/negroni"
)

const (
	authSessMaxAge  = 30 * 24 * time.Hour
	oauthSessMaxAge = time.Hour
)

type appServices struct {
	repo   repo.Service
	star   star.Service
	events eventsservice.Service
	auth   auth.Service
	health health.Service
}

type App struct {
	cfg             config.Config
	log             logutil.Log
	trackedLog      logutil.Log
	errTracker      apperrors.Tracker
	services        appServices
	sessStore       sessions.Store
	authSessFactory *apisession.Factory
	authorizer      *apiauth.Authorizer
	providerFactory providers.Factory
	eventsTracker   *events.Tracker
	redisPool       *redigo.Pool
}

func (a *App) buildDeps() {
	if a.log == nil {
		debugKeys := strings.Split(os.Getenv("DEBUG_KEYS"), ",")
		slog := logutil.NewStderrLog("reporemover-api", debugKeys...)
		slog.SetLevel(logutil.ParseLogLevel(os.Getenv("LOG_LEVEL"), logutil.LogLevelInfo))
		if os.Getenv("LOG_FORMAT") == "json" {
			slog.UseJSONFormat()
		}
		a.log = slog
	}

	if a.cfg == nil {
		a.cfg = config.NewEnvConfig(a.log)
	}

	if a.errTracker == nil {
		a.errTracker = apperrors.GetTracker(a.cfg, a.log, "api")
	}
	if a.trackedLog == nil {
		a.trackedLog = apperrors.WrapLogWithTracker(a.log, nil, a.errTracker)
	}

	if a.providerFactory == nil {
		a.providerFactory = providers.NewBasicFactory(a.trackedLog, a.cfg)
	}

	if a.eventsTracker == nil {
		a.eventsTracker = events.NewTracker(a.cfg, a.trackedLog.Child("events"))
	}

	if a.redisPool == nil && redis.IsConfigured(a.cfg) {
		redisPool, err := redis.GetPool(a.cfg)
		if err != nil {
			a.log.Fatalf("Can't get redis pool: %s", err)
		}
		a.redisPool = redisPool
	}
}

func (a *App) buildSessions() {
	store, err := apisession.NewStore(a.redisPool, a.cfg, a.trackedLog)
	if err != nil {
		a.log.Fatalf("Failed to make session store: %s", err)
	}
	a.sessStore = store

	a.authSessFactory = apisession.NewFactory(store, a.cfg, authSessMaxAge)
	a.authorizer = apiauth.NewAuthorizer(a.authSessFactory)
}

func (a *App) buildServices() {
	oauthSessFactory := apisession.NewFactory(a.sessStore, a.cfg, oauthSessMaxAge)

	a.services.auth = auth.BasicService{
		Cfg:          a.cfg,
		OAuthFactory: oauth.NewFactory(oauthSessFactory, a.trackedLog, a.cfg),
		Authorizer:   a.authorizer,
		Tracker:      a.eventsTracker,
	}
	a.services.repo = repo.BasicService{
		ProviderFactory: a.providerFactory,
		Tracker:         a.eventsTracker,
	}
	a.services.star = star.BasicService{
		ProviderFactory: a.providerFactory,
	}
	a.services.events = eventsservice.BasicService{
		Tracker: a.eventsTracker,
	}
	a.services.health = health.BasicService{}
}

func NewApp(modifiers ...Modifier) *App {
	a := App{}
	for _, m := range modifiers {
		m(&a)
	}
	a.buildDeps()
	a.buildSessions()
	a.buildServices()

	return &a
}

func (a App) registerHandlers(r *mux.Router) {
	regCtx := &endpointutil.HandlerRegContext{
		Authorizer: a.authorizer,
		Log:        a.log,
		ErrTracker: a.errTracker,
	}
	health.RegisterHandlers(r, a.services.health, regCtx)
	auth.RegisterHandlers(r, a.services.auth, regCtx)
	repo.RegisterHandlers(r, a.services.repo, regCtx)
	star.RegisterHandlers(r, a.services.star, regCtx)
	eventsservice.RegisterHandlers(r, a.services.events, regCtx)
}

func (a App) RunForever() {
	http.Handle("/", a.GetHTTPHandler())

	addr := fmt.Sprintf(":%d", a.cfg.GetInt("port", 3000))
	a.log.Infof("Listening on %s...", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		a.log.Errorf("Can't listen HTTP on %s: %s", addr, err)
		os.Exit(1)
	}
}

func (a App) allowedOrigins() []string {
	if origins := a.cfg.GetStringList("CORS_ALLOWED_ORIGINS"); len(origins) != 0 {
		return origins
	}

	if webRoot := a.cfg.GetString("WEB_ROOT"); webRoot != "" {
		return []string{webRoot}
	}

	return nil
}

func (a App) GetHTTPHandler() http.Handler {
	r := mux.NewRouter()
	a.registerHandlers(r)

	c := cors.New(cors.Options{
		AllowedOrigins:   a.allowedOrigins(),
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
	})

	n := negroni.Classic()
	n.Use(c)
	n.UseHandler(r)
	return n
}
