package session

import (
	"net/http"
	"time"

	"github.com/garyburd/redigo/redis"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"github.com/reporemover/reporemover-api/internal/shared/config"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	redistore "gopkg.in/boj/redistore.v1"
)

type Factory struct {
	store  sessions.Store
	cfg    config.Config
	maxAge time.Duration
}

// NewStore returns a redis backed store if redisPool is set and a cookie store otherwise.
// Without SESSION_SECRET outside of production a random key is used: sessions don't
// survive restarts then.
func NewStore(redisPool *redis.Pool, cfg config.Config, log logutil.Log) (sessions.Store, error) {
	secret := []byte(cfg.GetString("SESSION_SECRET"))
	if len(secret) == 0 {
		if config.IsProduction(cfg) {
			return nil, errors.New("SESSION_SECRET isn't set")
		}

		log.Warnf("SESSION_SECRET isn't set, using random session key")
		secret = securecookie.GenerateRandomKey(32)
	}

	if redisPool != nil {
		store, err := redistore.NewRediStoreWithPool(redisPool, secret)
		if err != nil {
			return nil, errors.Wrap(err, "can't create redis session store")
		}

		store.SetSerializer(redistore.JSONSerializer{})
		return store, nil
	}

	store := sessions.NewCookieStore(secret)
	return store, nil
}

func NewFactory(store sessions.Store, cfg config.Config, maxAge time.Duration) *Factory {
	return &Factory{
		store:  store,
		cfg:    cfg,
		maxAge: maxAge,
	}
}

func (f *Factory) sessionOptions() *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		Domain:   f.cfg.GetString("COOKIE_DOMAIN"),
		MaxAge:   int(f.maxAge / time.Second),
		Secure:   config.IsProduction(f.cfg),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (f *Factory) Build(ctx *RequestContext, sessType string) (*Session, error) {
	gs, err := ctx.Registry.Get(f.store, sessType)
	if err != nil && gs == nil {
		return nil, errors.Wrapf(err, "failed to get session %s", sessType)
	}
	// on a cookie decoding error (e.g. after secret rotation) gs is a new empty session

	// store options are shared by all sessions of a store, set ours per session
	gs.Options = f.sessionOptions()

	return &Session{
		gs:    gs,
		saver: ctx.Saver,
	}, nil
}
