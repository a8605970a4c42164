package sharedtest

import (
	"log"
	"net/http/httptest"
	"os"
	"path"
	"sync"
	"testing"

	"github.com/joho/godotenv"
	"github.com/reporemover/reporemover-api/internal/shared/fsutil"
	app "github.com/reporemover/reporemover-api/pkg/api"
)

type App struct {
	app        *app.App
	testserver *httptest.Server
	Github     *FakeGithub
}

func RunApp() *App {
	loadEnv()

	ta := App{
		Github: NewFakeGithub(),
	}

	deps := ta.BuildCommonDeps()

	modifiers := []app.Modifier{
		app.SetConfig(deps.Cfg),
		app.SetLog(deps.Log),
		app.SetProviderFactory(deps.ProviderFactory),
	}

	ta.app = app.NewApp(modifiers...)

	ta.testserver = httptest.NewServer(ta.app.GetHTTPHandler())
	os.Setenv("GITHUB_CALLBACK_HOST", ta.testserver.URL)
	os.Setenv("WEB_ROOT", ta.testserver.URL)

	return &ta
}

func (ta App) URL() string {
	return ta.testserver.URL
}

// loadEnv loads optional .env files, .env.test overrides .env
func loadEnv() {
	envNames := []string{".env", ".env.test"}
	for _, envName := range envNames {
		fpath := path.Join(fsutil.GetProjectRoot(), envName)
		if _, err := os.Stat(fpath); os.IsNotExist(err) {
			continue
		}

		if err := godotenv.Overload(fpath); err != nil {
			log.Fatalf("Can't load %s: %s", fpath, err)
		}
	}

	setDefaultEnv("GITHUB_KEY", "test_github_key")
	setDefaultEnv("GITHUB_SECRET", "test_github_secret")
}

func setDefaultEnv(k, v string) {
	if os.Getenv(k) == "" {
		os.Setenv(k, v)
	}
}

var (
	defaultAppOnce sync.Once
	defaultApp     *App
)

// GetDefaultTestApp returns the app shared by all tests of a package: the
// fake github keeps its state between tests, so use unique repo names.
func GetDefaultTestApp() *App {
	defaultAppOnce.Do(func() {
		defaultApp = RunApp()
	})
	return defaultApp
}

func Login(t *testing.T) *User {
	return GetDefaultTestApp().Login(t)
}
