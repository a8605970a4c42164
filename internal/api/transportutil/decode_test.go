package transportutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/reporemover/reporemover-api/internal/api/apierrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	Owner string `request:",urlPart,"`
	Name  string `request:",urlPart,"`
}

type testPage struct {
	Page    int `request:",urlParam,optional"`
	PerPage int `request:"per_page,urlParam,optional"`
}

type testBody struct {
	Names []string `json:"names"`
}

func decodeRouted(pattern, url string, req interface{}) error {
	var err error
	r := mux.NewRouter()
	r.HandleFunc(pattern, func(w http.ResponseWriter, hr *http.Request) {
		err = DecodeRequest(req, hr)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, url, nil))
	return err
}

func TestDecodeURLParts(t *testing.T) {
	var req struct {
		Repo *testRepo
	}

	require.NoError(t, decodeRouted("/v1/starred/{owner}/{name}", "/v1/starred/golang/go", &req))
	assert.Equal(t, "golang", req.Repo.Owner)
	assert.Equal(t, "go", req.Repo.Name)
}

func TestDecodeOptionalURLParams(t *testing.T) {
	var req struct {
		Page *testPage
	}

	r := httptest.NewRequest(http.MethodGet, "/v1/starred?per_page=50", nil)
	require.NoError(t, DecodeRequest(&req, r))
	assert.Equal(t, 0, req.Page.Page)
	assert.Equal(t, 50, req.Page.PerPage)
}

func TestDecodeInvalidURLParamIsBadRequest(t *testing.T) {
	var req struct {
		Page *testPage
	}

	r := httptest.NewRequest(http.MethodGet, "/v1/starred?page=abc", nil)
	err := DecodeRequest(&req, r)
	require.Error(t, err)
	assert.Equal(t, apierrors.ErrBadRequest, errors.Cause(err))
}

func TestDecodeMissingRequiredURLPart(t *testing.T) {
	var req struct {
		Repo *testRepo
	}

	err := decodeRouted("/v1/starred/{owner}", "/v1/starred/golang", &req)
	require.Error(t, err)
	assert.Equal(t, apierrors.ErrBadRequest, errors.Cause(err))
}

func TestDecodeBody(t *testing.T) {
	var req struct {
		Body *testBody
	}

	r := httptest.NewRequest(http.MethodPost, "/v1/repos/batch_delete",
		strings.NewReader(`{"names":["a","b"]}`))
	require.NoError(t, DecodeRequest(&req, r))
	assert.Equal(t, []string{"a", "b"}, req.Body.Names)
}

func TestDecodeInvalidBody(t *testing.T) {
	var req struct {
		Body *testBody
	}

	r := httptest.NewRequest(http.MethodPost, "/v1/repos/batch_delete", strings.NewReader(`{"names":`))
	err := DecodeRequest(&req, r)
	require.Error(t, err)
	assert.Equal(t, apierrors.ErrBadRequest, errors.Cause(err))
}

type testProvider struct {
	Provider string `request:",urlPart,"`
}

type testCallback struct {
	testProvider
	Code  string `request:",urlParam,optional"`
	Debug bool   `request:"x-debug,header,optional"`
}

func TestDecodeEmbeddedAndHeader(t *testing.T) {
	var req struct {
		Callback *testCallback
	}

	var err error
	r := mux.NewRouter()
	r.HandleFunc("/v1/auth/{provider}/callback", func(w http.ResponseWriter, hr *http.Request) {
		err = DecodeRequest(&req, hr)
	})
	hr := httptest.NewRequest(http.MethodGet, "/v1/auth/github/callback?code=abc", nil)
	hr.Header.Set("X-Debug", "true")
	r.ServeHTTP(httptest.NewRecorder(), hr)

	require.NoError(t, err)
	assert.Equal(t, "github", req.Callback.Provider)
	assert.Equal(t, "abc", req.Callback.Code)
	assert.True(t, req.Callback.Debug)
}

func TestDecodeMixedPartIsRejected(t *testing.T) {
	var req struct {
		Mixed *struct {
			Page  int `request:",urlParam,optional"`
			Names []string
		}
	}

	r := httptest.NewRequest(http.MethodGet, "/v1/repos?page=2", nil)
	assert.Error(t, DecodeRequest(&req, r))
}
