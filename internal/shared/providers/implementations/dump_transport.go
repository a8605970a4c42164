package implementations

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/reporemover/reporemover-api/internal/shared/logutil"
)

const dumpDebugKey = "github_dump"

var unsafeFileNameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// DumpTransport writes every response body into a json file in dir.
// It's for local development only: dumps contain private repo data.
type DumpTransport struct {
	dir       string
	transport http.RoundTripper
	log       logutil.Log
	now       func() time.Time
}

func NewDumpTransport(dir string, transport http.RoundTripper, log logutil.Log) *DumpTransport {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &DumpTransport{
		dir:       dir,
		transport: transport,
		log:       log,
		now:       time.Now,
	}
}

func (t DumpTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	startedAt := t.now()
	resp, err := t.transport.RoundTrip(req)
	if err != nil {
		t.log.Debugf(dumpDebugKey, "%s %s failed after %s: %s", req.Method, req.URL.Path, time.Since(startedAt), err)
		return nil, err
	}

	t.log.Debugf(dumpDebugKey, "%s %s: %s in %s, headers: %v", req.Method, req.URL.Path, resp.Status,
		time.Since(startedAt), redactHeaders(req.Header))

	if resp.Body == nil || resp.ContentLength == 0 {
		return resp, nil
	}

	body, err := ioutil.ReadAll(resp.Body)
	resp.Body.Close()
	resp.Body = ioutil.NopCloser(bytes.NewReader(body))
	if err != nil {
		// the caller gets the same read error from the partial body
		t.log.Warnf("Can't read %s %s response body for dumping: %s", req.Method, req.URL.Path, err)
		return resp, nil
	}

	if len(body) != 0 {
		t.dump(req, startedAt, body)
	}

	return resp, nil
}

func (t DumpTransport) dumpFileName(req *http.Request, at time.Time) string {
	path := unsafeFileNameChars.ReplaceAllString(strings.Trim(req.URL.Path, "/"), "_")
	return fmt.Sprintf("github_%s_%s_%d.json", strings.ToLower(req.Method), path, at.UnixNano())
}

func (t DumpTransport) dump(req *http.Request, at time.Time, body []byte) {
	if err := os.MkdirAll(t.dir, 0700); err != nil {
		t.log.Warnf("Can't create dump dir %s: %s", t.dir, err)
		return
	}

	fpath := filepath.Join(t.dir, t.dumpFileName(req, at))
	if err := ioutil.WriteFile(fpath, body, 0600); err != nil {
		t.log.Warnf("Can't dump response to %s: %s", fpath, err)
	}
}

func redactHeaders(h http.Header) http.Header {
	ret := http.Header{}
	for k, v := range h {
		switch strings.ToLower(k) {
		case "authorization", "cookie", "set-cookie":
			ret[k] = []string{"[REDACTED]"}
		default:
			ret[k] = v
		}
	}

	return ret
}
