package session

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
)

// Saver collects changed sessions of a request to write them once, before the response.
type Saver struct {
	sessions []*sessions.Session
	log      logutil.Log
}

func NewSaver(log logutil.Log) *Saver {
	return &Saver{
		log: log,
	}
}

func (s *Saver) Save(sess *sessions.Session) {
	for _, saved := range s.sessions {
		if saved == sess {
			return
		}
	}

	s.sessions = append(s.sessions, sess)
}

func (s Saver) FinalizeHTTP(r *http.Request, w http.ResponseWriter) error {
	for _, sess := range s.sessions {
		if err := sess.Save(r, w); err != nil {
			return errors.Wrapf(err, "can't finalize session saving for sess %s", sess.Name())
		}
		s.log.Debugf("session", "Session finalization: url=%s: saved session %s (%d values)",
			r.URL.Path, sess.Name(), len(sess.Values))
	}

	return nil
}
