package transportutil

import (
	"fmt"

	"github.com/go-kit/kit/log"
	"github.com/reporemover/reporemover-api/internal/api/apierrors"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
)

func AdaptErrorLogger(log logutil.Log) log.Logger {
	return &errorLog{
		sourceLogger: log,
	}
}

type errorLog struct {
	sourceLogger logutil.Log
}

func (el errorLog) Log(values ...interface{}) error {
	for _, v := range values {
		if err, ok := v.(error); ok && apierrors.IsErrorLikeResult(err) {
			return nil
		}
	}

	s := fmt.Sprint(values...)
	el.sourceLogger.Debugf("transport", "gokit transport error: %s", s)
	return nil
}
