package events

import (
	"fmt"

	"github.com/reporemover/reporemover-api/internal/api/apierrors"
	sharedevents "github.com/reporemover/reporemover-api/internal/api/events"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	"github.com/reporemover/reporemover-api/pkg/api/request"
	"github.com/reporemover/reporemover-api/pkg/api/returntypes"
)

type Request struct {
	Name    string                 `json:"name"`
	Payload map[string]interface{} `json:"payload"`
}

func (r Request) FillLogContext(lctx logutil.Context) {
	lctx["event_name"] = r.Name
	for k, v := range r.Payload {
		lctx["event_"+k] = fmt.Sprint(v)
	}
}

type Service interface {
	//url:/v1/events/analytics method:POST
	TrackEvent(rc *request.AuthorizedContext, req *Request) (*returntypes.EmptyResponse, error)
}

type BasicService struct {
	Tracker *sharedevents.Tracker
}

func (s BasicService) TrackEvent(rc *request.AuthorizedContext, req *Request) (*returntypes.EmptyResponse, error) {
	if req.Name == "" {
		return nil, apierrors.NewBadRequestError("no event name")
	}

	s.Tracker.ForUser(rc.Auth.Login).Track(rc.Ctx, req.Name, req.Payload)
	return &returntypes.EmptyResponse{}, nil
}
