package health

import (
	"github.com/reporemover/reporemover-api/pkg/api/request"
	"github.com/reporemover/reporemover-api/pkg/api/returntypes"
)

type Service interface {
	//url:/v1/health
	Check(rc *request.AnonymousContext) (*returntypes.HealthResponse, error)
}

type BasicService struct{}

func (s BasicService) Check(rc *request.AnonymousContext) (*returntypes.HealthResponse, error) {
	return &returntypes.HealthResponse{Status: "ok"}, nil
}
