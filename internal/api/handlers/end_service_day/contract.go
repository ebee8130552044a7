package end_service_day

import (
	"context"

	endServiceDay "github.com/hopes-corner/HC-OpsService/internal/usecase/end_service_day"
)

type EndServiceDayUseCase interface {
	Execute(ctx context.Context, req *endServiceDay.Request) (*endServiceDay.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
