package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fadilmartias/useresume-gateway/internal/dto"
	"github.com/fadilmartias/useresume-gateway/internal/errors"
	"github.com/fadilmartias/useresume-gateway/internal/logging"
	"github.com/fadilmartias/useresume-gateway/internal/metrics"
	"github.com/fadilmartias/useresume-gateway/internal/model"
	"github.com/fadilmartias/useresume-gateway/internal/response"
	"github.com/fadilmartias/useresume-gateway/internal/service"
	"github.com/fadilmartias/useresume-gateway/internal/validation"
)

// ServiceProvider resolves the dispatcher on first use.
type ServiceProvider func() (service.UseResumeServiceInterface, error)

// Fixed wraps an already constructed dispatcher.
func Fixed(svc service.UseResumeServiceInterface) ServiceProvider {
	return func() (service.UseResumeServiceInterface, error) { return svc, nil }
}

// DocumentUsecase holds the operation facades. Every method validates the
// raw input, dispatches at most one remote call and always returns an
// envelope; no error escapes to the caller.
type DocumentUsecase struct {
	provider ServiceProvider
	logger   *zerolog.Logger
}

func NewDocumentUsecase(provider ServiceProvider, logger *zerolog.Logger) *DocumentUsecase {
	if logger == nil {
		logger = logging.Nop()
	}
	return &DocumentUsecase{provider: provider, logger: logger}
}

func (uc *DocumentUsecase) CreateResume(ctx context.Context, raw json.RawMessage) response.Envelope {
	return execute(ctx, uc, ToolCreateResume, raw,
		func(ctx context.Context, svc service.UseResumeServiceInterface, req *model.CreateResumeRequest) (response.Envelope, error) {
			out, err := svc.CreateResume(ctx, req)
			if err != nil {
				return response.Envelope{}, err
			}
			return documentEnvelope(out), nil
		})
}

func (uc *DocumentUsecase) CreateTailoredResume(ctx context.Context, raw json.RawMessage) response.Envelope {
	return execute(ctx, uc, ToolCreateTailoredResume, raw,
		func(ctx context.Context, svc service.UseResumeServiceInterface, req *model.TailoredResumeRequest) (response.Envelope, error) {
			out, err := svc.CreateTailoredResume(ctx, req)
			if err != nil {
				return response.Envelope{}, err
			}
			return documentEnvelope(out), nil
		})
}

func (uc *DocumentUsecase) ParseResume(ctx context.Context, raw json.RawMessage) response.Envelope {
	return execute(ctx, uc, ToolParseResume, raw,
		func(ctx context.Context, svc service.UseResumeServiceInterface, req *model.ParseRequest) (response.Envelope, error) {
			out, err := svc.ParseResume(ctx, req)
			if err != nil {
				return response.Envelope{}, err
			}
			return response.Success(out.Data, out.Meta), nil
		})
}

func (uc *DocumentUsecase) CreateCoverLetter(ctx context.Context, raw json.RawMessage) response.Envelope {
	return execute(ctx, uc, ToolCreateCoverLetter, raw,
		func(ctx context.Context, svc service.UseResumeServiceInterface, req *model.CreateCoverLetterRequest) (response.Envelope, error) {
			out, err := svc.CreateCoverLetter(ctx, req)
			if err != nil {
				return response.Envelope{}, err
			}
			return documentEnvelope(out), nil
		})
}

func (uc *DocumentUsecase) CreateTailoredCoverLetter(ctx context.Context, raw json.RawMessage) response.Envelope {
	return execute(ctx, uc, ToolCreateTailoredCoverLetter, raw,
		func(ctx context.Context, svc service.UseResumeServiceInterface, req *model.TailoredCoverLetterRequest) (response.Envelope, error) {
			out, err := svc.CreateTailoredCoverLetter(ctx, req)
			if err != nil {
				return response.Envelope{}, err
			}
			return documentEnvelope(out), nil
		})
}

func (uc *DocumentUsecase) ParseCoverLetter(ctx context.Context, raw json.RawMessage) response.Envelope {
	return execute(ctx, uc, ToolParseCoverLetter, raw,
		func(ctx context.Context, svc service.UseResumeServiceInterface, req *model.ParseRequest) (response.Envelope, error) {
			out, err := svc.ParseCoverLetter(ctx, req)
			if err != nil {
				return response.Envelope{}, err
			}
			return response.Success(out.Data, out.Meta), nil
		})
}

// GetRunStatus is a read: it reports the run as it is now, in_progress
// included, and costs no credits.
func (uc *DocumentUsecase) GetRunStatus(ctx context.Context, raw json.RawMessage) response.Envelope {
	return execute(ctx, uc, ToolGetRunStatus, raw,
		func(ctx context.Context, svc service.UseResumeServiceInterface, req *model.GetRunRequest) (response.Envelope, error) {
			out, err := svc.GetRun(ctx, req.RunID)
			if err != nil {
				return response.Envelope{}, err
			}
			return response.Success(dto.NewRunStatusDTO(out.Data), dto.Meta{CreditsUsed: 0}), nil
		})
}

func documentEnvelope(out *dto.CreateDocumentResponse) response.Envelope {
	return response.Success(dto.NewDocumentFileDTO(out.Data), out.Meta)
}

type dispatchFunc[T any] func(context.Context, service.UseResumeServiceInterface, *T) (response.Envelope, error)

// execute runs Received -> Validated -> Dispatched -> Succeeded|Failed.
// A validation failure never reaches the dispatcher.
func execute[T any](ctx context.Context, uc *DocumentUsecase, tool string, raw json.RawMessage, dispatch dispatchFunc[T]) (env response.Envelope) {
	ctx = logging.WithTool(ctx, tool)
	logger := logging.With(ctx, uc.logger)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("operation panicked")
			env = response.FromError(errors.Newf("internal error: %v", r))
		}
		outcome := "success"
		if !env.Success {
			outcome = string(env.Type)
		}
		metrics.IncToolCall(tool, outcome)

		ev := logger.Info()
		if !env.Success {
			ev = logger.Warn().Str("error", env.Error)
		}
		if meta, ok := env.Meta.(dto.Meta); ok && meta.RunID != nil {
			ev = ev.Str("run_id", *meta.RunID)
		}
		ev.Str("outcome", outcome).Dur("duration", time.Since(start)).Msg("tool call")
	}()

	req, err := validation.Validate[T](raw)
	if err != nil {
		return response.FromError(err)
	}

	svc, err := uc.provider()
	if err != nil {
		return response.FromError(err)
	}

	out, err := dispatch(ctx, svc, req)
	if err != nil {
		var transportErr *errors.TransportError
		if errors.As(err, &transportErr) {
			logger.Debug().Err(transportErr.Cause).Msg("transport failure")
		}
		return response.FromError(err)
	}
	return out
}

// Call dispatches to the facade registered under name.
func (uc *DocumentUsecase) Call(ctx context.Context, name string, raw json.RawMessage) (response.Envelope, error) {
	tool, ok := Lookup(name)
	if !ok {
		return response.Envelope{}, errors.WithHint(
			errors.Newf("unknown tool %q", name),
			fmt.Sprintf("available tools: %v", Names()))
	}
	return tool.Handler(uc)(ctx, raw), nil
}
