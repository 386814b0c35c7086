package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/fadilmartias/useresume-gateway/internal/config"
	"github.com/fadilmartias/useresume-gateway/internal/dto"
	"github.com/fadilmartias/useresume-gateway/internal/errors"
	"github.com/fadilmartias/useresume-gateway/internal/logging"
	"github.com/fadilmartias/useresume-gateway/internal/metrics"
	"github.com/fadilmartias/useresume-gateway/internal/model"
)

const (
	EndpointCreateResume              = "/resume/create"
	EndpointParseResume               = "/resume/parse"
	EndpointCreateTailoredResume      = "/resume/create-tailored"
	EndpointCreateCoverLetter         = "/cover-letter/create"
	EndpointParseCoverLetter          = "/cover-letter/parse"
	EndpointCreateTailoredCoverLetter = "/cover-letter/create-tailored"
	EndpointGetRun                    = "/run/get/{runId}"
)

type UseResumeServiceInterface interface {
	CreateResume(ctx context.Context, req *model.CreateResumeRequest) (*dto.CreateDocumentResponse, error)
	ParseResume(ctx context.Context, req *model.ParseRequest) (*dto.ParseResumeResponse, error)
	CreateTailoredResume(ctx context.Context, req *model.TailoredResumeRequest) (*dto.CreateDocumentResponse, error)
	CreateCoverLetter(ctx context.Context, req *model.CreateCoverLetterRequest) (*dto.CreateDocumentResponse, error)
	ParseCoverLetter(ctx context.Context, req *model.ParseRequest) (*dto.ParseCoverLetterResponse, error)
	CreateTailoredCoverLetter(ctx context.Context, req *model.TailoredCoverLetterRequest) (*dto.CreateDocumentResponse, error)
	GetRun(ctx context.Context, runID string) (*dto.GetRunResponse, error)
}

var _ UseResumeServiceInterface = (*UseResumeService)(nil)

// UseResumeService owns one credential and one base URL. Calls are a
// single round trip: no retry, no backoff, no client-side timeout.
type UseResumeService struct {
	client *resty.Client
	logger *zerolog.Logger
}

// NewUseResumeService fails with a ConfigurationError when the credential
// is missing or malformed.
func NewUseResumeService(cfg *config.UseResumeConfig, logger *zerolog.Logger) (*UseResumeService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Nop()
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Accept", "application/json")

	logger.Debug().
		Str("base_url", cfg.BaseURL).
		Str("api_key", logging.Redact(cfg.APIKey)).
		Msg("useresume client configured")

	return &UseResumeService{client: client, logger: logger}, nil
}

// serviceOnce builds a service at most once and hands every caller the
// same instance or the same error.
type serviceOnce struct {
	once sync.Once
	svc  *UseResumeService
	err  error
}

func (o *serviceOnce) get(build func() (*UseResumeService, error)) (*UseResumeService, error) {
	o.once.Do(func() {
		o.svc, o.err = build()
	})
	return o.svc, o.err
}

var defaultService serviceOnce

// GetUseResumeService lazily builds the process-wide service from the
// environment. Concurrent first calls construct it once; a configuration
// error is returned to every caller.
func GetUseResumeService(logger *zerolog.Logger) (*UseResumeService, error) {
	return defaultService.get(func() (*UseResumeService, error) {
		return NewUseResumeService(config.LoadUseResumeConfig(), logger)
	})
}

func (s *UseResumeService) CreateResume(ctx context.Context, req *model.CreateResumeRequest) (*dto.CreateDocumentResponse, error) {
	return s.createDocument(ctx, EndpointCreateResume, req)
}

func (s *UseResumeService) CreateTailoredResume(ctx context.Context, req *model.TailoredResumeRequest) (*dto.CreateDocumentResponse, error) {
	return s.createDocument(ctx, EndpointCreateTailoredResume, req)
}

func (s *UseResumeService) CreateCoverLetter(ctx context.Context, req *model.CreateCoverLetterRequest) (*dto.CreateDocumentResponse, error) {
	return s.createDocument(ctx, EndpointCreateCoverLetter, req)
}

func (s *UseResumeService) CreateTailoredCoverLetter(ctx context.Context, req *model.TailoredCoverLetterRequest) (*dto.CreateDocumentResponse, error) {
	return s.createDocument(ctx, EndpointCreateTailoredCoverLetter, req)
}

func (s *UseResumeService) ParseResume(ctx context.Context, req *model.ParseRequest) (*dto.ParseResumeResponse, error) {
	out, err := send[dto.ParseResumeResponse](ctx, s, resty.MethodPost, EndpointParseResume, s.jsonRequest(ctx, req))
	if err != nil {
		return nil, err
	}
	metrics.AddCredits(EndpointParseResume, out.Meta.CreditsUsed)
	return out, nil
}

func (s *UseResumeService) ParseCoverLetter(ctx context.Context, req *model.ParseRequest) (*dto.ParseCoverLetterResponse, error) {
	out, err := send[dto.ParseCoverLetterResponse](ctx, s, resty.MethodPost, EndpointParseCoverLetter, s.jsonRequest(ctx, req))
	if err != nil {
		return nil, err
	}
	metrics.AddCredits(EndpointParseCoverLetter, out.Meta.CreditsUsed)
	return out, nil
}

// GetRun reads a run. The id is path-escaped; the call costs no credits.
func (s *UseResumeService) GetRun(ctx context.Context, runID string) (*dto.GetRunResponse, error) {
	req := s.client.R().SetContext(ctx).SetPathParam("runId", runID)
	return send[dto.GetRunResponse](ctx, s, resty.MethodGet, EndpointGetRun, req)
}

func (s *UseResumeService) createDocument(ctx context.Context, endpoint string, body any) (*dto.CreateDocumentResponse, error) {
	out, err := send[dto.CreateDocumentResponse](ctx, s, resty.MethodPost, endpoint, s.jsonRequest(ctx, body))
	if err != nil {
		return nil, err
	}
	metrics.AddCredits(endpoint, out.Meta.CreditsUsed)
	return out, nil
}

func (s *UseResumeService) jsonRequest(ctx context.Context, body any) *resty.Request {
	return s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

func send[T any](ctx context.Context, s *UseResumeService, method, endpoint string, req *resty.Request) (*T, error) {
	logger := logging.With(ctx, s.logger)
	defer logging.TraceDuration(logger, method+" "+endpoint)()

	start := time.Now()
	resp, err := req.Execute(method, endpoint)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		metrics.ObserveAPICall(endpoint, 0, latency)
		logger.Warn().Err(err).Str("endpoint", endpoint).Msg("useresume request failed")
		return nil, &errors.TransportError{Cause: err}
	}

	metrics.ObserveAPICall(endpoint, resp.StatusCode(), latency)
	body := resp.Body()
	logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode()).
		Int64("latency_ms", latency).
		Str("run_id", gjson.GetBytes(body, "meta.run_id").String()).
		Msg("useresume response")

	if !resp.IsSuccess() {
		return nil, errors.NewAPIError(resp.StatusCode(), body)
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrapf(err, "decode %s response", endpoint)
	}
	return &out, nil
}
