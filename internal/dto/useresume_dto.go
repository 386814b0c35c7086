package dto

import (
	"bytes"
	"encoding/json"

	"github.com/fadilmartias/useresume-gateway/internal/model"
)

// Meta is the billing block attached to every remote response.
type Meta struct {
	RunID            *string `json:"run_id,omitempty"`
	CreditsUsed      int     `json:"credits_used"`
	CreditsRemaining *int    `json:"credits_remaining,omitempty"`
}

// GeneratedFile is returned by every create and create-tailored call.
// Timestamps are epoch milliseconds.
type GeneratedFile struct {
	FileURL          string `json:"file_url"`
	FileURLExpiresAt int64  `json:"file_url_expires_at"`
	FileExpiresAt    int64  `json:"file_expires_at"`
	FileSizeBytes    int64  `json:"file_size_bytes"`
}

type CreateDocumentResponse struct {
	Success bool          `json:"success"`
	Data    GeneratedFile `json:"data"`
	Meta    Meta          `json:"meta"`
}

// ParsedDocument is either markdown text or a structured document,
// depending on the parse_to format of the request.
type ParsedDocument[T any] struct {
	Markdown   *string
	Structured *T
}

func (p *ParsedDocument[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		p.Markdown, p.Structured = &s, nil
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		p.Markdown, p.Structured = nil, nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	p.Markdown, p.Structured = nil, &v
	return nil
}

func (p ParsedDocument[T]) MarshalJSON() ([]byte, error) {
	switch {
	case p.Markdown != nil:
		return json.Marshal(*p.Markdown)
	case p.Structured != nil:
		return json.Marshal(p.Structured)
	}
	return []byte("null"), nil
}

type ParseResponse[T any] struct {
	Success bool              `json:"success"`
	Data    ParsedDocument[T] `json:"data"`
	Meta    Meta              `json:"meta"`
}

type (
	ParseResumeResponse      = ParseResponse[ParsedResume]
	ParseCoverLetterResponse = ParseResponse[ParsedCoverLetter]
)

// Run is a remote unit of work. FileURL and FileURLExpiresAt are only
// set once the run succeeded.
type Run struct {
	ID                string          `json:"id"`
	CreatedAt         int64           `json:"created_at"`
	Endpoint          string          `json:"endpoint"`
	APIPlatformUserID string          `json:"api_platform_user_id"`
	CreditsUsed       int             `json:"credits_used"`
	Status            model.RunStatus `json:"status"`
	FileURL           *string         `json:"file_url,omitempty"`
	FileURLExpiresAt  *int64          `json:"file_url_expires_at,omitempty"`
	FileExpiresAt     int64           `json:"file_expires_at"`
	FileSizeBytes     int64           `json:"file_size_bytes"`
}

type GetRunResponse struct {
	Success bool `json:"success"`
	Data    Run  `json:"data"`
}
