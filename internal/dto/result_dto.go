package dto

import (
	"time"

	"github.com/fadilmartias/useresume-gateway/internal/model"
)

// TimestampLayout renders epoch-millisecond timestamps as UTC ISO-8601.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func FormatEpochMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(TimestampLayout)
}

func formatOptionalMillis(ms *int64) *string {
	if ms == nil || *ms == 0 {
		return nil
	}
	s := FormatEpochMillis(*ms)
	return &s
}

type DocumentFileDTO struct {
	FileURL          string `json:"file_url"`
	FileURLExpiresAt string `json:"file_url_expires_at"`
	FileExpiresAt    string `json:"file_expires_at"`
	FileSizeBytes    int64  `json:"file_size_bytes"`
}

func NewDocumentFileDTO(f GeneratedFile) DocumentFileDTO {
	return DocumentFileDTO{
		FileURL:          f.FileURL,
		FileURLExpiresAt: FormatEpochMillis(f.FileURLExpiresAt),
		FileExpiresAt:    FormatEpochMillis(f.FileExpiresAt),
		FileSizeBytes:    f.FileSizeBytes,
	}
}

type RunStatusDTO struct {
	RunID            string          `json:"run_id"`
	Status           model.RunStatus `json:"status"`
	Endpoint         string          `json:"endpoint"`
	CreditsUsed      int             `json:"credits_used"`
	FileURL          *string         `json:"file_url,omitempty"`
	FileURLExpiresAt *string         `json:"file_url_expires_at,omitempty"`
	FileExpiresAt    *string         `json:"file_expires_at,omitempty"`
	FileSizeBytes    *int64          `json:"file_size_bytes,omitempty"`
	CreatedAt        string          `json:"created_at"`
}

// NewRunStatusDTO drops file fields unless the run succeeded.
func NewRunStatusDTO(r Run) RunStatusDTO {
	out := RunStatusDTO{
		RunID:       r.ID,
		Status:      r.Status,
		Endpoint:    r.Endpoint,
		CreditsUsed: r.CreditsUsed,
		CreatedAt:   FormatEpochMillis(r.CreatedAt),
	}
	if r.Status != model.RunStatusSuccess {
		return out
	}
	if r.FileURL != nil && *r.FileURL != "" {
		out.FileURL = r.FileURL
	}
	out.FileURLExpiresAt = formatOptionalMillis(r.FileURLExpiresAt)
	out.FileExpiresAt = formatOptionalMillis(&r.FileExpiresAt)
	size := r.FileSizeBytes
	out.FileSizeBytes = &size
	return out
}
