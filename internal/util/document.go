package util

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/fadilmartias/useresume-gateway/internal/errors"
)

// MaxInlineFileBytes is the largest document the remote parser accepts as
// base64 content. Larger files must be sent by URL.
const MaxInlineFileBytes = 4 << 20

// DocumentInfo is what a local pre-flight learns about a document.
type DocumentInfo struct {
	Path      string            `json:"path"`
	SizeBytes int               `json:"size_bytes"`
	Format    string            `json:"format"`
	Pages     int               `json:"pages,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

var supportedFormats = map[string]bool{".pdf": true, ".docx": true}

// InspectDocument checks that data is a document the parser can take and,
// for PDFs, that it opens and has at least one page.
func InspectDocument(path string, data []byte) (*DocumentInfo, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedFormats[ext] {
		return nil, errors.WithHint(
			errors.Newf("unsupported document type %q", ext),
			"only PDF and DOCX documents can be parsed")
	}
	if len(data) == 0 {
		return nil, errors.Newf("%s is empty", path)
	}

	info := &DocumentInfo{Path: path, SizeBytes: len(data), Format: strings.TrimPrefix(ext, ".")}
	if ext != ".pdf" {
		return info, nil
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer doc.Close()

	info.Pages = doc.NumPage()
	if info.Pages == 0 {
		return nil, errors.Newf("%s has no pages", path)
	}
	info.Metadata = nonEmpty(doc.Metadata())
	return info, nil
}

// EncodeDocument reads a local document, runs the pre-flight and returns
// it base64 encoded for the file field of a parse request.
func EncodeDocument(path string) (string, *DocumentInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, errors.Wrapf(err, "read %s", path)
	}
	if len(data) > MaxInlineFileBytes {
		return "", nil, errors.WithHint(
			errors.Newf("%s is %d bytes, the inline limit is %d", path, len(data), MaxInlineFileBytes),
			"upload the document somewhere public and pass file_url instead")
	}
	info, err := InspectDocument(path, data)
	if err != nil {
		return "", nil, err
	}
	return base64.StdEncoding.EncodeToString(data), info, nil
}

func nonEmpty(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if v = strings.TrimSpace(v); v != "" {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
