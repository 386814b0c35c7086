package util

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/useresume-gateway/internal/errors"
)

func TestInspectDocumentRejectsUnsupported(t *testing.T) {
	_, err := InspectDocument("resume.txt", []byte("hello"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported document type ".txt"`)
	assert.NotEmpty(t, errors.GetAllHints(err))

	_, err = InspectDocument("resume.pdf", nil)
	assert.ErrorContains(t, err, "is empty")
}

// onePagePDF builds a minimal PDF with a correct cross-reference table.
func onePagePDF(title string) []byte {
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
		fmt.Sprintf("<< /Title (%s) >>", title),
	}
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R /Info 4 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestInspectDocumentOnePagePDF(t *testing.T) {
	info, err := InspectDocument("cv.pdf", onePagePDF("Ada Lovelace CV"))
	require.NoError(t, err)
	assert.Equal(t, "pdf", info.Format)
	assert.Equal(t, 1, info.Pages)
	assert.Equal(t, "Ada Lovelace CV", info.Metadata["title"])
}

func TestEncodeDocumentPDF(t *testing.T) {
	data := onePagePDF("Resume")
	path := filepath.Join(t.TempDir(), "Resume.PDF")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	encoded, info, err := EncodeDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "pdf", info.Format)
	assert.Equal(t, 1, info.Pages)
	assert.Equal(t, len(data), info.SizeBytes)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestEncodeDocumentDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Letter.DOCX")
	require.NoError(t, os.WriteFile(path, []byte("PK\x03\x04 fake docx"), 0o600))

	encoded, info, err := EncodeDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "docx", info.Format)
	assert.Zero(t, info.Pages)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, "PK\x03\x04 fake docx", string(decoded))
}

func TestEncodeDocumentTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.pdf")
	require.NoError(t, os.WriteFile(path, make([]byte, MaxInlineFileBytes+1), 0o600))

	_, _, err := EncodeDocument(path)
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "file_url")
}

func TestEncodeDocumentMissing(t *testing.T) {
	_, _, err := EncodeDocument(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.ErrorContains(t, err, "read ")
}
