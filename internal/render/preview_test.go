package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPreviewRejectsUnfinalizedDocument(t *testing.T) {
	doc := testDocument(t)
	err := ExportPreview(doc, "GA", filepath.Join(t.TempDir(), "out.png"))
	assert.ErrorIs(t, err, ErrNotFinalized)
}

func TestExportPreviewWritesImage(t *testing.T) {
	doc := testDocument(t)
	doc.Finalize()

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, ExportPreview(doc, "GA", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportPreviewAppendsExtension(t *testing.T) {
	doc := testDocument(t)
	doc.Finalize()

	base := filepath.Join(t.TempDir(), "out")
	require.NoError(t, ExportPreview(doc, "GA", base))

	_, err := os.Stat(base + ".png")
	assert.NoError(t, err)
}
