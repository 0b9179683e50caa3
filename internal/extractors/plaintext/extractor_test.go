package plaintext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensions(t *testing.T) {
	assert.Contains(t, New().Extensions(), ".txt")
}

func TestExtract_SinglePage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "leave-policy.txt")
	content := "第5条 有給休暇\n\n有給休暇は  年10日とする。\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	pages, err := New().Extract(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "leave-policy.txt", pages[0].DocumentName)
	assert.Equal(t, path, pages[0].DocumentPath)
	assert.Equal(t, 1, pages[0].PageNumber)
	assert.Equal(t, "第5条 有給休暇\n有給休暇は 年10日とする。", pages[0].Text)
	assert.Equal(t, "第5条", pages[0].Section)
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := New().Extract(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestExtract_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Extract(ctx, "irrelevant.txt")
	assert.ErrorIs(t, err, context.Canceled)
}
