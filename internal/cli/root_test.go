package cli

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"taskbook/internal/config"
	"taskbook/internal/domain"
	"taskbook/internal/errors"
	"taskbook/internal/repository/sqlite"
)

func setupTestRepo(t *testing.T) *sqlite.TaskRepository {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)

	_, err = db.Exec(sqlite.Schema)
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return sqlite.New(db)
}

// execute runs one CLI invocation against the given repository and returns
// the command output. A fresh command tree per call keeps flag state clean.
func execute(t *testing.T, repo *sqlite.TaskRepository, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand(repo, config.NewConfig())

	buf := &bytes.Buffer{}
	cmd := root.Command()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestAddAndList(t *testing.T) {
	repo := setupTestRepo(t)

	out, err := execute(t, repo, "add", "write the report")
	require.NoError(t, err)
	assert.Contains(t, out, "Added task")

	out, err = execute(t, repo, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "write the report")
	assert.Contains(t, out, "[ ]")
}

func TestAddRejectsBlankTitle(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := execute(t, repo, "add", "   ")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}

func TestAddWithDoneFlag(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := execute(t, repo, "add", "--done", "already handled")
	require.NoError(t, err)

	out, err := execute(t, repo, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "[x] already handled")
}

func TestPendingShowsOnlyUnfinished(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := execute(t, repo, "add", "open item")
	require.NoError(t, err)
	_, err = execute(t, repo, "add", "--done", "closed item")
	require.NoError(t, err)

	out, err := execute(t, repo, "pending")
	require.NoError(t, err)
	assert.Contains(t, out, "open item")
	assert.NotContains(t, out, "closed item")
}

func TestNewestLimitsResults(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 23, 11, 47, 24, 0, time.UTC)
	_, err := repo.Save(ctx, domain.NewTask("old item", false, base.Add(-time.Hour)))
	require.NoError(t, err)
	_, err = repo.Save(ctx, domain.NewTask("new item", false, base))
	require.NoError(t, err)

	out, err := execute(t, repo, "newest", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "new item")
	assert.NotContains(t, out, "old item")
}

func TestNewestRejectsNonPositiveCount(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := execute(t, repo, "newest", "0")
	require.Error(t, err)
}

func TestShowAndDone(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	task, err := repo.Save(ctx, domain.NewTask("show me", false, time.Now()))
	require.NoError(t, err)

	id := formatID(task)

	out, err := execute(t, repo, "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "show me")

	_, err = execute(t, repo, "done", id)
	require.NoError(t, err)

	out, err = execute(t, repo, "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "[x]")
}

func TestShowMissingTaskFails(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := execute(t, repo, "show", "999")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestRemoveAndClear(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	first, err := repo.Save(ctx, domain.NewTask("first item", false, time.Now()))
	require.NoError(t, err)
	_, err = repo.Save(ctx, domain.NewTask("second item", false, time.Now()))
	require.NoError(t, err)

	_, err = execute(t, repo, "rm", formatID(first))
	require.NoError(t, err)

	out, err := execute(t, repo, "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "first item")
	assert.Contains(t, out, "second item")

	out, err = execute(t, repo, "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 tasks")

	out, err = execute(t, repo, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks found")
}

func TestInvalidIDArgument(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := execute(t, repo, "show", "banana")
	require.Error(t, err)

	_, err = execute(t, repo, "done", "-3")
	require.Error(t, err)
}

func formatID(task *domain.Task) string {
	return strconv.FormatInt(task.ID, 10)
}
