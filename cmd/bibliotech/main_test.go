package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell/config"
)

func Test_Stats_PrintsCountersOfTheSeed(t *testing.T) {
	// act
	stdout, _, err := givenCLIRun(t, givenMemoryEnv(t), "stats")

	// assert
	require.NoError(t, err)

	var stats map[string]any
	require.NoError(t, jsoniter.Unmarshal([]byte(stdout), &stats))
	assert.EqualValues(t, 3, stats["totalBooks"])
	assert.EqualValues(t, 2, stats["totalUsers"])
}

func Test_LoansLend_Fails_WhenBookIsLent(t *testing.T) {
	_, _, err := givenCLIRun(t, givenMemoryEnv(t), "loans", "lend", "--book", "2", "--user", "2")

	assert.ErrorIs(t, err, core.ErrBookUnavailable)
}

func Test_Execute_ClosesStorage_WhenCommandFails(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "library.db")
	env := map[string]string{config.EnvSQLitePath: path}
	c := &cli{getenv: func(key string) string { return env[key] }}

	var stdout, stderr bytes.Buffer

	// act
	err := c.execute(context.Background(), []string{"loans", "lend", "--book", "2", "--user", "2"}, &stdout, &stderr)

	// assert
	require.ErrorIs(t, err, core.ErrBookUnavailable)
	assert.Nil(t, c.app)
	assert.FileExists(t, path)
	assert.NoFileExists(t, path+"-wal", "the last connection checkpoints and removes the WAL file on close")
}

func Test_BooksAdd_PersistsToSQLite(t *testing.T) {
	// arrange
	env := map[string]string{config.EnvSQLitePath: filepath.Join(t.TempDir(), "library.db")}

	// act
	stdout, _, err := givenCLIRun(t, env, "books", "add",
		"--title", "Dune", "--author", "Frank Herbert", "--isbn", "9780441013593",
		"--genre", "Fantascienza", "--price", "12.90", "--tag", "classic")
	require.NoError(t, err)

	search, _, searchErr := givenCLIRun(t, env, "search", "dune")

	// assert
	require.NoError(t, searchErr)
	assert.Contains(t, stdout, "added book")
	assert.Contains(t, search, `"title": "Dune"`)
}

func Test_BooksAdd_WarnsAboutWrongISBNCheckDigit(t *testing.T) {
	// act
	stdout, stderr, err := givenCLIRun(t, givenMemoryEnv(t), "books", "add",
		"--title", "Dune", "--author", "Frank Herbert", "--isbn", "978-0441013590")

	// assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "added book")
	assert.Contains(t, stderr, `warning: ISBN "978-0441013590" has no valid check digit`)
}

func Test_ExportThenImport_RestoresLibraryData(t *testing.T) {
	// arrange
	dir := t.TempDir()
	env := map[string]string{config.EnvSQLitePath: filepath.Join(dir, "library.db")}
	backup := filepath.Join(dir, "backup.json")

	_, _, err := givenCLIRun(t, env, "export", "--out", backup)
	require.NoError(t, err)

	_, _, err = givenCLIRun(t, env, "books", "remove", "1")
	require.NoError(t, err)

	// act
	_, _, err = givenCLIRun(t, env, "import", backup)
	require.NoError(t, err)

	stdout, _, err := givenCLIRun(t, env, "search", "rosa")

	// assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "Il Nome della Rosa")

	content, readErr := os.ReadFile(backup)
	require.NoError(t, readErr)
	assert.Contains(t, string(content), `"auditLogs"`)
}

func Test_Import_Fails_WithMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"books":[]}`), 0o600))

	_, _, err := givenCLIRun(t, givenMemoryEnv(t), "import", path)

	assert.ErrorIs(t, err, core.ErrInvalidImport)
}

func givenMemoryEnv(t *testing.T) map[string]string {
	t.Helper()

	return map[string]string{config.EnvStorage: string(config.StorageMemory)}
}

func givenCLIRun(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	c := &cli{getenv: func(key string) string { return env[key] }}
	err := c.execute(context.Background(), args, &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}
