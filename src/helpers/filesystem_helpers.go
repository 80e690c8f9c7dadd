package helpers_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTempFile creates a temporary file in the test's temporary directory,
// and automatically removes it when the test is done. fileName is a pattern
// as accepted by os.CreateTemp, so "config-*.toml" keeps its extension.
func CreateTempFile(t *testing.T, fileName string) *os.File {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), fileName)
	require.NoError(t, err)

	t.Cleanup(func() {
		os.Remove(tmpFile.Name())
	})

	return tmpFile
}

// CreateTempFileWithContents creates a temporary file in the test's temporary
// directory, writes the given content to it, and automatically removes it when
// the test is done.
func CreateTempFileWithContents(t *testing.T, fileName string, content string) string {
	t.Helper()

	tmpFile := CreateTempFile(t, fileName)

	_, err := tmpFile.Write([]byte(content))
	require.NoError(t, err)

	err = tmpFile.Close()
	require.NoError(t, err)

	return tmpFile.Name()
}

// CreateTempProgram writes a truth table program to a temporary file and
// returns its path.
func CreateTempProgram(t *testing.T, source string) string {
	t.Helper()

	return CreateTempFileWithContents(t, "truth-table-test-*.tt", source)
}
