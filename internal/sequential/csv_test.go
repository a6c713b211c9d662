package sequential

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sequential-monitor/internal/spending"
)

func TestWriteLogCSV(t *testing.T) {
	eng := newEngine(t, spending.OBrienFleming{})
	_, err := eng.Analyze(1, 1000, 1000, 0.10, 0.15367, 0.40)
	require.NoError(t, err)
	_, err = eng.Analyze(2, 2000, 2000, 0.10, 0.155, 0.40)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "looks.csv")
	require.NoError(t, WriteLogCSV(path, eng.Log()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per look")
	assert.Equal(t, "look", rows[0][0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2", rows[2][0])
	assert.Len(t, rows[1], 10)
}
