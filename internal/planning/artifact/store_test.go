package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "retireplan/pkg/domain-errors"
	"retireplan/pkg/testutil"
)

func newStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "artifacts"), opts...)
	require.NoError(t, err)
	return s
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
}

func TestStore_Open(t *testing.T) {
	s := newStore(t)

	set, err := s.Open("req-1")
	require.NoError(t, err)
	assert.DirExists(t, set.Dir())
	assert.Equal(t, filepath.Join(s.BaseDir(), "req-1", ChartFile), set.ChartPath())
	assert.Equal(t, filepath.Join(s.BaseDir(), "req-1", ReportFile), set.ReportPath())

	t.Run("id already in use", func(t *testing.T) {
		_, err := s.Open("req-1")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeStorage))
	})

	t.Run("rejects ids that are not a single path element", func(t *testing.T) {
		for _, id := range []string{"", ".", "..", "../escape", "a/b", `a\b`} {
			_, err := s.Open(id)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeStorage), id)
		}
	})
}

func TestSet_RemoveChart(t *testing.T) {
	set, err := newStore(t).Open("req")
	require.NoError(t, err)
	touch(t, set.ChartPath())

	require.NoError(t, set.RemoveChart())
	assert.NoFileExists(t, set.ChartPath())
	assert.NoError(t, set.RemoveChart(), "idempotent")
}

func TestSet_Release(t *testing.T) {
	t.Run("deletes report and directory", func(t *testing.T) {
		set, err := newStore(t).Open("req")
		require.NoError(t, err)
		touch(t, set.ReportPath())

		require.NoError(t, set.Release())
		assert.NoDirExists(t, set.Dir())
		assert.NoError(t, set.Release(), "idempotent")
	})

	t.Run("retains report when configured", func(t *testing.T) {
		s := newStore(t, WithRetainReports(true))
		assert.True(t, s.RetainsReports())
		set, err := s.Open("req")
		require.NoError(t, err)
		touch(t, set.ReportPath())

		require.NoError(t, set.Release())
		assert.FileExists(t, set.ReportPath())
	})

	t.Run("release with nothing written", func(t *testing.T) {
		set, err := newStore(t).Open("req")
		require.NoError(t, err)
		require.NoError(t, set.Release())
		assert.NoDirExists(t, set.Dir())
	})
}

func TestStore_Writable(t *testing.T) {
	s := newStore(t)
	assert.NoError(t, s.Writable())

	entries, err := os.ReadDir(s.BaseDir())
	require.NoError(t, err)
	assert.Empty(t, entries, "probe file is cleaned up")
}

func TestNewStore_DefaultDir(t *testing.T) {
	s, err := NewStore("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(os.TempDir(), "retireplan"), s.BaseDir())
}

func TestStore_OpenConcurrent(t *testing.T) {
	s := newStore(t)

	t.Run("same id is handed out once", func(t *testing.T) {
		res := testutil.RunConcurrent(8, func(int) error {
			_, err := s.Open("shared")
			return err
		})
		assert.Equal(t, 1, res.Successes)
		assert.Equal(t, 7, res.Failures[dErrors.CodeStorage])
	})

	t.Run("distinct ids never collide", func(t *testing.T) {
		res := testutil.RunConcurrent(8, func(i int) error {
			set, err := s.Open(fmt.Sprintf("req-%d", i))
			if err != nil {
				return err
			}
			return os.WriteFile(set.ChartPath(), []byte{byte(i)}, 0o600)
		})
		assert.Equal(t, 8, res.Successes)
		for i := range 8 {
			data, err := os.ReadFile(filepath.Join(s.BaseDir(), fmt.Sprintf("req-%d", i), ChartFile))
			require.NoError(t, err)
			assert.Equal(t, []byte{byte(i)}, data)
		}
	})
}
