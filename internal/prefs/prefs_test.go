package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestColumns_MissingFileUsesDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store := Open("")
	require.Equal(t, DefaultColumns, Columns(store))
	require.Equal(t, filepath.Join(home, ".config", "shutter", "prefs.toml"), store.Path())
}

func TestColumns_PersistAcrossReload(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	got, err := SetColumns(Open(prefsFile), 5)
	require.NoError(t, err)
	require.Equal(t, 5, got)

	require.Equal(t, 5, Columns(Open(prefsFile)))
}

func TestColumns_ReadsHandWrittenFile(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")

	writeFile(t, prefsFile, "gridLayout = 4\n")
	require.Equal(t, 4, Columns(Open(prefsFile)))

	writeFile(t, prefsFile, "gridLayout = \"6\"\n")
	require.Equal(t, 6, Columns(Open(prefsFile)))
}

func TestColumns_InvalidValuesFallBackToDefault(t *testing.T) {
	cases := map[string]string{
		"unparseable":  "wide",
		"too small":    "1",
		"too large":    "9",
		"empty string": "",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			store := NewMemoryStore()
			_ = store.Set(GridLayoutKey, raw)
			require.Equal(t, DefaultColumns, Columns(store))
		})
	}
}

func TestOpen_InvalidTOMLFallsBackToDefault(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	writeFile(t, prefsFile, "not valid toml {{{\n")

	store := Open(prefsFile)
	require.Equal(t, DefaultColumns, Columns(store))

	// The broken file is replaced on the next write.
	_, err := SetColumns(store, 2)
	require.NoError(t, err)
	require.Equal(t, 2, Columns(Open(prefsFile)))
}

func TestSetColumns_Clamps(t *testing.T) {
	store := NewMemoryStore()

	got, _ := SetColumns(store, 12)
	require.Equal(t, MaxColumns, got)
	v, _ := store.Get(GridLayoutKey)
	require.Equal(t, "6", v)

	got, _ = SetColumns(store, 0)
	require.Equal(t, MinColumns, got)

	got, _ = SetColumns(nil, 4)
	require.Equal(t, 4, got)
}

func TestFileStore_KeepsOtherKeys(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	writeFile(t, prefsFile, "other = \"x\"\n")

	_, err := SetColumns(Open(prefsFile), 3)
	require.NoError(t, err)

	v, ok := Open(prefsFile).Get("other")
	require.True(t, ok)
	require.Equal(t, "x", v)
}
