package wal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name string `json:"name"`
}

func collect(t *testing.T, w *WAL) []Entry {
	t.Helper()
	var got []Entry
	require.NoError(t, w.Replay(func(e Entry) error {
		got = append(got, e)
		return nil
	}))
	return got
}

func TestWAL_AppendAndReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")

	w, err := Open(path)
	require.NoError(t, err)
	for _, name := range []string{"a", "b", "c"} {
		_, err := w.Append("item", entry{Name: name})
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	// 重新開啟後序號接續
	w, err = Open(path)
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, uint64(3), w.LastSeq())

	got := collect(t, w)
	require.Len(t, got, 3)
	assert.Equal(t, uint64(1), got[0].Seq)
	assert.Equal(t, "item", got[2].Kind)
	var e entry
	require.NoError(t, json.Unmarshal(got[2].Data, &e))
	assert.Equal(t, "c", e.Name)

	seq, err := w.Append("item", entry{Name: "d"})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), seq)
	assert.Len(t, collect(t, w), 4)
}

func TestWAL_ReplayEmpty(t *testing.T) {
	w, err := Open(filepath.Join(t.TempDir(), "empty.log"))
	require.NoError(t, err)
	defer w.Close()

	assert.Empty(t, collect(t, w))
	assert.Zero(t, w.LastSeq())
}

func TestWAL_ReplayCallbackError(t *testing.T) {
	w, err := Open(filepath.Join(t.TempDir(), "wal.log"))
	require.NoError(t, err)
	defer w.Close()
	_, err = w.Append("item", entry{Name: "a"})
	require.NoError(t, err)

	err = w.Replay(func(Entry) error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
}

func TestWAL_TruncatesTornTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")
	w, err := Open(path)
	require.NoError(t, err)
	_, err = w.Append("item", entry{Name: "a"})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	// 模擬崩潰時寫到一半的紀錄
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, FileModePrivate)
	require.NoError(t, err)
	_, err = f.WriteString(`{"seq":2,"kind":"item","da`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	w, err = Open(path)
	require.NoError(t, err)
	defer w.Close()
	assert.Len(t, collect(t, w), 1)

	seq, err := w.Append("item", entry{Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), seq)
	assert.Len(t, collect(t, w), 2)
}

func TestWAL_RejectsCorruptEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")
	require.NoError(t, os.WriteFile(path, []byte("not json\n"), FileModePrivate))

	_, err := Open(path)
	assert.ErrorContains(t, err, "corrupt entry")
}

func TestWAL_RejectsSequenceGap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")
	content := `{"seq":1,"kind":"item","data":{}}` + "\n" + `{"seq":3,"kind":"item","data":{}}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), FileModePrivate))

	_, err := Open(path)
	assert.ErrorContains(t, err, "sequence gap")
}

func TestWAL_Rewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")
	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()
	for _, name := range []string{"a", "b", "c"} {
		_, err := w.Append("item", entry{Name: name})
		require.NoError(t, err)
	}

	require.NoError(t, w.Rewrite(func(add func(string, any) error) error {
		return add("snapshot", entry{Name: "abc"})
	}))
	assert.Equal(t, uint64(1), w.LastSeq())

	seq, err := w.Append("item", entry{Name: "d"})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), seq)

	got := collect(t, w)
	require.Len(t, got, 2)
	assert.Equal(t, "snapshot", got[0].Kind)

	// emit 失敗時保留原檔
	err = w.Rewrite(func(func(string, any) error) error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
	assert.Len(t, collect(t, w), 2)
	_, statErr := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(statErr))
}

func TestWAL_Closed(t *testing.T) {
	w, err := Open(filepath.Join(t.TempDir(), "wal.log"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, err = w.Append("item", entry{})
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, w.Replay(func(Entry) error { return nil }), ErrClosed)
}
