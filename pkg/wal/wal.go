package wal

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
)

// FileModePrivate rw------- WAL 只給服務本身讀寫
const FileModePrivate fs.FileMode = 0600

// ErrClosed WAL 已關閉
var ErrClosed = errors.New("wal: closed")

// Entry 一行一筆的紀錄：序號遞增，Kind 由使用方定義，Data 為原始 JSON
type Entry struct {
	Seq  uint64          `json:"seq"`
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// WAL 追加寫入的 Write-Ahead Log，每次 Append 都會 fsync
type WAL struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	lastSeq uint64
	closed  bool
}

// Open 開啟或建立 WAL 檔案，並掃描既有紀錄取得最後序號
//
// 崩潰時寫到一半的最後一行 (沒有換行結尾) 會被截掉；
// 中間任何一行無法解析則視為檔案毀損並回傳錯誤。
func Open(path string) (*WAL, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, FileModePrivate)
	if err != nil {
		return nil, err
	}
	w := &WAL{path: path, file: file}
	if err := w.scan(func(Entry) error { return nil }); err != nil {
		_ = file.Close()
		return nil, err
	}
	return w, nil
}

// Append 寫入一筆紀錄並刷入硬碟
//
// 參數:
//
//	kind: 紀錄類型
//	v: 任意可 JSON 編碼的資料
//
// 回傳:
//
//	uint64: 這筆紀錄的序號
//	error: 編碼或寫檔錯誤
func (w *WAL) Append(kind string, v any) (uint64, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, fmt.Errorf("wal: encode %s: %w", kind, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return 0, ErrClosed
	}
	entry := Entry{Seq: w.lastSeq + 1, Kind: kind, Data: data}
	if err := writeEntry(w.file, entry); err != nil {
		return 0, err
	}
	if err := w.file.Sync(); err != nil {
		return 0, err
	}
	w.lastSeq = entry.Seq
	return entry.Seq, nil
}

// Replay 依序讀回所有紀錄
func (w *WAL) Replay(fn func(Entry) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	return w.scan(fn)
}

// Rewrite 以 emit 產生的紀錄取代整個檔案 (壓縮用)，序號重新從 1 開始
//
// 新內容先寫到暫存檔並 fsync，再以 rename 覆蓋，失敗時原檔不受影響。
func (w *WAL) Rewrite(emit func(add func(kind string, v any) error) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}

	tmpPath := w.path + ".tmp"
	tmp, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, FileModePrivate)
	if err != nil {
		return err
	}
	defer os.Remove(tmpPath)

	bw := bufio.NewWriter(tmp)
	var seq uint64
	err = emit(func(kind string, v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("wal: encode %s: %w", kind, err)
		}
		seq++
		return writeEntry(bw, Entry{Seq: seq, Kind: kind, Data: data})
	})
	if err == nil {
		err = bw.Flush()
	}
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	if err := os.Rename(tmpPath, w.path); err != nil {
		return err
	}
	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_RDWR, FileModePrivate)
	if err != nil {
		return err
	}
	_ = w.file.Close()
	w.file = file
	w.lastSeq = seq
	return nil
}

// LastSeq 最後一筆紀錄的序號，空檔案為 0
func (w *WAL) LastSeq() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeq
}

// Sync 強制刷入硬碟
func (w *WAL) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	return w.file.Sync()
}

// Close 關閉檔案，重複呼叫不會出錯
func (w *WAL) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// scan 從頭讀取，呼叫端需持有 mu
func (w *WAL) scan(fn func(Entry) error) error {
	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	r := bufio.NewReader(w.file)
	var offset int64
	var lastSeq uint64
	for {
		line, err := r.ReadBytes('\n')
		if errors.Is(err, io.EOF) {
			if len(line) > 0 {
				// 寫到一半的尾巴
				if err := w.file.Truncate(offset); err != nil {
					return fmt.Errorf("wal: truncate torn tail: %w", err)
				}
			}
			break
		}
		if err != nil {
			return err
		}

		var entry Entry
		if err := json.Unmarshal(bytes.TrimSpace(line), &entry); err != nil {
			return fmt.Errorf("wal: corrupt entry at offset %d: %w", offset, err)
		}
		if entry.Seq != lastSeq+1 {
			return fmt.Errorf("wal: sequence gap at offset %d: got %d after %d", offset, entry.Seq, lastSeq)
		}
		if err := fn(entry); err != nil {
			return err
		}
		lastSeq = entry.Seq
		offset += int64(len(line))
	}
	w.lastSeq = lastSeq
	return nil
}

func writeEntry(dst io.Writer, entry Entry) error {
	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = dst.Write(append(line, '\n'))
	return err
}
