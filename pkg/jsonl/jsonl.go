// Package jsonl provides an append-only file of JSON records, one per line.
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// ErrInvalidLine is returned when a complete line cannot be decoded.
var ErrInvalidLine = errors.New("invalid jsonl line")

// Validator checks the raw bytes of one line before it is decoded.
type Validator func(line []byte) error

type options struct {
	validate Validator
	sync     bool
}

// Option configures Open and Scan.
type Option func(*options)

// WithValidator runs v on every line read back from the file.
func WithValidator(v Validator) Option {
	return func(o *options) {
		o.validate = v
	}
}

// WithSync flushes the file to stable storage after every append.
func WithSync() Option {
	return func(o *options) {
		o.sync = true
	}
}

// File is an append-only JSON lines file holding items of type T.
type File[T any] struct {
	path   string
	file   *os.File
	opts   options
	mu     sync.Mutex
	length uint64
}

// Open opens path for appending, creating it when missing. A final line
// without a line break is a write that was cut short and is truncated away.
func Open[T any](path string, opts ...Option) (*File[T], error) {
	o := buildOptions(opts)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			slog.Error("failed to create directory", "path", dir, "error", err)
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		slog.Error("failed to open jsonl file", "path", path, "error", err)
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	length, size, err := countLines(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	if err := file.Truncate(size); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to truncate partial line: %w", err)
	}

	if _, err := file.Seek(size, io.SeekStart); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to seek end of file: %w", err)
	}

	slog.Debug("opened jsonl file", "path", path, "length", length)

	return &File[T]{path: path, file: file, opts: o, length: length}, nil
}

// countLines returns the number of complete lines and the offset just after
// the last line break.
func countLines(file *os.File) (uint64, int64, error) {
	reader := bufio.NewReader(file)

	var (
		count  uint64
		offset int64
	)

	for {
		line, err := reader.ReadBytes('\n')
		if errors.Is(err, io.EOF) {
			if len(line) > 0 {
				slog.Warn("dropping partial last line", "path", file.Name(), "bytes", len(line))
			}

			return count, offset, nil
		}

		if err != nil {
			return 0, 0, fmt.Errorf("failed to read file: %w", err)
		}

		offset += int64(len(line))
		if len(bytes.TrimSpace(line)) > 0 {
			count++
		}
	}
}

// Path returns the location of the file.
func (f *File[T]) Path() string {
	return f.path
}

// Len returns the number of records in the file.
func (f *File[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

// Append writes item as one line. The line is complete on disk, and synced
// when WithSync was given, before Append returns.
func (f *File[T]) Append(item T) error {
	data, err := json.Marshal(item)
	if err != nil {
		slog.Error("failed to encode item", "path", f.path, "index", f.Len(), "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	data = append(data, '\n')

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return fmt.Errorf("append to closed file %s", f.path)
	}

	if _, err := f.file.Write(data); err != nil {
		slog.Error("failed to write item", "path", f.path, "index", f.length, "error", err)
		return fmt.Errorf("failed to write item: %w", err)
	}

	if f.opts.sync {
		if err := f.file.Sync(); err != nil {
			return fmt.Errorf("failed to sync file: %w", err)
		}
	}

	f.length++
	slog.Debug("appended item", "path", f.path, "index", f.length-1)

	return nil
}

// Close closes the underlying file. Closing twice is a no-op.
func (f *File[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}

	err := f.file.Close()
	f.file = nil

	if err != nil {
		slog.Error("failed to close file", "path", f.path, "error", err)
		return err
	}

	slog.Debug("closed jsonl file", "path", f.path, "length", f.length)

	return nil
}

// Scan reads path without opening it for writing. A missing file yields
// os.ErrNotExist.
func Scan[T any](path string, fn func(index uint64, item T) error, opts ...Option) error {
	return scan(path, buildOptions(opts), fn)
}

func scan[T any](path string, o options, fn func(index uint64, item T) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close file", "path", path, "error", err)
		}
	}()

	reader := bufio.NewReader(file)

	var index uint64

	for lineNo := 1; ; lineNo++ {
		line, readErr := reader.ReadBytes('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("failed to read %s: %w", path, readErr)
		}

		trimmed := bytes.TrimSpace(line)

		// A last line without a line break is not a record, even when it
		// decodes. Open truncates it away.
		if errors.Is(readErr, io.EOF) {
			if len(trimmed) > 0 {
				slog.Warn("ignoring partial last line", "path", path, "line", lineNo, "bytes", len(line))
			}

			return nil
		}

		if len(trimmed) == 0 {
			continue
		}

		item, err := decodeLine[T](trimmed, o)
		if err != nil {
			return fmt.Errorf("%w: %s:%d: %w", ErrInvalidLine, path, lineNo, err)
		}

		if err := fn(index, item); err != nil {
			return err
		}

		index++
	}
}

func decodeLine[T any](line []byte, o options) (T, error) {
	var item T

	if o.validate != nil {
		if err := o.validate(line); err != nil {
			return item, err
		}
	}

	decoder := json.NewDecoder(bytes.NewReader(line))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&item); err != nil {
		return item, err
	}

	if decoder.More() {
		return item, errors.New("trailing data after record")
	}

	return item, nil
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
