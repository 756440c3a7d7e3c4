package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
	"rocqtrace.dev/pkg/rocqtrace/pkg/jsonl"
)

// ErrOutputLocked is returned when another run already writes a result file.
var ErrOutputLocked = errors.New("result file is locked by another run")

func recordOptions(stage m.Stage) []jsonl.Option {
	return []jsonl.Option{
		jsonl.WithValidator(func(line []byte) error {
			return ValidateRecord(stage, line)
		}),
	}
}

// ReadRecords streams the records of a result file in order. Every line is
// validated against the stage schema; a bad line is an ErrRecordInvalid.
func ReadRecords[R any](path m.Path, stage m.Stage, fn func(index uint64, record R) error) error {
	err := jsonl.Scan(string(path), fn, recordOptions(stage)...)
	if errors.Is(err, jsonl.ErrInvalidLine) && !errors.Is(err, m.ErrRecordInvalid) {
		return fmt.Errorf("%w: %w", m.ErrRecordInvalid, err)
	}

	return err
}

// LoadCheckpoint reads every record of path and indexes it by identity. A
// missing file is an empty checkpoint. Two records sharing an identity mean
// the file is corrupt and yield an ErrConsistency error.
func LoadCheckpoint[R any](path m.Path, stage m.Stage, identity func(R) string) (map[string]R, error) {
	done := make(map[string]R)

	err := ReadRecords(path, stage, func(index uint64, record R) error {
		id := identity(record)
		if _, dup := done[id]; dup {
			return m.Wrap(m.ErrConsistency, stage, "checkpoint",
				fmt.Sprintf("%s: record %d repeats identity %q", path, index, id), nil)
		}

		done[id] = record

		return nil
	})
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no checkpoint yet", "path", path, "stage", stage)
		return done, nil
	}

	if err != nil {
		return nil, err
	}

	slog.Info("loaded checkpoint", "path", path, "stage", stage, "records", len(done))

	return done, nil
}

// ResultWriter appends records to the result file of one stage. It holds an
// exclusive lock next to the file for as long as it is open.
type ResultWriter[R any] struct {
	file *jsonl.File[R]
	lock *flock.Flock
}

// OpenResultWriter locks path and opens it for appending.
func OpenResultWriter[R any](path m.Path, stage m.Stage) (*ResultWriter[R], error) {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create result directory: %w", err)
	}

	lock := flock.New(string(path) + ".lock")

	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}

	if !locked {
		return nil, m.Wrap(m.ErrConsistency, stage, "open", string(path), ErrOutputLocked)
	}

	file, err := jsonl.Open[R](string(path), append(recordOptions(stage), jsonl.WithSync())...)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	return &ResultWriter[R]{file: file, lock: lock}, nil
}

// Append writes one record and flushes it before returning.
func (w *ResultWriter[R]) Append(record R) error {
	return w.file.Append(record)
}

// Len returns the number of records in the file.
func (w *ResultWriter[R]) Len() uint64 {
	return w.file.Len()
}

// Close closes the file and releases the lock.
func (w *ResultWriter[R]) Close() error {
	return errors.Join(w.file.Close(), w.lock.Unlock())
}

// ResultStatus counts the records of the result file of stage and checks
// that their identities are unique.
func ResultStatus(cfg m.PackageConfig, stage m.Stage) m.StatusRow {
	path := cfg.ResultPath(stage)
	row := m.StatusRow{Package: cfg.Name, Stage: stage, Path: path}

	info, err := os.Stat(string(path))
	if errors.Is(err, os.ErrNotExist) {
		return row
	}

	if err != nil {
		row.Err = err
		return row
	}

	row.Bytes = info.Size()

	switch stage {
	case m.StageSources:
		row.Records, row.Err = countRecords(path, stage, m.SourceIdentity)
	case m.StageMetadata:
		row.Records, row.Err = countRecords(path, stage, m.MetadataIdentity)
	case m.StageElements:
		row.Records, row.Err = countRecords(path, stage, m.ElementIdentity)
	default:
		row.Err = fmt.Errorf("%w: unknown stage %q", m.ErrConfiguration, stage)
	}

	return row
}

func countRecords[R any](path m.Path, stage m.Stage, identity func(R) string) (int, error) {
	done, err := LoadCheckpoint(path, stage, identity)
	return len(done), err
}
