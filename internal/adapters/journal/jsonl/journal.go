// Package jsonl appends operation records to a JSON-lines file.
package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/bnema/poolctl/internal/ports"
	"github.com/spf13/viper"
)

const (
	JournalPathKey = "journal.path"
	journalDir     = ".poolctl"
	journalFile    = "journal.jsonl"
	journalMode    = 0o600
	journalDirMode = 0o700
	maxLineBytes   = 1 << 20
)

type Journal struct {
	path string
	mu   sync.Mutex
}

var _ ports.Journal = (*Journal)(nil)

func NewJournal(cfg *viper.Viper) (*Journal, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(JournalPathKey, filepath.Join(homeDir, journalDir, journalFile))

	path := cfg.GetString(JournalPathKey)
	if path == "" {
		return nil, errors.New("journal path is empty")
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve journal path: %w", err)
	}

	return &Journal{path: filepath.Clean(path)}, nil
}

func (j *Journal) Path() string {
	return j.path
}

// Append writes one record per line. The file is opened, written and closed
// on every call.
func (j *Journal) Append(ctx context.Context, record domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal journal record: %w", err)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(j.path), journalDirMode); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, journalMode)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("append journal record: %w", err)
	}

	return nil
}

// List returns every record in file order. A missing journal is empty.
func (j *Journal) List(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	f, err := os.Open(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.Record{}, nil
		}
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer func() { _ = f.Close() }()

	records := []domain.Record{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record domain.Record
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("parse journal line %d: %w", lineNum, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}

	return records, nil
}
