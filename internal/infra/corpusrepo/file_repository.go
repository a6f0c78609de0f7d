package corpusrepo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/faq"
	apperrors "github.com/Rajveer-VIT/flight-chatbot-backend/pkg/errors"
)

// FileRepository keeps the corpus in a single JSON document on disk.
type FileRepository struct {
	path string
}

// NewFileRepository constructs the repository.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load reads and validates the corpus file.
func (r *FileRepository) Load(_ context.Context) ([]faq.Entry, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, fmt.Sprintf("read faq corpus %s", r.path), err)
	}
	return decodeCorpus(data)
}

// Save replaces the file atomically: a reader sees either the old or the
// new corpus, never a partial write.
func (r *FileRepository) Save(_ context.Context, entries []faq.Entry) error {
	data, err := encodeCorpus(entries)
	if err != nil {
		return err
	}
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "create temp corpus file", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return apperrors.Wrap(apperrors.CodeStorage, "write temp corpus file", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return apperrors.Wrap(apperrors.CodeStorage, "sync temp corpus file", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return apperrors.Wrap(apperrors.CodeStorage, "close temp corpus file", err)
	}
	if info, statErr := os.Stat(r.path); statErr == nil {
		_ = os.Chmod(tmpName, info.Mode().Perm())
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		cleanup()
		return apperrors.Wrap(apperrors.CodeStorage, "replace corpus file", err)
	}
	return nil
}

var _ faq.CorpusRepository = (*FileRepository)(nil)
