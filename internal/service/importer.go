package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"moneytrack/internal/domain"
	"moneytrack/internal/repository"
)

// Importer uploads CSV exports for server-side parsing.
type Importer struct {
	Movements repository.Movements
}

// ImportOptions mirrors the upload form.
type ImportOptions struct {
	FileType          domain.ImportFileType
	SkipParsingErrors bool
	SkipExisting      bool
	RemoveText        string
}

// ImportFile reads path and ships it to the import endpoint. The returned
// page holds the movements the server created.
func (i *Importer) ImportFile(ctx context.Context, accountID uuid.UUID, path string, opts ImportOptions) (domain.Page[domain.Movement], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Page[domain.Movement]{}, fmt.Errorf("read import file: %w", err)
	}
	imp := domain.MovementImport{
		FileType:          opts.FileType,
		Filename:          filepath.Base(path),
		Data:              data,
		SkipParsingErrors: opts.SkipParsingErrors,
		SkipExisting:      opts.SkipExisting,
	}
	if opts.RemoveText != "" {
		imp.RemoveText = &opts.RemoveText
	}
	return i.Movements.Import(ctx, accountID, imp)
}
