package snapshots

import (
	"context"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/sim-catalog/internal/errors"
	"github.com/KirkDiggler/sim-catalog/internal/snapshot"
)

// FileConfig configures the file snapshot source
type FileConfig struct {
	// Path is a snapshot file, or a directory holding db.json / db.bin
	Path string
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Path == "" {
		return errors.NewValidationBuilder().RequiredField("path").Build()
	}
	return nil
}

type fileRepository struct {
	path string
}

// NewFile creates a Repository that reads the snapshot from disk
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileRepository{path: cfg.Path}, nil
}

func (r *fileRepository) Fetch(ctx context.Context, input *FetchInput) (*FetchOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "snapshot fetch canceled")
	}

	enc := preferredEncoding(input)
	path := r.path
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DefaultName+enc.Extension())
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("snapshot file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read snapshot file %s", path)
	}

	actual, ok := snapshot.DetectEncoding(path, "")
	if !ok {
		actual = enc
	}

	return &FetchOutput{
		Data:     data,
		Encoding: actual,
		Source:   "file " + path,
	}, nil
}
