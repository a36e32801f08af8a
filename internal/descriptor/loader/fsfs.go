package loader

import (
	"context"
	"errors"
	"io/fs"
)

type fsHolder struct {
	fsys fs.FS
}

func (h fsHolder) load(ctx context.Context, name string) ([]byte, error) {
	if h.fsys == nil {
		return nil, errors.New("descriptor loader: file system is not configured")
	}
	if name == "" {
		return nil, errors.New("descriptor loader: file name is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return fs.ReadFile(h.fsys, name)
}
