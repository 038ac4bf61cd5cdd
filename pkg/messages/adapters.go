package messages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
)

// Adapter loads per-language message tables from some source.
type Adapter interface {
	Load(ctx context.Context) (map[string]Nested, error)
}

// MapAdapter serves tables from memory.
type MapAdapter struct {
	Data map[string]Nested
}

// Load implements Adapter.
func (a *MapAdapter) Load(_ context.Context) (map[string]Nested, error) {
	if a.Data == nil {
		return map[string]Nested{}, nil
	}
	return a.Data, nil
}

// FileAdapter loads a single JSON or YAML document from disk.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements Adapter.
func (a *FileAdapter) Load(ctx context.Context) (map[string]Nested, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("message file %q is empty", a.path)
	}

	tables, err := a.parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return tables, nil
}

// FSAdapter loads every JSON and YAML document found directly inside dir
// of an fs.FS. It serves both embed.FS and os.DirFS. Documents are merged
// in lexical file order; later files override earlier keys of the same
// language.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter returns nil if fsys is nil. An empty dir means the root.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

// NewDirectoryAdapter is NewFSAdapter over a directory on disk.
func NewDirectoryAdapter(dir string) *FSAdapter {
	if dir == "" {
		return nil
	}
	return NewFSAdapter(os.DirFS(dir), ".")
}

// Load implements Adapter.
func (a *FSAdapter) Load(ctx context.Context) (map[string]Nested, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	result := make(map[string]Nested)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingFileCancelled, err)
		}
		if entry.IsDir() {
			continue
		}
		parser := ParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", name, err))
		}
		tables, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
		}
		for lang, table := range tables {
			if result[lang] == nil {
				result[lang] = Nested{}
			}
			mergeNested(result[lang], table)
		}
	}
	return result, nil
}

func mergeNested(dst, src Nested) {
	for k, v := range src {
		srcMap, srcIsMap := asMap(v)
		dstMap, dstIsMap := asMap(dst[k])
		if srcIsMap && dstIsMap {
			merged := Nested(dstMap)
			mergeNested(merged, Nested(srcMap))
			dst[k] = map[string]any(merged)
			continue
		}
		dst[k] = v
	}
}
