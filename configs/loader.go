package configs

import (
	"errors"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

var ErrValueNotFound = errors.New("config value not found")

// Loader reads CUE files lazily, validating each against a closed schema.
// Files listed earlier take precedence.
type Loader struct {
	paths    []string
	getFiles func() ([]file, error)
}

type file struct {
	path  string
	value cue.Value
}

func NewLoader(paths []string, schemaSrc string) Loader {
	return Loader{
		paths: paths,
		getFiles: sync.OnceValues(func() ([]file, error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, err
				}
			}

			var files []file
			for _, path := range paths {
				content, err := os.ReadFile(path)
				if err != nil {
					return nil, err
				}
				value := ctx.CompileBytes(content, cue.Filename(path))
				if err := value.Err(); err != nil {
					return nil, err
				}
				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, err
					}
				}
				files = append(files, file{
					path:  path,
					value: value,
				})
			}
			return files, nil
		}),
	}
}

func (l Loader) Paths() []string {
	return l.paths
}

// Values yields the value at path from every file that defines it.
func (l Loader) Values(path string) iter.Seq2[cue.Value, error] {
	return func(yield func(cue.Value, error) bool) {
		if l.getFiles == nil {
			return
		}
		files, err := l.getFiles()
		if err != nil {
			yield(cue.Value{}, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, f := range files {
			value := f.value.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if !yield(value, nil) {
				return
			}
		}
	}
}

// Decode decodes the first value at path into target.
func (l Loader) Decode(path string, target any) error {
	for value, err := range l.Values(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
