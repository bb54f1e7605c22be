package expdata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/model"
)

// BoundType classifies how a reference value constrains a prediction.
type BoundType string

const (
	BoundMeasured    BoundType = "MEASURED"
	BoundTheoretical BoundType = "THEORETICAL"
	BoundDerived     BoundType = "DERIVED"
)

// Value is a single experimental reference datum. Read-only once loaded.
type Value struct {
	Value       model.Number
	Uncertainty model.Number
	Source      string
	BoundType   BoundType
}

// Store loads and caches experimental reference documents. Like the
// registry it is single-threaded state; callers must not share it across
// goroutines.
type Store struct {
	baseDir string
	docs    map[string]map[string]any
	order   []string
}

// NewStore returns a Store that resolves relative source files against
// baseDir. An empty baseDir resolves against the working directory.
func NewStore(baseDir string) *Store {
	return &Store{
		baseDir: baseDir,
		docs:    make(map[string]map[string]any),
	}
}

// Load parses the JSON document at sourceFile into the cache. Malformed
// content fails with model.ErrDataFormat. Loading an already loaded file is
// a no-op; reference data never changes mid-run.
func (s *Store) Load(ctx context.Context, sourceFile string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := cacheKey(sourceFile)
	if _, ok := s.docs[key]; ok {
		return nil
	}
	raw, err := os.ReadFile(s.resolve(sourceFile))
	if err != nil {
		return fmt.Errorf("read experimental data: %w", err)
	}
	doc, err := parseDocument(raw)
	if err != nil {
		return fmt.Errorf("experimental data %s: %w", sourceFile, err)
	}
	s.docs[key] = doc
	s.order = append(s.order, key)
	return nil
}

// Get returns the reference value at the dotted dataPath inside a loaded
// document, e.g. "em.parameters.alpha_inv". Segments traverse object keys
// literally; there is no fuzzy matching. Unknown files and paths that do
// not resolve to a value object fail with model.ErrNotFound.
func (s *Store) Get(sourceFile, dataPath string) (Value, error) {
	doc, ok := s.docs[cacheKey(sourceFile)]
	if !ok {
		return Value{}, fmt.Errorf("experimental source %q not loaded: %w", sourceFile, model.ErrNotFound)
	}
	var node any = doc
	for _, segment := range strings.Split(dataPath, ".") {
		obj, ok := node.(map[string]any)
		if !ok {
			return Value{}, notFoundErr(sourceFile, dataPath)
		}
		node, ok = obj[segment]
		if !ok {
			return Value{}, notFoundErr(sourceFile, dataPath)
		}
	}
	obj, ok := node.(map[string]any)
	if !ok {
		return Value{}, notFoundErr(sourceFile, dataPath)
	}
	if _, ok := obj["value"]; !ok {
		return Value{}, notFoundErr(sourceFile, dataPath)
	}
	v, err := parseValue(obj)
	if err != nil {
		return Value{}, fmt.Errorf("%s: %s: %w", sourceFile, dataPath, err)
	}
	return v, nil
}

// Loaded returns the cleaned paths of every loaded document in load order.
func (s *Store) Loaded() []string {
	return slices.Clone(s.order)
}

func (s *Store) resolve(sourceFile string) string {
	if filepath.IsAbs(sourceFile) || s.baseDir == "" {
		return sourceFile
	}
	return filepath.Join(s.baseDir, sourceFile)
}

func cacheKey(sourceFile string) string {
	return filepath.Clean(sourceFile)
}

func notFoundErr(sourceFile, dataPath string) error {
	return fmt.Errorf("%s has no reference value at %q: %w", sourceFile, dataPath, model.ErrNotFound)
}

// parseDocument decodes the raw document and eagerly validates every
// parameters subtree, so format problems surface at load time rather than
// inside the validation loop.
func parseDocument(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDataFormat, err)
	}
	doc, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: document root must be a JSON object, got %T", model.ErrDataFormat, root)
	}
	for section, node := range doc {
		m, ok := node.(map[string]any)
		if !ok {
			continue
		}
		params, ok := m["parameters"]
		if !ok {
			continue
		}
		pm, ok := params.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: section %q: parameters must be an object", model.ErrDataFormat, section)
		}
		for name, entry := range pm {
			obj, ok := entry.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %s.parameters.%s: entry must be an object", model.ErrDataFormat, section, name)
			}
			if _, err := parseValue(obj); err != nil {
				return nil, fmt.Errorf("%s.parameters.%s: %w", section, name, err)
			}
		}
	}
	return doc, nil
}

// parseValue converts one {value, uncertainty, source?, bound_type?} object.
// An absent uncertainty stays zero, which the validation engine later
// classifies as INVALID rather than dividing by it.
func parseValue(obj map[string]any) (Value, error) {
	raw, ok := obj["value"]
	if !ok {
		return Value{}, fmt.Errorf("%w: missing value field", model.ErrDataFormat)
	}
	value, err := asNumber(raw)
	if err != nil {
		return Value{}, fmt.Errorf("value: %w", err)
	}
	out := Value{Value: value, BoundType: BoundMeasured}
	if raw, ok := obj["uncertainty"]; ok {
		unc, err := asNumber(raw)
		if err != nil {
			return Value{}, fmt.Errorf("uncertainty: %w", err)
		}
		out.Uncertainty = unc
	}
	if raw, ok := obj["source"]; ok {
		src, ok := raw.(string)
		if !ok {
			return Value{}, fmt.Errorf("%w: source must be a string", model.ErrDataFormat)
		}
		out.Source = src
	}
	if raw, ok := obj["bound_type"]; ok {
		bt, ok := raw.(string)
		if !ok {
			return Value{}, fmt.Errorf("%w: bound_type must be a string", model.ErrDataFormat)
		}
		switch BoundType(bt) {
		case BoundMeasured, BoundTheoretical, BoundDerived:
			out.BoundType = BoundType(bt)
		default:
			return Value{}, fmt.Errorf("%w: unknown bound_type %q", model.ErrDataFormat, bt)
		}
	}
	return out, nil
}

func asNumber(v any) (model.Number, error) {
	num, ok := v.(json.Number)
	if !ok {
		return model.Number{}, fmt.Errorf("%w: expected a number, got %T", model.ErrDataFormat, v)
	}
	return model.ParseNumber(num.String())
}
