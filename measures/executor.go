package measures

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"hash/fnv"
	"math"
	"sort"

	lru "github.com/hashicorp/golang-lru"
	"github.com/peterbourgon/diskv"

	"github.com/metafeat/metafeat/dataset"
	"github.com/metafeat/metafeat/summary"
)

// Executor computes extraction requests, possibly through a cache.
type Executor interface {
	Execute(d dataset.Dataset, group string, features []string, opts Options, cfg summary.Config) (summary.Result, error)
}

// MeasurementExecutor dispatches requests straight to Extract with a shared
// engine. It is the executor used when no caching is wanted.
type MeasurementExecutor struct {
	engine *summary.Engine
}

// NewMeasurementExecutor creates an executor around an engine. A nil engine
// selects the built-in summarisers.
func NewMeasurementExecutor(engine *summary.Engine) MeasurementExecutor {
	if engine == nil {
		engine = summary.NewEngine()
	}
	return MeasurementExecutor{engine: engine}
}

func (m MeasurementExecutor) Execute(d dataset.Dataset, group string, features []string, opts Options, cfg summary.Config) (summary.Result, error) {
	return Extract(group, d, features, opts, cfg, m.engine)
}

// MemoryMeasurementExecutor caches extraction results in an in-memory LRU.
type MemoryMeasurementExecutor struct {
	MeasurementExecutor
	cache *lru.Cache
}

// NewMemoryMeasurementExecutor creates a caching executor holding up to size
// results.
func NewMemoryMeasurementExecutor(size int, engine *summary.Engine) (*MemoryMeasurementExecutor, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &MemoryMeasurementExecutor{
		MeasurementExecutor: NewMeasurementExecutor(engine),
		cache:               cache,
	}, nil
}

func (m *MemoryMeasurementExecutor) Execute(d dataset.Dataset, group string, features []string, opts Options, cfg summary.Config) (summary.Result, error) {
	key := hashRequest(d, group, features, opts, cfg)
	if v, ok := m.cache.Get(key); ok {
		return v.(summary.Result), nil
	}
	result, err := m.MeasurementExecutor.Execute(d, group, features, opts, cfg)
	if err != nil {
		return nil, err
	}
	m.cache.Add(key, result)
	return result, nil
}

// DiskMeasurementExecutor caches gob-encoded extraction results on disk so
// repeated runs over the same dataset skip recomputation.
type DiskMeasurementExecutor struct {
	MeasurementExecutor
	store *diskv.Diskv
}

// NewDiskMeasurementExecutor creates a disk-backed caching executor rooted
// at basePath.
func NewDiskMeasurementExecutor(basePath string, engine *summary.Engine) *DiskMeasurementExecutor {
	return &DiskMeasurementExecutor{
		MeasurementExecutor: NewMeasurementExecutor(engine),
		store: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 4096 * 1024,
		}),
	}
}

func (m *DiskMeasurementExecutor) Execute(d dataset.Dataset, group string, features []string, opts Options, cfg summary.Config) (summary.Result, error) {
	key := fmt.Sprintf("%x", hashRequest(d, group, features, opts, cfg))
	if m.store.Has(key) {
		b, err := m.store.Read(key)
		if err == nil {
			var result summary.Result
			if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&result); err == nil {
				return result, nil
			}
		}
		// A corrupt entry falls through to recomputation.
	}
	result, err := m.MeasurementExecutor.Execute(d, group, features, opts, cfg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(result); err != nil {
		return nil, err
	}
	if err := m.store.Write(key, buf.Bytes()); err != nil {
		return nil, err
	}
	return result, nil
}

// hashRequest produces a deterministic cache key for an extraction request.
// Fields are written in a fixed order; map parameters are sorted first.
func hashRequest(d dataset.Dataset, group string, features []string, opts Options, cfg summary.Config) uint64 {
	h := fnv.New64a()
	write := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	writeFloat := func(f float64) {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
	}

	write(group)
	for _, f := range features {
		write(f)
	}
	write(fmt.Sprintf("%v|%v|%d|%s|%d", opts.ByClass, opts.NoTransform, opts.Folds, opts.Score, opts.Seed))
	for _, m := range cfg.Methods {
		write(m)
	}
	params := make([]string, 0, len(cfg.Params))
	for k := range cfg.Params {
		params = append(params, k)
	}
	sort.Strings(params)
	for _, k := range params {
		write(k)
		writeFloat(cfg.Params[k])
	}

	for _, l := range d.Labels {
		write(l)
	}
	for _, a := range d.Attributes {
		write(a.Name)
		if a.Kind == dataset.Numeric {
			for _, v := range a.Num {
				writeFloat(v)
			}
		} else {
			for _, v := range a.Values {
				write(v)
			}
		}
	}
	return h.Sum64()
}
