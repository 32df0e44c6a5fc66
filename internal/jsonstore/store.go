package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/medinafit/fixturegen/pkg"

	"github.com/google/uuid"
)

// Store reads and rewrites the app's JSON data collections in one directory.
// Collections are either object-maps keyed by record id, or ordered lists of
// records carrying an "id" field. Records not written by this tool are kept
// as raw JSON and never decoded into Go structs, so their fields and field
// order survive a rewrite untouched.
type Store struct {
	dir   string
	runID string
}

const manifestDirName = ".fixturegen"

func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("data dir cannot be empty")
	}
	exists, err := pkg.PathExists(dir, true)
	if err != nil {
		return nil, fmt.Errorf("check data dir %s: %w", dir, err)
	}
	if !exists {
		return nil, fmt.Errorf("data dir [%s] does not exist", dir)
	}
	return &Store{
		dir:   dir,
		runID: uuid.NewString(),
	}, nil
}

// RunID identifies this generation run; it is recorded in every manifest
// written by the run.
func (s *Store) RunID() string {
	return s.runID
}

// Manifest records the exact id set one generation run wrote into a
// collection. The next run removes exactly these ids before merging its own
// records in, making regeneration a set-replace keyed by run rather than an
// id-prefix guess.
type Manifest struct {
	RunID     string    `json:"runId"`
	CreatedAt time.Time `json:"createdAt"`
	IDs       []string  `json:"ids"`
}

// MergeResult reports what a merge did to a collection.
type MergeResult struct {
	Kept    int
	Removed int
	Added   int
}

// MergeMap merges freshly generated records into an object-map collection.
// Records written by the previous run (per its manifest) are dropped first;
// when no manifest exists the given id prefixes select what to drop, which
// covers collections last written by the legacy scripts. All other records
// survive untouched. The collection file must exist.
func MergeMap[T any](s *Store, collection string, fresh map[string]T, fallbackPrefixes ...string) (MergeResult, error) {
	existing, err := s.loadRawMap(collection)
	if err != nil {
		return MergeResult{}, err
	}

	stale, err := s.staleFilter(collection, fallbackPrefixes)
	if err != nil {
		return MergeResult{}, err
	}

	var res MergeResult
	merged := make(map[string]json.RawMessage, len(existing)+len(fresh))
	for id, raw := range existing {
		if stale(id) {
			res.Removed++
			continue
		}
		merged[id] = raw
		res.Kept++
	}

	ids := make([]string, 0, len(fresh))
	for id, record := range fresh {
		data, err := json.Marshal(record)
		if err != nil {
			return MergeResult{}, fmt.Errorf("marshal record %s: %w", id, err)
		}
		merged[id] = data
		ids = append(ids, id)
		res.Added++
	}

	if err := s.save(collection, merged, ids); err != nil {
		return MergeResult{}, err
	}
	return res, nil
}

// MergeList is MergeMap for ordered-list collections; idFn extracts the
// record id used for the manifest. Fresh records are appended after the
// surviving existing ones.
func MergeList[T any](s *Store, collection string, fresh []T, idFn func(T) string, fallbackPrefixes ...string) (MergeResult, error) {
	existing, err := s.loadRawList(collection)
	if err != nil {
		return MergeResult{}, err
	}

	stale, err := s.staleFilter(collection, fallbackPrefixes)
	if err != nil {
		return MergeResult{}, err
	}

	var res MergeResult
	merged := make([]json.RawMessage, 0, len(existing)+len(fresh))
	for _, raw := range existing {
		var probe struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			return MergeResult{}, fmt.Errorf("probe record id in %s: %w", collection, err)
		}
		if stale(probe.ID) {
			res.Removed++
			continue
		}
		merged = append(merged, raw)
		res.Kept++
	}

	ids := make([]string, 0, len(fresh))
	for _, record := range fresh {
		data, err := json.Marshal(record)
		if err != nil {
			return MergeResult{}, fmt.Errorf("marshal record %s: %w", idFn(record), err)
		}
		merged = append(merged, data)
		ids = append(ids, idFn(record))
		res.Added++
	}

	if err := s.save(collection, merged, ids); err != nil {
		return MergeResult{}, err
	}
	return res, nil
}

// ReplaceMap overwrites the whole collection with the given records,
// regardless of previous content. The collection file may be absent.
func ReplaceMap[T any](s *Store, collection string, records map[string]T) (MergeResult, error) {
	out := make(map[string]json.RawMessage, len(records))
	ids := make([]string, 0, len(records))
	for id, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			return MergeResult{}, fmt.Errorf("marshal record %s: %w", id, err)
		}
		out[id] = data
		ids = append(ids, id)
	}

	if err := s.save(collection, out, ids); err != nil {
		return MergeResult{}, err
	}
	return MergeResult{Added: len(records)}, nil
}

// Load reads a collection into out, for read-only inputs.
func (s *Store) Load(collection string, out any) error {
	data, err := os.ReadFile(s.collectionPath(collection))
	if err != nil {
		return fmt.Errorf("read collection %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal collection %s: %w", collection, err)
	}
	return nil
}

func (s *Store) collectionPath(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) manifestPath(collection string) string {
	return filepath.Join(s.dir, manifestDirName, collection+".manifest.json")
}

// staleFilter decides which existing record ids belong to a previous
// generation run and must give way to the fresh batch.
func (s *Store) staleFilter(collection string, fallbackPrefixes []string) (func(id string) bool, error) {
	prev, err := s.previousManifest(collection)
	if err != nil {
		return nil, err
	}

	if prev != nil {
		staleIDs := make(map[string]struct{}, len(prev.IDs))
		for _, id := range prev.IDs {
			staleIDs[id] = struct{}{}
		}
		return func(id string) bool {
			_, ok := staleIDs[id]
			return ok
		}, nil
	}

	return func(id string) bool {
		for _, prefix := range fallbackPrefixes {
			if strings.HasPrefix(id, prefix) {
				return true
			}
		}
		return false
	}, nil
}

func (s *Store) previousManifest(collection string) (*Manifest, error) {
	data, err := os.ReadFile(s.manifestPath(collection))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest for %s: %w", collection, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest for %s: %w", collection, err)
	}
	return &m, nil
}

func (s *Store) loadRawMap(collection string) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.collectionPath(collection))
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}
	var records map[string]json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal collection %s: %w", collection, err)
	}
	return records, nil
}

func (s *Store) loadRawList(collection string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(s.collectionPath(collection))
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal collection %s: %w", collection, err)
	}
	return records, nil
}

// save writes the collection and then its manifest. There is no transaction
// across the two, nor across collections: a crash in between leaves the
// collection updated under the previous manifest until the next full run.
func (s *Store) save(collection string, content any, writtenIDs []string) error {
	if err := s.writeFileAtomic(s.collectionPath(collection), content); err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}

	sort.Strings(writtenIDs)
	manifest := Manifest{
		RunID:     s.runID,
		CreatedAt: time.Now().UTC(),
		IDs:       writtenIDs,
	}
	if err := os.MkdirAll(filepath.Join(s.dir, manifestDirName), 0o755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}
	if err := s.writeFileAtomic(s.manifestPath(collection), manifest); err != nil {
		return fmt.Errorf("write manifest for %s: %w", collection, err)
	}
	return nil
}

func (s *Store) writeFileAtomic(path string, content any) error {
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
