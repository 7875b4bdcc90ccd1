package catalog

import (
	"context"
	"sync"
	"time"
)

// Ref is the result of resolving one referenced id to a display name.
// A reference that no longer resolves is kept as an explicit missing
// variant instead of a null; display layers drop it.
type Ref struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Missing bool   `json:"missing,omitempty"`
}

// nameCacheTTL bounds how long a resolved name is reused. Roughly the
// lifetime of a page view; there is no cross-component invalidation.
const nameCacheTTL = 5 * time.Minute

// resolveRefs resolves every id against a collection in parallel, one
// document read per id. Individual failures become missing refs; they
// never abort the batch.
func (s *Service) resolveRefs(collection string, ids []string) []Ref {
	refs := make([]Ref, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			refs[i] = s.resolveRef(collection, id)
		}(i, id)
	}
	wg.Wait()

	return refs
}

func (s *Service) resolveRef(collection, id string) Ref {
	if id == "" {
		return Ref{ID: id, Missing: true}
	}

	ctx := context.Background()
	cacheKey := "catalog:name:" + collection + ":" + id

	if s.cache != nil {
		var cached Ref
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			return cached
		}
	}

	doc, err := s.store.Get(collection, id)
	if err != nil {
		return Ref{ID: id, Missing: true}
	}

	name, _ := doc.Data["name"].(string)
	ref := Ref{ID: id, Name: name}

	if s.cache != nil {
		// Best effort; a cache write failure changes nothing.
		_ = s.cache.SetJSON(ctx, cacheKey, ref, nameCacheTTL)
	}
	return ref
}

// refNames drops missing refs and returns the resolved names.
func refNames(refs []Ref) []string {
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		if r.Missing {
			continue
		}
		names = append(names, r.Name)
	}
	return names
}
