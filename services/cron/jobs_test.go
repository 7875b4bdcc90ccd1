package cron

import (
	"fmt"
	"testing"

	"github.com/sahilchouksey/college-compass/database"
)

type fakeStore struct {
	docs   map[string]map[string]map[string]interface{}
	nextID int
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string]map[string]map[string]interface{}{}}
}

func (f *fakeStore) Init() error        { return nil }
func (f *fakeStore) Close() error       { return nil }
func (f *fakeStore) HealthCheck() error { return nil }

func (f *fakeStore) List(collection string, orderBy string) ([]database.Document, error) {
	var out []database.Document
	for id, data := range f.docs[collection] {
		out = append(out, database.Document{ID: id, Collection: collection, Data: data})
	}
	return out, nil
}

func (f *fakeStore) FindByField(collection string, field string, value string) ([]database.Document, error) {
	var out []database.Document
	for id, data := range f.docs[collection] {
		if v, ok := data[field]; ok && fmt.Sprint(v) == value {
			out = append(out, database.Document{ID: id, Collection: collection, Data: data})
		}
	}
	return out, nil
}

func (f *fakeStore) Get(collection string, id string) (*database.Document, error) {
	data, ok := f.docs[collection][id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &database.Document{ID: id, Collection: collection, Data: data}, nil
}

func (f *fakeStore) Add(collection string, data map[string]interface{}) (string, error) {
	f.nextID++
	id := fmt.Sprintf("id-%d", f.nextID)
	if f.docs[collection] == nil {
		f.docs[collection] = map[string]map[string]interface{}{}
	}
	f.docs[collection][id] = data
	return id, nil
}

func (f *fakeStore) Update(collection string, id string, fields map[string]interface{}) error {
	data, ok := f.docs[collection][id]
	if !ok {
		return database.ErrNotFound
	}
	for k, v := range fields {
		data[k] = v
	}
	return nil
}

func (f *fakeStore) Delete(collection string, id string) error {
	delete(f.docs[collection], id)
	return nil
}

func (f *fakeStore) put(collection, id string, data map[string]interface{}) {
	if f.docs[collection] == nil {
		f.docs[collection] = map[string]map[string]interface{}{}
	}
	f.docs[collection][id] = data
}

func TestAuditReferencesReportsDanglingIds(t *testing.T) {
	store := newFakeStore()
	store.put(database.CollectionStates, "st1", map[string]interface{}{"name": "Madhya Pradesh"})
	store.put(database.CollectionStreams, "sm1", map[string]interface{}{"name": "Engineering"})

	// stateId resolves, streams carries one live and one dangling id.
	store.put(database.CollectionColleges, "col1", map[string]interface{}{
		"name":    "Apex Engineering",
		"stateId": "st1",
		"streams": []interface{}{"sm1", "deleted-stream"},
	})

	m := NewCronManager(store)
	m.AuditReferences()

	reports, err := store.List(database.CollectionAuditReports, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 audit report, got %d", len(reports))
	}

	report := reports[0].Data
	if got := report["danglingCount"]; got != 1 {
		t.Errorf("danglingCount = %v", got)
	}

	dangling, ok := report["dangling"].([]map[string]interface{})
	if !ok || len(dangling) != 1 {
		t.Fatalf("dangling entries wrong: %v", report["dangling"])
	}
	if dangling[0]["id"] != "deleted-stream" || dangling[0]["field"] != "streams" {
		t.Errorf("dangling entry wrong: %v", dangling[0])
	}

	// The audit never mutates catalog data.
	if _, err := store.Get(database.CollectionColleges, "col1"); err != nil {
		t.Errorf("college should be untouched: %v", err)
	}
}
