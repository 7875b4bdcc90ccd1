package resource

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/sahilchouksey/college-compass/database"
)

// fakeStore is an in-memory Storage for editor tests.
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
	if orderBy == "" {
		orderBy = "name"
	}
	var out []database.Document
	for id, data := range f.docs[collection] {
		out = append(out, database.Document{ID: id, Collection: collection, Data: data})
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := out[i].Data[orderBy].(string)
		b, _ := out[j].Data[orderBy].(string)
		if a == b {
			return out[i].ID < out[j].ID
		}
		return a < b
	})
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

func citySchema() Schema {
	return Schema{
		Collection: "cities",
		Title:      "Cities",
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: KindText},
			{Name: "stateId", Label: "State", Kind: KindSelect, Source: "states"},
		},
	}
}

func TestSaveCreateThenList(t *testing.T) {
	store := newFakeStore()
	stateID, _ := store.Add("states", map[string]interface{}{"name": "Madhya Pradesh"})
	e := NewEditor(store, citySchema())

	id, err := e.Save("", map[string]string{"name": "Indore", "stateId": stateID})
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("create should return the new id")
	}

	rows, err := e.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Values["stateId"] != stateID {
		t.Errorf("raw value should keep the id, got %q", rows[0].Values["stateId"])
	}
	if rows[0].Display["stateId"] != "Madhya Pradesh" {
		t.Errorf("select cell should resolve to the label, got %q", rows[0].Display["stateId"])
	}
}

func TestSaveUpdateOverwritesOnlySchemaFields(t *testing.T) {
	store := newFakeStore()
	id, _ := store.Add("cities", map[string]interface{}{
		"name":    "Indore",
		"stateId": "st1",
		"legacy":  "keep-me", // not in the schema
	})
	e := NewEditor(store, citySchema())

	if _, err := e.Save(id, map[string]string{"name": "Indore City", "stateId": "st1", "extra": "dropped"}); err != nil {
		t.Fatal(err)
	}

	data := store.docs["cities"][id]
	if data["name"] != "Indore City" {
		t.Errorf("name not updated: %v", data["name"])
	}
	if data["legacy"] != "keep-me" {
		t.Errorf("unlisted stored field must survive updates: %v", data["legacy"])
	}
	if _, ok := data["extra"]; ok {
		t.Error("extra submitted keys must be dropped")
	}
}

func TestOptionsDependency(t *testing.T) {
	store := newFakeStore()
	mp, _ := store.Add("states", map[string]interface{}{"name": "Madhya Pradesh"})
	mh, _ := store.Add("states", map[string]interface{}{"name": "Maharashtra"})
	store.Add("cities", map[string]interface{}{"name": "Indore", "stateId": mp})
	store.Add("cities", map[string]interface{}{"name": "Pune", "stateId": mh})

	schema := Schema{
		Collection: "colleges",
		Fields: []Field{
			{Name: "stateId", Kind: KindSelect, Source: "states"},
			{Name: "cityId", Kind: KindSelect, Source: "cities",
				Dependency: &Dependency{DependentOnField: "stateId", MatchOnOptionField: "stateId"}},
		},
	}
	e := NewEditor(store, schema)

	// An empty dependent value offers nothing.
	options, err := e.Options("cityId", map[string]string{"stateId": ""})
	if err != nil {
		t.Fatal(err)
	}
	if len(options) != 0 {
		t.Errorf("expected no options without a state, got %v", options)
	}

	options, err = e.Options("cityId", map[string]string{"stateId": mp})
	if err != nil {
		t.Fatal(err)
	}
	if len(options) != 1 || options[0].Label != "Indore" {
		t.Errorf("dependency filter failed: %v", options)
	}

	// Independent selects ignore the form values entirely.
	options, err = e.Options("stateId", map[string]string{})
	if err != nil {
		t.Fatal(err)
	}
	if len(options) != 2 {
		t.Errorf("expected both states, got %v", options)
	}

	if _, err := e.Options("name", nil); err == nil {
		t.Error("expected an error for a non-select field")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newFakeStore()
	id, _ := store.Add("cities", map[string]interface{}{"name": "Indore"})
	e := NewEditor(store, citySchema())

	if err := e.Delete(id); err != nil {
		t.Fatal(err)
	}
	if err := e.Delete(id); err != nil {
		t.Errorf("second delete must not fail: %v", err)
	}
	if err := e.Delete("never-existed"); err != nil {
		t.Errorf("deleting an absent record must not fail: %v", err)
	}
}

func TestYearFieldSanitizedOnSave(t *testing.T) {
	store := newFakeStore()
	schema := Schema{
		Collection: "colleges",
		Fields: []Field{
			{Name: "name", Kind: KindText},
			{Name: "establishmentYear", Kind: KindYear},
		},
	}
	e := NewEditor(store, schema)

	id, err := e.Save("", map[string]string{"name": "Apex", "establishmentYear": "est. 19876"})
	if err != nil {
		t.Fatal(err)
	}
	if got := store.docs["colleges"][id]["establishmentYear"]; got != "1987" {
		t.Errorf("year not sanitized: %v", got)
	}
}

func TestUploadKey(t *testing.T) {
	schema := Schema{
		Collection: "recruiters",
		Fields: []Field{
			{Name: "name", Kind: KindText},
			{Name: "logo", Kind: KindFile, StoragePath: "recruiters"},
		},
	}
	e := NewEditor(newFakeStore(), schema)

	now := time.UnixMilli(1700000000000)
	key, err := e.UploadKey("logo", "acme.png", now)
	if err != nil {
		t.Fatal(err)
	}
	if key != "recruiters/1700000000000-acme.png" {
		t.Errorf("got %q", key)
	}

	if _, err := e.UploadKey("name", "acme.png", now); err == nil {
		t.Error("expected an error for a non-file field")
	}
}
