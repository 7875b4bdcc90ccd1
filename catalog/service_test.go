package catalog

import (
	"fmt"
	"sort"
	"testing"

	"github.com/sahilchouksey/college-compass/database"
)

// fakeStore is an in-memory Storage for service tests.
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
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
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

func seedCatalog(f *fakeStore) {
	f.put(database.CollectionStates, "st1", map[string]interface{}{"name": "Madhya Pradesh"})
	f.put(database.CollectionCities, "ct1", map[string]interface{}{"name": "Indore", "stateId": "st1"})
	f.put(database.CollectionStreams, "sm1", map[string]interface{}{"name": "Engineering", "slug": "engineering"})
	f.put(database.CollectionStreams, "sm2", map[string]interface{}{"name": "Management", "slug": "management"})
	f.put(database.CollectionCourses, "cr1", map[string]interface{}{"name": "B.Tech", "slug": "btech", "streamId": "sm1"})
	f.put(database.CollectionApprovals, "ap1", map[string]interface{}{"name": "AICTE"})
	f.put(database.CollectionAffiliations, "af1", map[string]interface{}{"name": "Autonomous"})

	f.put(database.CollectionColleges, "col1", map[string]interface{}{
		"name":          "Apex Engineering",
		"slug":          "apex-engineering",
		"nameSlug":      "apex-engineering",
		"stateId":       "st1",
		"cityId":        "ct1",
		"approvalId":    "ap1",
		"affiliationId": "af1",
		"streams":       []interface{}{"sm1"},
		"courses": []interface{}{
			map[string]interface{}{"courseId": "cr1", "fee": "120000"},
			map[string]interface{}{"courseId": "gone", "fee": "5000"},
		},
		"featured": true,
	})
	f.put(database.CollectionColleges, "col2", map[string]interface{}{
		"name":     "Summit Business School",
		"slug":     "summit-business-school",
		"streams":  []interface{}{"sm2"},
		"featured": false,
	})
}

func TestCollegesResolvesNamesAndFilters(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	svc := NewService(store, nil)

	all, err := svc.Colleges(Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 colleges, got %d", len(all))
	}

	var apex *CollegeView
	for i := range all {
		if all[i].College.Name == "Apex Engineering" {
			apex = &all[i]
		}
	}
	if apex == nil {
		t.Fatal("Apex Engineering missing from listing")
	}
	if apex.StateName != "Madhya Pradesh" || apex.CityName != "Indore" {
		t.Errorf("location names not resolved: state=%q city=%q", apex.StateName, apex.CityName)
	}

	// A navigational stream slug narrows the set.
	filtered, err := svc.Colleges(Filter{StreamSlug: "engineering"})
	if err != nil {
		t.Fatal(err)
	}
	if len(filtered) != 1 || filtered[0].College.Name != "Apex Engineering" {
		t.Errorf("stream slug filter failed: got %d", len(filtered))
	}

	// An unresolvable slug skips its dimension instead of failing.
	unfiltered, err := svc.Colleges(Filter{StreamSlug: "no-such-stream"})
	if err != nil {
		t.Fatal(err)
	}
	if len(unfiltered) != 2 {
		t.Errorf("unresolvable slug should be skipped, got %d colleges", len(unfiltered))
	}
}

func TestCollegeBySlugDetail(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	svc := NewService(store, nil)

	detail, err := svc.CollegeBySlug("apex-engineering")
	if err != nil {
		t.Fatal(err)
	}
	if detail.ApprovalName != "AICTE" || detail.AffiliationName != "Autonomous" {
		t.Errorf("approval/affiliation not resolved: %q / %q", detail.ApprovalName, detail.AffiliationName)
	}
	if len(detail.StreamNames) != 1 || detail.StreamNames[0] != "Engineering" {
		t.Errorf("stream names not resolved: %v", detail.StreamNames)
	}

	if len(detail.Courses) != 2 {
		t.Fatalf("expected 2 course entries, got %d", len(detail.Courses))
	}
	byID := map[string]CourseFee{}
	for _, cf := range detail.Courses {
		byID[cf.CourseID] = cf
	}
	if cf := byID["cr1"]; cf.Name != "B.Tech" || cf.Fee != "120000" || cf.Missing {
		t.Errorf("resolved course wrong: %+v", cf)
	}
	// A deleted course id stays as an explicit missing entry.
	if cf := byID["gone"]; !cf.Missing {
		t.Errorf("dangling course should be missing: %+v", cf)
	}

	if _, err := svc.CollegeBySlug("does-not-exist"); err != database.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCollegeBySlugNameFallback(t *testing.T) {
	store := newFakeStore()
	store.put(database.CollectionColleges, "col1", map[string]interface{}{
		"name": "Legacy College",
	})
	svc := NewService(store, nil)

	// No slug or nameSlug stored; the literal name still resolves.
	detail, err := svc.CollegeBySlug("legacy college")
	if err != nil {
		t.Fatal(err)
	}
	if detail.College.Name != "Legacy College" {
		t.Errorf("got %q", detail.College.Name)
	}
}

func TestHomePayload(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	svc := NewService(store, nil)

	payload, err := svc.Home()
	if err != nil {
		t.Fatal(err)
	}
	if payload.CollegeCount != 2 || payload.StreamCount != 2 || payload.CourseCount != 1 {
		t.Errorf("counts wrong: %d/%d/%d", payload.CollegeCount, payload.StreamCount, payload.CourseCount)
	}
	if len(payload.Featured) != 1 || payload.Featured[0].College.Name != "Apex Engineering" {
		t.Errorf("featured wrong: %v", payload.Featured)
	}
}

func TestCityOptions(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store)
	svc := NewService(store, nil)

	none, err := svc.CityOptions(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf("expected no options without states, got %v", none)
	}

	cities, err := svc.CityOptions([]string{"st1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(cities) != 1 || cities[0].Name != "Indore" {
		t.Errorf("city options wrong: %v", cities)
	}
}
