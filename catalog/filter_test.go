package catalog

import (
	"testing"

	"github.com/sahilchouksey/college-compass/model"
)

func view(name, stateID, cityID string, streams []string, courseIDs ...string) CollegeView {
	courses := make([]model.CourseRef, len(courseIDs))
	for i, id := range courseIDs {
		courses[i] = model.CourseRef{CourseID: id}
	}
	return CollegeView{
		College: model.College{
			Name:    name,
			StateID: stateID,
			CityID:  cityID,
			Streams: streams,
			Courses: courses,
		},
	}
}

func names(views []CollegeView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.College.Name
	}
	return out
}

func TestSearchMatchesNameCityState(t *testing.T) {
	views := []CollegeView{
		{College: model.College{Name: "Apex Engineering"}, CityName: "Indore", StateName: "Madhya Pradesh"},
		{College: model.College{Name: "Summit Law School"}, CityName: "Pune", StateName: "Maharashtra"},
	}

	if got := Search(views, ""); len(got) != 2 {
		t.Errorf("empty query should keep everything, got %d", len(got))
	}
	if got := Search(views, "apex"); len(got) != 1 || got[0].College.Name != "Apex Engineering" {
		t.Errorf("name search failed: %v", names(got))
	}
	if got := Search(views, "PUNE"); len(got) != 1 || got[0].College.Name != "Summit Law School" {
		t.Errorf("city search should be case-insensitive: %v", names(got))
	}
	if got := Search(views, "madhya"); len(got) != 1 {
		t.Errorf("state search failed: %v", names(got))
	}
	if got := Search(views, "nowhere"); len(got) != 0 {
		t.Errorf("expected no matches, got %v", names(got))
	}
}

func TestFiltersComposeByAnd(t *testing.T) {
	views := []CollegeView{
		view("A", "s1", "c1", []string{"eng"}, "btech"),
		view("B", "s1", "c2", []string{"eng", "mgmt"}, "mba"),
		view("C", "s2", "c3", []string{"mgmt"}, "mba"),
	}

	// Each added dimension can only shrink the set.
	got := FilterByStreams(views, []string{"eng"})
	if len(got) != 2 {
		t.Fatalf("stream filter: got %v", names(got))
	}
	got = FilterByStates(got, []string{"s1"})
	if len(got) != 2 {
		t.Fatalf("state filter: got %v", names(got))
	}
	got = FilterByCourses(got, []string{"mba"})
	if len(got) != 1 || got[0].College.Name != "B" {
		t.Fatalf("course filter: got %v", names(got))
	}
	got = FilterByCities(got, []string{"c3"})
	if len(got) != 0 {
		t.Fatalf("disjoint city filter should empty the set: got %v", names(got))
	}
}

func TestEmptyDimensionsLeaveSetUntouched(t *testing.T) {
	views := []CollegeView{
		view("A", "s1", "c1", []string{"eng"}),
		view("B", "s2", "c2", []string{"mgmt"}),
	}

	if got := FilterByStreams(views, nil); len(got) != 2 {
		t.Errorf("empty stream filter changed the set: %v", names(got))
	}
	if got := FilterByCourses(views, nil); len(got) != 2 {
		t.Errorf("empty course filter changed the set: %v", names(got))
	}
	if got := FilterByStates(views, nil); len(got) != 2 {
		t.Errorf("empty state filter changed the set: %v", names(got))
	}
	if got := FilterByCities(views, nil); len(got) != 2 {
		t.Errorf("empty city filter changed the set: %v", names(got))
	}
}

func TestCitiesForStates(t *testing.T) {
	cities := []model.City{
		{ID: "c1", Name: "Indore", StateID: "s1"},
		{ID: "c2", Name: "Pune", StateID: "s2"},
	}

	// No selected state offers no options, unlike the college filters.
	if got := CitiesForStates(cities, nil); len(got) != 0 {
		t.Errorf("expected no options without a state, got %v", got)
	}

	got := CitiesForStates(cities, []string{"s2"})
	if len(got) != 1 || got[0].Name != "Pune" {
		t.Errorf("state narrowing failed: %v", got)
	}
}
