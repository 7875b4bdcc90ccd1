package catalog

import (
	"strings"

	"github.com/sahilchouksey/college-compass/model"
)

// Filter carries everything a catalog page can narrow a college list by.
// Slug-valued fields arrive from navigational links; id sets come from
// explicit filter controls. All active dimensions compose by logical
// AND; an empty dimension leaves the set untouched.
type Filter struct {
	Query      string
	StreamSlug string
	CourseSlug string
	StreamIDs  []string
	CourseIDs  []string
	StateIDs   []string
	CityIDs    []string
}

// Search keeps colleges whose name, city name or state name contains the
// query, case-insensitively. An empty query keeps everything.
func Search(views []CollegeView, query string) []CollegeView {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return views
	}
	out := make([]CollegeView, 0, len(views))
	for _, v := range views {
		haystacks := []string{v.College.Name, v.CityName, v.StateName}
		for _, h := range haystacks {
			if h != "" && strings.Contains(strings.ToLower(h), q) {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

// FilterByStreams keeps colleges offering at least one of the selected
// streams.
func FilterByStreams(views []CollegeView, streamIDs []string) []CollegeView {
	if len(streamIDs) == 0 {
		return views
	}
	selected := toSet(streamIDs)
	out := make([]CollegeView, 0, len(views))
	for _, v := range views {
		for _, id := range v.College.Streams {
			if selected[id] {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

// FilterByCourses keeps colleges offering at least one of the selected
// courses.
func FilterByCourses(views []CollegeView, courseIDs []string) []CollegeView {
	if len(courseIDs) == 0 {
		return views
	}
	selected := toSet(courseIDs)
	out := make([]CollegeView, 0, len(views))
	for _, v := range views {
		for _, ref := range v.College.Courses {
			if selected[ref.CourseID] {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

// FilterByStates keeps colleges located in one of the selected states.
func FilterByStates(views []CollegeView, stateIDs []string) []CollegeView {
	if len(stateIDs) == 0 {
		return views
	}
	selected := toSet(stateIDs)
	out := make([]CollegeView, 0, len(views))
	for _, v := range views {
		if selected[v.College.StateID] {
			out = append(out, v)
		}
	}
	return out
}

// FilterByCities keeps colleges located in one of the selected cities.
func FilterByCities(views []CollegeView, cityIDs []string) []CollegeView {
	if len(cityIDs) == 0 {
		return views
	}
	selected := toSet(cityIDs)
	out := make([]CollegeView, 0, len(views))
	for _, v := range views {
		if selected[v.College.CityID] {
			out = append(out, v)
		}
	}
	return out
}

// CitiesForStates narrows city filter options to cities belonging to the
// selected states. No selected state offers no city options, mirroring
// the dependent-select rule.
func CitiesForStates(cities []model.City, stateIDs []string) []model.City {
	if len(stateIDs) == 0 {
		return []model.City{}
	}
	selected := toSet(stateIDs)
	out := make([]model.City, 0, len(cities))
	for _, c := range cities {
		if selected[c.StateID] {
			out = append(out, c)
		}
	}
	return out
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
