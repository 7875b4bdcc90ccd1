package model

import (
	"errors"
	"testing"

	"github.com/sahilchouksey/college-compass/database"
)

func collegeDoc(data map[string]interface{}) database.Document {
	return database.Document{ID: "col1", Collection: database.CollectionColleges, Data: data}
}

func TestDecodeCollege(t *testing.T) {
	c, err := DecodeCollege(collegeDoc(map[string]interface{}{
		"name":              "Apex Engineering",
		"slug":              "apex-engineering",
		"establishmentYear": float64(1987), // numbers arrive as float64 from jsonb
		"stateId":           "st1",
		"streams":           []interface{}{"sm1", "sm2"},
		"courses": []interface{}{
			map[string]interface{}{"courseId": "cr1", "fee": "120000"},
		},
		"featured": true,
	}))
	if err != nil {
		t.Fatal(err)
	}

	if c.Name != "Apex Engineering" || c.Slug != "apex-engineering" {
		t.Errorf("basic fields wrong: %+v", c)
	}
	if c.EstablishmentYear != 1987 {
		t.Errorf("year = %d", c.EstablishmentYear)
	}
	if len(c.Streams) != 2 {
		t.Errorf("streams = %v", c.Streams)
	}
	if len(c.Courses) != 1 || c.Courses[0].CourseID != "cr1" || c.Courses[0].Fee != "120000" {
		t.Errorf("courses = %v", c.Courses)
	}
	if !c.Featured {
		t.Error("featured should be true")
	}
}

func TestDecodeCollegeAbsentFieldsAreZero(t *testing.T) {
	c, err := DecodeCollege(collegeDoc(map[string]interface{}{"name": "Bare"}))
	if err != nil {
		t.Fatal(err)
	}
	if c.Slug != "" || c.EstablishmentYear != 0 || c.Featured || c.Streams != nil || c.Courses != nil {
		t.Errorf("absent fields must decode to zero values: %+v", c)
	}
}

func TestDecodeCollegeLegacyCourseStrings(t *testing.T) {
	c, err := DecodeCollege(collegeDoc(map[string]interface{}{
		"name":    "Old Data",
		"courses": []interface{}{"cr1", "cr2"},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Courses) != 2 || c.Courses[0].CourseID != "cr1" || c.Courses[0].Fee != "" {
		t.Errorf("legacy course ids should decode to fee-less refs: %v", c.Courses)
	}
}

func TestDecodeCollegeWrongTypeIsError(t *testing.T) {
	_, err := DecodeCollege(collegeDoc(map[string]interface{}{
		"name":    "Broken",
		"streams": "not-an-array",
	}))

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decodeErr.Field != "streams" {
		t.Errorf("field = %q", decodeErr.Field)
	}
}

func TestDecodeEnquiry(t *testing.T) {
	doc := database.Document{ID: "e1", Collection: database.CollectionEnquiries, Data: map[string]interface{}{
		"collegeId":   "col1",
		"collegeName": "Apex Engineering",
		"name":        "Asha",
		"email":       "asha@example.com",
		"phone":       "9876543210",
		"status":      EnquiryStatusPending,
		"createdAt":   float64(1700000000000),
	}}

	e, err := DecodeEnquiry(doc)
	if err != nil {
		t.Fatal(err)
	}
	if e.CollegeName != "Apex Engineering" || e.Status != EnquiryStatusPending || e.CreatedAt != 1700000000000 {
		t.Errorf("decoded enquiry wrong: %+v", e)
	}
}
