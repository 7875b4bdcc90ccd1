package model

import "github.com/sahilchouksey/college-compass/database"

// CourseRef links a College to a Course together with its free-text fee.
type CourseRef struct {
	CourseID string `json:"courseId"`
	Fee      string `json:"fee,omitempty"`
}

// College is the central entity. It stores only foreign-key ids and
// arrays of ids; display names are resolved by the catalog layer.
type College struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Slug              string      `json:"slug,omitempty"`
	NameSlug          string      `json:"nameSlug,omitempty"`
	About             string      `json:"about,omitempty"`
	EstablishmentYear int64       `json:"establishmentYear,omitempty"`
	StateID           string      `json:"stateId,omitempty"`
	CityID            string      `json:"cityId,omitempty"`
	ApprovalID        string      `json:"approvalId,omitempty"`
	AffiliationID     string      `json:"affiliationId,omitempty"`
	Streams           []string    `json:"streams,omitempty"`
	Courses           []CourseRef `json:"courses,omitempty"`
	Recruiters        []string    `json:"recruiters,omitempty"`
	EntranceExams     []string    `json:"entranceExams,omitempty"`
	Featured          bool        `json:"featured"`
	CreatedAt         int64       `json:"createdAt,omitempty"`
	UpdatedAt         int64       `json:"updatedAt,omitempty"`
}

func DecodeCollege(doc database.Document) (College, error) {
	col := database.CollectionColleges
	c := College{ID: doc.ID}

	strFields := []struct {
		key string
		dst *string
	}{
		{"name", &c.Name},
		{"slug", &c.Slug},
		{"nameSlug", &c.NameSlug},
		{"about", &c.About},
		{"stateId", &c.StateID},
		{"cityId", &c.CityID},
		{"approvalId", &c.ApprovalID},
		{"affiliationId", &c.AffiliationID},
	}
	for _, f := range strFields {
		v, err := stringField(col, doc.ID, doc.Data, f.key)
		if err != nil {
			return College{}, err
		}
		*f.dst = v
	}

	var err error
	if c.EstablishmentYear, err = intField(col, doc.ID, doc.Data, "establishmentYear"); err != nil {
		return College{}, err
	}
	if c.Featured, err = boolField(col, doc.ID, doc.Data, "featured"); err != nil {
		return College{}, err
	}
	if c.CreatedAt, err = intField(col, doc.ID, doc.Data, "createdAt"); err != nil {
		return College{}, err
	}
	if c.UpdatedAt, err = intField(col, doc.ID, doc.Data, "updatedAt"); err != nil {
		return College{}, err
	}
	if c.Streams, err = stringSliceField(col, doc.ID, doc.Data, "streams"); err != nil {
		return College{}, err
	}
	if c.Recruiters, err = stringSliceField(col, doc.ID, doc.Data, "recruiters"); err != nil {
		return College{}, err
	}
	if c.EntranceExams, err = stringSliceField(col, doc.ID, doc.Data, "entranceExams"); err != nil {
		return College{}, err
	}
	if c.Courses, err = decodeCourseRefs(doc.ID, doc.Data); err != nil {
		return College{}, err
	}

	return c, nil
}

// decodeCourseRefs accepts both the current {courseId, fee} objects and
// legacy plain course-id strings found in older documents.
func decodeCourseRefs(id string, data map[string]interface{}) ([]CourseRef, error) {
	v, ok := data["courses"]
	if !ok || v == nil {
		return nil, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, &DecodeError{Collection: database.CollectionColleges, ID: id, Field: "courses", Want: "array"}
	}

	refs := make([]CourseRef, 0, len(items))
	for _, item := range items {
		switch entry := item.(type) {
		case string:
			refs = append(refs, CourseRef{CourseID: entry})
		case map[string]interface{}:
			courseID, _ := entry["courseId"].(string)
			fee, _ := entry["fee"].(string)
			if courseID == "" {
				return nil, &DecodeError{Collection: database.CollectionColleges, ID: id, Field: "courses", Want: "courseId string"}
			}
			refs = append(refs, CourseRef{CourseID: courseID, Fee: fee})
		default:
			return nil, &DecodeError{Collection: database.CollectionColleges, ID: id, Field: "courses", Want: "array of course refs"}
		}
	}
	return refs, nil
}
