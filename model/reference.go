package model

import "github.com/sahilchouksey/college-compass/database"

// State is a top-level location entity. Name uniqueness is conventional,
// not enforced by storage.
type State struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// City belongs to one State via StateID. The reference is not enforced;
// a deleted state leaves dangling ids behind.
type City struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	StateID string `json:"stateId"`
}

// Stream is a field of study (Engineering, Medical, ...).
type Stream struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Details  string `json:"details,omitempty"`
	Slug     string `json:"slug,omitempty"`
	NameSlug string `json:"nameSlug,omitempty"`
}

// Course belongs to one Stream via StreamID.
type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Details     string `json:"details,omitempty"`
	Eligibility string `json:"eligibility,omitempty"`
	StreamID    string `json:"streamId"`
	Slug        string `json:"slug,omitempty"`
	NameSlug    string `json:"nameSlug,omitempty"`
}

// Approval is a name-only reference entity (AICTE, UGC, ...).
type Approval struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Affiliation is a name-only reference entity.
type Affiliation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Recruiter carries a name and an uploaded logo URL.
type Recruiter struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// EntranceExam carries a name and an uploaded logo URL.
type EntranceExam struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

func DecodeState(doc database.Document) (State, error) {
	name, err := stringField(database.CollectionStates, doc.ID, doc.Data, "name")
	if err != nil {
		return State{}, err
	}
	return State{ID: doc.ID, Name: name}, nil
}

func DecodeCity(doc database.Document) (City, error) {
	c := City{ID: doc.ID}
	var err error
	if c.Name, err = stringField(database.CollectionCities, doc.ID, doc.Data, "name"); err != nil {
		return City{}, err
	}
	if c.StateID, err = stringField(database.CollectionCities, doc.ID, doc.Data, "stateId"); err != nil {
		return City{}, err
	}
	return c, nil
}

func DecodeStream(doc database.Document) (Stream, error) {
	s := Stream{ID: doc.ID}
	fields := []struct {
		key string
		dst *string
	}{
		{"name", &s.Name},
		{"icon", &s.Icon},
		{"details", &s.Details},
		{"slug", &s.Slug},
		{"nameSlug", &s.NameSlug},
	}
	for _, f := range fields {
		v, err := stringField(database.CollectionStreams, doc.ID, doc.Data, f.key)
		if err != nil {
			return Stream{}, err
		}
		*f.dst = v
	}
	return s, nil
}

func DecodeCourse(doc database.Document) (Course, error) {
	c := Course{ID: doc.ID}
	fields := []struct {
		key string
		dst *string
	}{
		{"name", &c.Name},
		{"icon", &c.Icon},
		{"details", &c.Details},
		{"eligibility", &c.Eligibility},
		{"streamId", &c.StreamID},
		{"slug", &c.Slug},
		{"nameSlug", &c.NameSlug},
	}
	for _, f := range fields {
		v, err := stringField(database.CollectionCourses, doc.ID, doc.Data, f.key)
		if err != nil {
			return Course{}, err
		}
		*f.dst = v
	}
	return c, nil
}

func DecodeApproval(doc database.Document) (Approval, error) {
	name, err := stringField(database.CollectionApprovals, doc.ID, doc.Data, "name")
	if err != nil {
		return Approval{}, err
	}
	return Approval{ID: doc.ID, Name: name}, nil
}

func DecodeAffiliation(doc database.Document) (Affiliation, error) {
	name, err := stringField(database.CollectionAffiliations, doc.ID, doc.Data, "name")
	if err != nil {
		return Affiliation{}, err
	}
	return Affiliation{ID: doc.ID, Name: name}, nil
}

func DecodeRecruiter(doc database.Document) (Recruiter, error) {
	r := Recruiter{ID: doc.ID}
	var err error
	if r.Name, err = stringField(database.CollectionRecruiters, doc.ID, doc.Data, "name"); err != nil {
		return Recruiter{}, err
	}
	if r.Logo, err = stringField(database.CollectionRecruiters, doc.ID, doc.Data, "logo"); err != nil {
		return Recruiter{}, err
	}
	return r, nil
}

func DecodeEntranceExam(doc database.Document) (EntranceExam, error) {
	e := EntranceExam{ID: doc.ID}
	var err error
	if e.Name, err = stringField(database.CollectionEntranceExams, doc.ID, doc.Data, "name"); err != nil {
		return EntranceExam{}, err
	}
	if e.Logo, err = stringField(database.CollectionEntranceExams, doc.ID, doc.Data, "logo"); err != nil {
		return EntranceExam{}, err
	}
	return e, nil
}
