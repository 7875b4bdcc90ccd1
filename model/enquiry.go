package model

import "github.com/sahilchouksey/college-compass/database"

// Enquiry statuses. An enquiry is created once with StatusPending and
// never mutated afterwards; the inbox only deletes.
const (
	EnquiryStatusPending = "pending"
)

// Enquiry is a lead captured for a college. CollegeName is a
// point-in-time copy; later renames of the college are not reflected.
type Enquiry struct {
	ID          string `json:"id"`
	CollegeID   string `json:"collegeId"`
	CollegeName string `json:"collegeName"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
	Status      string `json:"status"`
}

func DecodeEnquiry(doc database.Document) (Enquiry, error) {
	col := database.CollectionEnquiries
	e := Enquiry{ID: doc.ID}

	strFields := []struct {
		key string
		dst *string
	}{
		{"collegeId", &e.CollegeID},
		{"collegeName", &e.CollegeName},
		{"name", &e.Name},
		{"email", &e.Email},
		{"phone", &e.Phone},
		{"message", &e.Message},
		{"status", &e.Status},
	}
	for _, f := range strFields {
		v, err := stringField(col, doc.ID, doc.Data, f.key)
		if err != nil {
			return Enquiry{}, err
		}
		*f.dst = v
	}

	var err error
	if e.CreatedAt, err = intField(col, doc.ID, doc.Data, "createdAt"); err != nil {
		return Enquiry{}, err
	}
	return e, nil
}
