package admin

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-compass/catalog"
	"github.com/sahilchouksey/college-compass/database"
	"github.com/sahilchouksey/college-compass/model"
	"github.com/sahilchouksey/college-compass/utils/response"
	"github.com/sahilchouksey/college-compass/utils/validation"
)

// CollegeHandler is the bespoke editor for the college collection. The
// compound relation fields (streams, courses with fees, recruiters,
// exams) do not fit the generic schema editor.
type CollegeHandler struct {
	store database.Storage
}

// NewCollegeHandler creates a new college handler
func NewCollegeHandler(store database.Storage) *CollegeHandler {
	return &CollegeHandler{store: store}
}

// List returns every college decoded for the admin table. Undecodable
// documents are skipped with a log line.
func (h *CollegeHandler) List(c *fiber.Ctx) error {
	docs, err := h.store.List(database.CollectionColleges, "name")
	if err != nil {
		log.Println("Failed to list colleges:", err)
		return response.InternalServerError(c, "Failed to load colleges")
	}

	colleges := make([]model.College, 0, len(docs))
	for _, doc := range docs {
		college, err := model.DecodeCollege(doc)
		if err != nil {
			log.Println("Skipping undecodable college:", err)
			continue
		}
		colleges = append(colleges, college)
	}
	return response.Success(c, colleges)
}

// Get returns one college for editing.
func (h *CollegeHandler) Get(c *fiber.Ctx) error {
	doc, err := h.store.Get(database.CollectionColleges, c.Params("id"))
	if err != nil {
		if err == database.ErrNotFound {
			return response.NotFound(c, "College not found")
		}
		log.Println("Failed to load college:", err)
		return response.InternalServerError(c, "Failed to load college")
	}

	college, err := model.DecodeCollege(*doc)
	if err != nil {
		log.Println("Failed to decode college:", err)
		return response.InternalServerError(c, "Failed to decode college")
	}
	return response.Success(c, college)
}

// CourseOptions returns the courses belonging to the selected streams,
// for the dependent course picker. No selected stream offers no courses.
func (h *CollegeHandler) CourseOptions(c *fiber.Ctx) error {
	streamsParam := strings.TrimSpace(c.Query("streams"))
	if streamsParam == "" {
		return response.Success(c, []model.Course{})
	}

	selected := map[string]bool{}
	for _, id := range strings.Split(streamsParam, ",") {
		if id = strings.TrimSpace(id); id != "" {
			selected[id] = true
		}
	}

	docs, err := h.store.List(database.CollectionCourses, "name")
	if err != nil {
		log.Println("Failed to list courses:", err)
		return response.InternalServerError(c, "Failed to load courses")
	}

	courses := []model.Course{}
	for _, doc := range docs {
		course, err := model.DecodeCourse(doc)
		if err != nil {
			log.Println("Skipping undecodable course:", err)
			continue
		}
		if selected[course.StreamID] {
			courses = append(courses, course)
		}
	}
	return response.Success(c, courses)
}

// CourseRefRequest is one course selection with its fee as typed.
type CourseRefRequest struct {
	CourseID string `json:"courseId"`
	Fee      string `json:"fee"`
}

// CollegeRequest carries one college create or update submission.
type CollegeRequest struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Slug              string             `json:"slug"`
	About             string             `json:"about"`
	EstablishmentYear string             `json:"establishmentYear"`
	StateID           string             `json:"stateId"`
	CityID            string             `json:"cityId"`
	ApprovalID        string             `json:"approvalId"`
	AffiliationID     string             `json:"affiliationId"`
	Streams           []string           `json:"streams"`
	Courses           []CourseRefRequest `json:"courses"`
	Recruiters        []string           `json:"recruiters"`
	EntranceExams     []string           `json:"entranceExams"`
	Featured          bool               `json:"featured"`
}

// Save creates or updates a college. Slugs are derived from the name
// only on create; later renames keep the published URL stable. Fees are
// sanitized to digits with at most one decimal point.
func (h *CollegeHandler) Save(c *fiber.Ctx) error {
	var req CollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Name) == "" {
		return response.BadRequest(c, "Name is required")
	}

	courses := make([]interface{}, 0, len(req.Courses))
	for _, ref := range req.Courses {
		if ref.CourseID == "" {
			continue
		}
		courses = append(courses, map[string]interface{}{
			"courseId": ref.CourseID,
			"fee":      validation.SanitizeFee(ref.Fee),
		})
	}

	var year int64
	if y := validation.SanitizeYear(req.EstablishmentYear); y != "" {
		year, _ = strconv.ParseInt(y, 10, 64)
	}

	now := time.Now().UnixMilli()
	payload := map[string]interface{}{
		"name":              validation.SanitizeString(req.Name),
		"about":             req.About,
		"establishmentYear": year,
		"stateId":           req.StateID,
		"cityId":            req.CityID,
		"approvalId":        req.ApprovalID,
		"affiliationId":     req.AffiliationID,
		"streams":           toInterfaceSlice(req.Streams),
		"courses":           courses,
		"recruiters":        toInterfaceSlice(req.Recruiters),
		"entranceExams":     toInterfaceSlice(req.EntranceExams),
		"featured":          req.Featured,
		"updatedAt":         now,
	}

	if req.ID == "" {
		slug := strings.TrimSpace(req.Slug)
		if slug == "" {
			slug = catalog.Slugify(req.Name)
		}
		payload["slug"] = slug
		payload["nameSlug"] = catalog.Slugify(req.Name)
		payload["createdAt"] = now

		id, err := h.store.Add(database.CollectionColleges, payload)
		if err != nil {
			log.Println("Failed to create college:", err)
			return response.InternalServerError(c, "Failed to create college")
		}
		return response.Created(c, fiber.Map{"id": id, "slug": slug})
	}

	// An explicit slug submitted on update still wins; an empty one
	// leaves the stored slug untouched.
	if slug := strings.TrimSpace(req.Slug); slug != "" {
		payload["slug"] = slug
	}

	if err := h.store.Update(database.CollectionColleges, req.ID, payload); err != nil {
		log.Println("Failed to update college:", err)
		return response.InternalServerError(c, "Failed to update college")
	}
	return response.SuccessWithMessage(c, "College updated", fiber.Map{"id": req.ID})
}

// Delete removes a college. Documents referencing it elsewhere are left
// untouched; the hourly audit reports the resulting dangling ids.
func (h *CollegeHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.Delete(database.CollectionColleges, c.Params("id")); err != nil {
		log.Println("Failed to delete college:", err)
		return response.InternalServerError(c, "Failed to delete college")
	}
	return response.SuccessWithMessage(c, "College deleted", nil)
}

func toInterfaceSlice(ids []string) []interface{} {
	out := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
