package enquiry

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-compass/database"
	"github.com/sahilchouksey/college-compass/model"
	"github.com/sahilchouksey/college-compass/utils/response"
	"github.com/sahilchouksey/college-compass/utils/validation"
)

// Handler captures visitor enquiries from the public site.
type Handler struct {
	store database.Storage
}

// NewHandler creates a new enquiry handler
func NewHandler(store database.Storage) *Handler {
	return &Handler{store: store}
}

// CreateRequest is one enquiry form submission.
type CreateRequest struct {
	CollegeID string `json:"collegeId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

// Create validates and stores an enquiry. The rules run in order and the
// first failure is returned alone, matching the form's one-message-at-a-
// time behavior. The college name is denormalized at capture time so the
// inbox stays readable even if the college is later deleted.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if msg := validation.ValidateEnquiry(req.Name, req.Email, req.Phone); msg != "" {
		return response.BadRequest(c, msg)
	}

	collegeName := ""
	if req.CollegeID != "" {
		if doc, err := h.store.Get(database.CollectionColleges, req.CollegeID); err == nil {
			collegeName, _ = doc.Data["name"].(string)
		}
	}

	data := map[string]interface{}{
		"collegeId":   req.CollegeID,
		"collegeName": collegeName,
		"name":        validation.SanitizeString(req.Name),
		"email":       validation.SanitizeString(req.Email),
		"phone":       validation.StripNonDigits(req.Phone),
		"message":     validation.SanitizeString(req.Message),
		"status":      model.EnquiryStatusPending,
		"createdAt":   time.Now().UnixMilli(),
	}

	id, err := h.store.Add(database.CollectionEnquiries, data)
	if err != nil {
		log.Println("Failed to save enquiry:", err)
		return response.InternalServerError(c, "Failed to save enquiry")
	}

	return response.Created(c, fiber.Map{"id": id})
}
