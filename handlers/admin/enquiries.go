package admin

import (
	"log"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-compass/database"
	"github.com/sahilchouksey/college-compass/model"
	"github.com/sahilchouksey/college-compass/utils/response"
	"github.com/sahilchouksey/college-compass/utils/validation"
)

// EnquiryHandler serves the admin enquiry inbox.
type EnquiryHandler struct {
	store database.Storage
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(store database.Storage) *EnquiryHandler {
	return &EnquiryHandler{store: store}
}

// List returns enquiries newest first, optionally narrowed by a phone
// digit search (?phone=) and a college filter (?college=).
func (h *EnquiryHandler) List(c *fiber.Ctx) error {
	docs, err := h.store.List(database.CollectionEnquiries, "createdAt")
	if err != nil {
		log.Println("Failed to list enquiries:", err)
		return response.InternalServerError(c, "Failed to load enquiries")
	}

	phoneQuery := validation.StripNonDigits(c.Query("phone"))
	collegeID := strings.TrimSpace(c.Query("college"))

	enquiries := make([]model.Enquiry, 0, len(docs))
	for _, doc := range docs {
		enquiry, err := model.DecodeEnquiry(doc)
		if err != nil {
			log.Println("Skipping undecodable enquiry:", err)
			continue
		}
		if phoneQuery != "" && !strings.Contains(validation.StripNonDigits(enquiry.Phone), phoneQuery) {
			continue
		}
		if collegeID != "" && enquiry.CollegeID != collegeID {
			continue
		}
		enquiries = append(enquiries, enquiry)
	}

	sort.SliceStable(enquiries, func(i, j int) bool {
		return enquiries[i].CreatedAt > enquiries[j].CreatedAt
	})

	return response.Success(c, enquiries)
}

// Delete removes an enquiry from the inbox. Deletion is the only
// mutation enquiries support.
func (h *EnquiryHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.Delete(database.CollectionEnquiries, c.Params("id")); err != nil {
		log.Println("Failed to delete enquiry:", err)
		return response.InternalServerError(c, "Failed to delete enquiry")
	}
	return response.SuccessWithMessage(c, "Enquiry deleted", nil)
}
