package catalog

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-compass/catalog"
	"github.com/sahilchouksey/college-compass/database"
	"github.com/sahilchouksey/college-compass/utils/response"
)

// Handler serves the public catalog pages.
type Handler struct {
	service *catalog.Service
}

// NewHandler creates a new catalog handler
func NewHandler(service *catalog.Service) *Handler {
	return &Handler{service: service}
}

// csvParam splits a comma-separated query parameter into ids.
func csvParam(c *fiber.Ctx, name string) []string {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// ListColleges returns the filtered college list. All filter dimensions
// compose by AND; slug parameters come from navigational links, id CSVs
// from the filter sidebar.
func (h *Handler) ListColleges(c *fiber.Ctx) error {
	filter := catalog.Filter{
		Query:      c.Query("q"),
		StreamSlug: c.Query("stream"),
		CourseSlug: c.Query("course"),
		StreamIDs:  csvParam(c, "streams"),
		CourseIDs:  csvParam(c, "courses"),
		StateIDs:   csvParam(c, "states"),
		CityIDs:    csvParam(c, "cities"),
	}

	views, err := h.service.Colleges(filter)
	if err != nil {
		log.Println("Failed to list colleges:", err)
		return response.InternalServerError(c, "Failed to load colleges")
	}
	return response.Success(c, views)
}

// GetCollege returns the full detail payload for one college slug.
func (h *Handler) GetCollege(c *fiber.Ctx) error {
	detail, err := h.service.CollegeBySlug(c.Params("slug"))
	if err != nil {
		if err == database.ErrNotFound {
			return response.NotFound(c, "College not found")
		}
		log.Println("Failed to load college:", err)
		return response.InternalServerError(c, "Failed to load college")
	}
	return response.Success(c, detail)
}

// ListStates returns the state filter options.
func (h *Handler) ListStates(c *fiber.Ctx) error {
	states, err := h.service.States()
	if err != nil {
		log.Println("Failed to list states:", err)
		return response.InternalServerError(c, "Failed to load states")
	}
	return response.Success(c, states)
}

// ListCities returns the city filter options for the selected states
// (?states=). No selected state yields no options.
func (h *Handler) ListCities(c *fiber.Ctx) error {
	cities, err := h.service.CityOptions(csvParam(c, "states"))
	if err != nil {
		log.Println("Failed to list cities:", err)
		return response.InternalServerError(c, "Failed to load cities")
	}
	return response.Success(c, cities)
}
