package catalog

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-compass/database"
	"github.com/sahilchouksey/college-compass/utils/response"
)

// ListStreams returns every stream for the streams index page.
func (h *Handler) ListStreams(c *fiber.Ctx) error {
	streams, err := h.service.Streams()
	if err != nil {
		log.Println("Failed to list streams:", err)
		return response.InternalServerError(c, "Failed to load streams")
	}
	return response.Success(c, streams)
}

// GetStream returns one stream with its courses and member colleges.
func (h *Handler) GetStream(c *fiber.Ctx) error {
	detail, err := h.service.StreamBySlug(c.Params("slug"))
	if err != nil {
		if err == database.ErrNotFound {
			return response.NotFound(c, "Stream not found")
		}
		log.Println("Failed to load stream:", err)
		return response.InternalServerError(c, "Failed to load stream")
	}
	return response.Success(c, detail)
}

// ListCourses returns every course for the courses index page.
func (h *Handler) ListCourses(c *fiber.Ctx) error {
	courses, err := h.service.Courses()
	if err != nil {
		log.Println("Failed to list courses:", err)
		return response.InternalServerError(c, "Failed to load courses")
	}
	return response.Success(c, courses)
}

// GetCourse returns one course with the colleges offering it.
func (h *Handler) GetCourse(c *fiber.Ctx) error {
	detail, err := h.service.CourseBySlug(c.Params("slug"))
	if err != nil {
		if err == database.ErrNotFound {
			return response.NotFound(c, "Course not found")
		}
		log.Println("Failed to load course:", err)
		return response.InternalServerError(c, "Failed to load course")
	}
	return response.Success(c, detail)
}

// Home returns the homepage payload: featured colleges, streams and
// catalog counts.
func (h *Handler) Home(c *fiber.Ctx) error {
	payload, err := h.service.Home()
	if err != nil {
		log.Println("Failed to build home payload:", err)
		return response.InternalServerError(c, "Failed to load homepage")
	}
	return response.Success(c, payload)
}
