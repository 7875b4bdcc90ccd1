package admin

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-compass/database"
	"github.com/sahilchouksey/college-compass/resource"
	"github.com/sahilchouksey/college-compass/services/storage"
	"github.com/sahilchouksey/college-compass/utils/response"
)

// Schemas declares every schema-driven admin resource. Adding a
// reference collection to the console means adding an entry here; no
// new handler code.
func Schemas() []resource.Schema {
	return []resource.Schema{
		{
			Collection: database.CollectionStates,
			Title:      "States",
			Fields: []resource.Field{
				{Name: "name", Label: "Name", Kind: resource.KindText},
			},
		},
		{
			Collection: database.CollectionCities,
			Title:      "Cities",
			Fields: []resource.Field{
				{Name: "name", Label: "Name", Kind: resource.KindText},
				{Name: "stateId", Label: "State", Kind: resource.KindSelect, Source: database.CollectionStates},
			},
		},
		{
			Collection: database.CollectionStreams,
			Title:      "Streams",
			Fields: []resource.Field{
				{Name: "name", Label: "Name", Kind: resource.KindText},
				{Name: "slug", Label: "Slug", Kind: resource.KindText},
				{Name: "icon", Label: "Icon", Kind: resource.KindFile, StoragePath: "streams"},
				{Name: "details", Label: "Details", Kind: resource.KindTextarea},
			},
		},
		{
			Collection: database.CollectionCourses,
			Title:      "Courses",
			Fields: []resource.Field{
				{Name: "name", Label: "Name", Kind: resource.KindText},
				{Name: "slug", Label: "Slug", Kind: resource.KindText},
				{Name: "streamId", Label: "Stream", Kind: resource.KindSelect, Source: database.CollectionStreams},
				{Name: "icon", Label: "Icon", Kind: resource.KindFile, StoragePath: "courses"},
				{Name: "details", Label: "Details", Kind: resource.KindTextarea},
				{Name: "eligibility", Label: "Eligibility", Kind: resource.KindTextarea},
			},
		},
		{
			Collection: database.CollectionApprovals,
			Title:      "Approvals",
			Fields: []resource.Field{
				{Name: "name", Label: "Name", Kind: resource.KindText},
			},
		},
		{
			Collection: database.CollectionAffiliations,
			Title:      "Affiliations",
			Fields: []resource.Field{
				{Name: "name", Label: "Name", Kind: resource.KindText},
			},
		},
		{
			Collection: database.CollectionRecruiters,
			Title:      "Recruiters",
			Fields: []resource.Field{
				{Name: "name", Label: "Name", Kind: resource.KindText},
				{Name: "logo", Label: "Logo", Kind: resource.KindFile, StoragePath: "recruiters"},
			},
		},
		{
			Collection: database.CollectionEntranceExams,
			Title:      "Entrance Exams",
			Fields: []resource.Field{
				{Name: "name", Label: "Name", Kind: resource.KindText},
				{Name: "logo", Label: "Logo", Kind: resource.KindFile, StoragePath: "entrance-exams"},
			},
		},
	}
}

// ResourceHandler serves every schema-driven resource through one set of
// generic endpoints, keyed by the :resource path parameter.
type ResourceHandler struct {
	editors map[string]*resource.Editor
	schemas []resource.Schema
	spaces  *storage.SpacesClient
}

// NewResourceHandler creates a new resource handler. The Spaces client
// is optional; without it file uploads are rejected.
func NewResourceHandler(store database.Storage, spaces *storage.SpacesClient) *ResourceHandler {
	schemas := Schemas()
	editors := make(map[string]*resource.Editor, len(schemas))
	for _, s := range schemas {
		editors[s.Collection] = resource.NewEditor(store, s)
	}
	return &ResourceHandler{
		editors: editors,
		schemas: schemas,
		spaces:  spaces,
	}
}

func (h *ResourceHandler) editor(c *fiber.Ctx) (*resource.Editor, error) {
	e, ok := h.editors[c.Params("resource")]
	if !ok {
		return nil, response.NotFound(c, "Unknown resource")
	}
	return e, nil
}

// ListSchemas returns every resource schema for the console navigation.
func (h *ResourceHandler) ListSchemas(c *fiber.Ctx) error {
	return response.Success(c, h.schemas)
}

// List returns every record of a resource with select cells resolved to
// labels.
func (h *ResourceHandler) List(c *fiber.Ctx) error {
	e, err := h.editor(c)
	if err != nil {
		return err
	}

	rows, err := e.List()
	if err != nil {
		log.Println("Failed to list resource:", err)
		return response.InternalServerError(c, "Failed to load records")
	}
	return response.Success(c, fiber.Map{
		"schema": e.Schema(),
		"rows":   rows,
	})
}

// Options returns the option list for a select field given the current
// form values, passed as query parameters.
func (h *ResourceHandler) Options(c *fiber.Ctx) error {
	e, err := h.editor(c)
	if err != nil {
		return err
	}

	fieldName := c.Query("field")
	if fieldName == "" {
		return response.BadRequest(c, "field query parameter is required")
	}

	form := map[string]string{}
	for _, f := range e.Schema().Fields {
		form[f.Name] = c.Query(f.Name)
	}

	options, err := e.Options(fieldName, form)
	if err != nil {
		log.Println("Failed to load options:", err)
		return response.BadRequest(c, "Failed to load options")
	}
	return response.Success(c, options)
}

// SaveRequest carries one create or update submission.
type SaveRequest struct {
	ID     string            `json:"id"`
	Values map[string]string `json:"values"`
}

// Save creates a record when no id is submitted, otherwise overwrites
// the schema's fields on the existing record.
func (h *ResourceHandler) Save(c *fiber.Ctx) error {
	e, err := h.editor(c)
	if err != nil {
		return err
	}

	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	id, err := e.Save(req.ID, req.Values)
	if err != nil {
		log.Println("Failed to save resource:", err)
		return response.InternalServerError(c, "Failed to save record")
	}

	if req.ID == "" {
		return response.Created(c, fiber.Map{"id": id})
	}
	return response.SuccessWithMessage(c, "Record updated", fiber.Map{"id": id})
}

// Delete removes a record. Deleting an already-removed record succeeds.
func (h *ResourceHandler) Delete(c *fiber.Ctx) error {
	e, err := h.editor(c)
	if err != nil {
		return err
	}

	if err := e.Delete(c.Params("id")); err != nil {
		log.Println("Failed to delete resource:", err)
		return response.InternalServerError(c, "Failed to delete record")
	}
	return response.SuccessWithMessage(c, "Record deleted", nil)
}

// Upload stores a file field's media in object storage and returns the
// public URL to submit as the field value.
func (h *ResourceHandler) Upload(c *fiber.Ctx) error {
	e, err := h.editor(c)
	if err != nil {
		return err
	}

	if h.spaces == nil {
		return response.InternalServerError(c, "File storage is not configured")
	}

	fieldName := c.Query("field")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "file is required")
	}

	key, err := e.UploadKey(fieldName, fileHeader.Filename, time.Now())
	if err != nil {
		return response.BadRequest(c, "Unknown file field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	defer file.Close()

	url, err := h.spaces.UploadFile(c.Context(), key, file, storage.ContentType(fileHeader.Filename))
	if err != nil {
		log.Println("Failed to upload file:", err)
		return response.InternalServerError(c, "Failed to upload file")
	}

	return response.Success(c, fiber.Map{"url": url, "key": key})
}
