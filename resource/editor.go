package resource

import (
	"fmt"
	"time"

	"github.com/sahilchouksey/college-compass/database"
	"github.com/sahilchouksey/college-compass/utils/validation"
)

// Editor implements the create/edit/list contract for one collection
// from its declarative schema, with no resource-specific code.
type Editor struct {
	store  database.Storage
	schema Schema
}

// NewEditor creates an editor bound to a store and a schema.
func NewEditor(store database.Storage, schema Schema) *Editor {
	return &Editor{
		store:  store,
		schema: schema,
	}
}

// Schema returns the editor's schema.
func (e *Editor) Schema() Schema {
	return e.schema
}

// Option is one entry of a select field's option list.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Row is one listed record: the raw field values (form-shaped, missing
// fields defaulted to "") plus a display map where select ids are
// resolved to labels. Unresolved ids display as the raw id.
type Row struct {
	ID      string            `json:"id"`
	Values  map[string]string `json:"values"`
	Display map[string]string `json:"display"`
}

// List loads the full collection ordered by the schema's order field and
// resolves select cells against each select field's option collection.
// A failed option load leaves that field resolving to raw ids; it does
// not fail the listing.
func (e *Editor) List() ([]Row, error) {
	docs, err := e.store.List(e.schema.Collection, e.schema.orderBy())
	if err != nil {
		return nil, err
	}

	// Load each select field's source collection once.
	labels := map[string]map[string]string{}
	for _, f := range e.schema.selectFields() {
		optionDocs, err := e.store.List(f.Source, "")
		if err != nil {
			continue
		}
		byID := make(map[string]string, len(optionDocs))
		for _, doc := range optionDocs {
			if label, ok := doc.Data[f.labelKey()].(string); ok {
				byID[doc.ID] = label
			}
		}
		labels[f.Name] = byID
	}

	rows := make([]Row, 0, len(docs))
	for _, doc := range docs {
		row := Row{
			ID:      doc.ID,
			Values:  e.FormFrom(doc.Data),
			Display: map[string]string{},
		}
		for _, f := range e.schema.Fields {
			v := row.Values[f.Name]
			if f.Kind == KindSelect {
				if label, ok := labels[f.Name][v]; ok {
					row.Display[f.Name] = label
					continue
				}
			}
			row.Display[f.Name] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Options returns the option list for a select field given the current
// form values. With a dependency rule, only option documents whose match
// field equals the dependent field's value are offered; an empty
// dependent value offers nothing.
func (e *Editor) Options(fieldName string, form map[string]string) ([]Option, error) {
	f, ok := e.schema.Field(fieldName)
	if !ok || f.Kind != KindSelect {
		return nil, fmt.Errorf("no select field %q in %s", fieldName, e.schema.Collection)
	}

	docs, err := e.store.List(f.Source, "")
	if err != nil {
		return nil, err
	}

	options := []Option{}
	for _, doc := range docs {
		if f.Dependency != nil {
			want := form[f.Dependency.DependentOnField]
			if want == "" {
				return []Option{}, nil
			}
			got, _ := doc.Data[f.Dependency.MatchOnOptionField].(string)
			if got != want {
				continue
			}
		}
		label, _ := doc.Data[f.labelKey()].(string)
		if label == "" {
			label = doc.ID
		}
		options = append(options, Option{ID: doc.ID, Label: label})
	}
	return options, nil
}

// FormFrom copies the schema's fields out of a document into form state,
// defaulting missing values to the empty string.
func (e *Editor) FormFrom(data map[string]interface{}) map[string]string {
	form := make(map[string]string, len(e.schema.Fields))
	for _, f := range e.schema.Fields {
		v, ok := data[f.Name]
		if !ok || v == nil {
			form[f.Name] = ""
			continue
		}
		if s, ok := v.(string); ok {
			form[f.Name] = s
		} else {
			form[f.Name] = fmt.Sprint(v)
		}
	}
	return form
}

// Save appends a new document when id is empty, otherwise overwrites
// exactly the schema's fields on the existing document. Extra keys in
// the submitted form are dropped, and unlisted stored fields survive an
// update untouched.
func (e *Editor) Save(id string, form map[string]string) (string, error) {
	payload := make(map[string]interface{}, len(e.schema.Fields))
	for _, f := range e.schema.Fields {
		v := form[f.Name]
		if f.Kind == KindYear {
			v = validation.SanitizeYear(v)
		}
		payload[f.Name] = v
	}

	if id == "" {
		return e.store.Add(e.schema.Collection, payload)
	}
	return id, e.store.Update(e.schema.Collection, id, payload)
}

// Delete removes a record immediately. Deleting an absent record is not
// an error.
func (e *Editor) Delete(id string) error {
	return e.store.Delete(e.schema.Collection, id)
}

// UploadKey builds the object storage key for a file field:
// {storagePath}/{epoch-millis}-{filename}.
func (e *Editor) UploadKey(fieldName, filename string, now time.Time) (string, error) {
	f, ok := e.schema.Field(fieldName)
	if !ok || f.Kind != KindFile {
		return "", fmt.Errorf("no file field %q in %s", fieldName, e.schema.Collection)
	}
	return fmt.Sprintf("%s/%d-%s", f.StoragePath, now.UnixMilli(), filename), nil
}
