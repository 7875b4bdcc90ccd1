package resource

// FieldKind is the closed set of field types the generic editor can
// render. Behavior is resolved by switching on the kind, one branch per
// variant.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindSelect   FieldKind = "select"
	KindFile     FieldKind = "file"
	KindYear     FieldKind = "year"
)

// Dependency restricts a select field's options to the option documents
// whose MatchOnOptionField equals the current form value of
// DependentOnField. An empty dependent value yields no options.
type Dependency struct {
	DependentOnField   string `json:"dependentOnField"`
	MatchOnOptionField string `json:"matchOnOptionField"`
}

// Field describes one form field / table column of a resource.
type Field struct {
	Name        string      `json:"name"`
	Label       string      `json:"label"`
	Kind        FieldKind   `json:"kind"`
	Source      string      `json:"source,omitempty"`      // select: collection that supplies options
	LabelKey    string      `json:"labelKey,omitempty"`    // select: option display key, default "name"
	Dependency  *Dependency `json:"dependency,omitempty"`  // select: optional option filter
	StoragePath string      `json:"storagePath,omitempty"` // file: object storage prefix
}

// labelKey returns the configured option label key, defaulting to "name".
func (f Field) labelKey() string {
	if f.LabelKey == "" {
		return "name"
	}
	return f.LabelKey
}

// Schema declares a complete single-collection resource editor: which
// collection it edits, how the listing is ordered and the ordered field
// list driving both the form and the table.
type Schema struct {
	Collection string  `json:"collection"`
	Title      string  `json:"title"`
	OrderBy    string  `json:"orderBy,omitempty"` // default "name"
	Fields     []Field `json:"fields"`
}

// Field looks a field up by name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (s Schema) orderBy() string {
	if s.OrderBy == "" {
		return "name"
	}
	return s.OrderBy
}

// selectFields returns the fields that need an option collection loaded.
func (s Schema) selectFields() []Field {
	var out []Field
	for _, f := range s.Fields {
		if f.Kind == KindSelect {
			out = append(out, f)
		}
	}
	return out
}
