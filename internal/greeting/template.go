package greeting

import "fmt"

// Kind is the JSON type a declared body field must decode as.
type Kind int

const (
	Text Kind = iota
	Integer
)

// FieldSpec declares one body field a template reads. A nil Default means the
// field stays absent when the body does not set it.
type FieldSpec struct {
	Name    string
	Kind    Kind
	Default any
}

// Result is the output of a template's greeting computation.
type Result struct {
	Text    string
	Derived map[string]any
}

// Template parameterizes the request pipeline: which fields to extract, their
// defaults, how the greeting is rendered and what the response body echoes.
type Template struct {
	Name string
	// NameField is the field logged as the caller's name.
	NameField string
	Fields    []FieldSpec
	Render    func(Fields) Result
	Body      func(Fields, Result) any
}

// Defaults returns the fields a template resolves to when the body sets nothing.
func (t Template) Defaults() Fields {
	values := make(map[string]any, len(t.Fields))
	for _, s := range t.Fields {
		if s.Default != nil {
			values[s.Name] = s.Default
		}
	}
	return Fields{values: values}
}

type extendedBody struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       *int   `json:"age"`
	Adult     bool   `json:"adult"`
}

// Extended reads first_name, last_name and age, renders a full sentence and
// derives the adult flag.
func Extended() Template {
	return Template{
		Name:      "extended",
		NameField: "first_name",
		Fields: []FieldSpec{
			{Name: "first_name", Kind: Text, Default: "Guest"},
			{Name: "last_name", Kind: Text, Default: ""},
			{Name: "age", Kind: Integer},
		},
		Render: func(f Fields) Result {
			age, ok := f.Int("age")
			return Result{
				Text: fmt.Sprintf("Hello, %s %s! You are %d years old.",
					f.Text("first_name"), f.Text("last_name"), age),
				Derived: map[string]any{"adult": ok && age >= 18},
			}
		},
		Body: func(f Fields, r Result) any {
			b := extendedBody{
				FirstName: f.Text("first_name"),
				LastName:  f.Text("last_name"),
			}
			if age, ok := f.Int("age"); ok {
				b.Age = &age
			}
			b.Adult, _ = r.Derived["adult"].(bool)
			return b
		},
	}
}

type minimalBody struct {
	Message string `json:"message"`
}

// Minimal reads name and renders a short greeting.
func Minimal() Template {
	return Template{
		Name:      "minimal",
		NameField: "name",
		Fields: []FieldSpec{
			{Name: "name", Kind: Text, Default: "Guest"},
		},
		Render: func(f Fields) Result {
			return Result{Text: "Hello " + f.Text("name")}
		},
		Body: func(_ Fields, r Result) any {
			return minimalBody{Message: r.Text}
		},
	}
}
