package greeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestExtract_DefaultsWhenUndecodable(t *testing.T) {
	bodies := map[string]*string{
		"absent":          nil,
		"empty":           strPtr(""),
		"malformed":       strPtr(`{"first_name":`),
		"array":           strPtr(`["Ann"]`),
		"null":            strPtr(`null`),
		"string":          strPtr(`"Ann"`),
		"wrong name type": strPtr(`{"first_name":42,"age":20}`),
		"wrong age type":  strPtr(`{"first_name":"Ann","age":"20"}`),
		"fractional age":  strPtr(`{"first_name":"Ann","age":20.5}`),
	}
	tmpl := Extended()
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			got, ok := tmpl.Extract(body)
			assert.False(t, ok)
			assert.Equal(t, tmpl.Defaults(), got)
			assert.Equal(t, "Guest", got.Text("first_name"))
			assert.Equal(t, "", got.Text("last_name"))
			assert.False(t, got.Has("age"))
		})
	}
}

func TestExtract_FieldsOverrideIndependently(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		first  string
		last   string
		age    int
		hasAge bool
	}{
		{"all set", `{"first_name":"Ann","last_name":"Lee","age":20}`, "Ann", "Lee", 20, true},
		{"first only", `{"first_name":"Ann"}`, "Ann", "", 0, false},
		{"last only", `{"last_name":"Lee"}`, "Guest", "Lee", 0, false},
		{"age only", `{"age":7}`, "Guest", "", 7, true},
		{"empty object", `{}`, "Guest", "", 0, false},
		{"null fields keep defaults", `{"first_name":null,"age":null}`, "Guest", "", 0, false},
		{"unknown keys ignored", `{"nickname":"A","last_name":"Lee"}`, "Guest", "Lee", 0, false},
		{"explicit empty first name", `{"first_name":""}`, "", "", 0, false},
		{"negative age", `{"age":-3}`, "Guest", "", -3, true},
	}
	tmpl := Extended()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tmpl.Extract(strPtr(tt.body))
			assert.True(t, ok)
			assert.Equal(t, tt.first, got.Text("first_name"))
			assert.Equal(t, tt.last, got.Text("last_name"))
			age, hasAge := got.Int("age")
			assert.Equal(t, tt.hasAge, hasAge)
			assert.Equal(t, tt.age, age)
		})
	}
}

func TestExtract_Minimal(t *testing.T) {
	tmpl := Minimal()

	got, ok := tmpl.Extract(strPtr(`{"name":"Sam","first_name":"ignored"}`))
	assert.True(t, ok)
	assert.Equal(t, "Sam", got.Text("name"))
	assert.False(t, got.Has("first_name"))

	got, ok = tmpl.Extract(strPtr(`not json`))
	assert.False(t, ok)
	assert.Equal(t, "Guest", got.Text("name"))
}

func TestExtract_DoesNotShareDefaults(t *testing.T) {
	tmpl := Minimal()
	first, _ := tmpl.Extract(strPtr(`{"name":"Sam"}`))
	second, _ := tmpl.Extract(nil)
	assert.Equal(t, "Sam", first.Text("name"))
	assert.Equal(t, "Guest", second.Text("name"))
}
