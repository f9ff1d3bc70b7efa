package posts_http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PostForm backs both the create and the edit page. Group is optional, an
// empty select value means "no group".
type PostForm struct {
	Text    string `validate:"required"`
	GroupID *int64 `validate:"-"`
	Errors  map[string]string
}

func parsePostForm(r *http.Request) *PostForm {
	form := &PostForm{
		Text:   strings.TrimSpace(r.FormValue("text")),
		Errors: make(map[string]string),
	}

	if raw := strings.TrimSpace(r.FormValue("group")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			form.Errors["Group"] = "Select a valid group."
		} else {
			form.GroupID = &id
		}
	}

	return form
}

// Validate fills Errors with per-field messages and reports whether the
// submission can be persisted.
func (f *PostForm) Validate(validate *validator.Validate) bool {
	if err := validate.Struct(f); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldError := range validationErrors {
				if fieldError.Field() == "Text" {
					f.Errors["Text"] = "This field is required."
				}
			}
		} else {
			f.Errors["Text"] = "Invalid submission."
		}
	}
	return len(f.Errors) == 0
}
