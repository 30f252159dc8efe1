package domain

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// the "binding" tag is shared with gin so request payloads and merged records
// are checked by the same rules
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks v against its binding tags.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
