package validator

import (
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	optsGenValidator "github.com/kazhuravlev/options-gen/pkg/validator"
)

var Validator = validator.New()

func init() {
	if err := Validator.RegisterValidation("urlpath", isURLPath); err != nil {
		panic(err)
	}
	optsGenValidator.Set(Validator)
}

// isURLPath accepts absolute, already cleaned request paths like "/your-backend-endpoint".
func isURLPath(fl validator.FieldLevel) bool {
	p := fl.Field().String()
	return strings.HasPrefix(p, "/") && path.Clean(p) == p && !strings.ContainsAny(p, " ?#")
}
