package profile

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/verbolabs/verbo"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report field names by their "toml" tag so errors match what the user
	// wrote in the profile file.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate checks the profile's fields. Struct tags cover value ranges and
// enumerations; the [logging.levels.*] map keys are checked against the
// severity names separately, since tags cannot reach map keys.
func (p *Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		var ferrs validator.ValidationErrors
		if !errors.As(err, &ferrs) {
			return err
		}
		msgs := make([]string, len(ferrs))
		for i, fe := range ferrs {
			msgs[i] = fmt.Sprintf("%s: %s", fieldPath(fe), describe(fe))
		}
		return fmt.Errorf("invalid profile: %s", strings.Join(msgs, "; "))
	}

	for name := range p.Logging.Levels {
		if _, err := verbo.ParseSeverity(name); err != nil {
			return fmt.Errorf("invalid profile: logging.levels: %w", err)
		}
	}
	return nil
}

func fieldPath(fe validator.FieldError) string {
	return strings.TrimPrefix(fe.Namespace(), "Profile.")
}

// describe returns a human-readable message for a validation error.
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be >= %s", fe.Param())
	default:
		return fmt.Sprintf("validation failed: %s", fe.Tag())
	}
}
