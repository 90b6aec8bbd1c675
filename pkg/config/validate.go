package config

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"

	"github.com/veilar-ui/veilar/pkg/controls"
	"github.com/veilar-ui/veilar/pkg/graphics"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	controlNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

// sheetTags are the custom validator tags used by the sheet structs.
var sheetTags = map[string]validator.Func{
	"sheet_version": func(fl validator.FieldLevel) bool {
		return supportedVersion(fl.Field().String())
	},
	"control_name": func(fl validator.FieldLevel) bool {
		return controlNamePattern.MatchString(fl.Field().String())
	},
	"control_kind": func(fl validator.FieldLevel) bool {
		_, err := controls.ParseKind(fl.Field().String())
		return err == nil
	},
	"style_color": func(fl validator.FieldLevel) bool {
		_, err := graphics.ParseColor(fl.Field().String())
		return err == nil
	},
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		if err := registerTags(v, sheetTags); err != nil {
			panic(err)
		}
		validateInst = v
	})
	return validateInst
}

func registerTags(v *validator.Validate, tags map[string]validator.Func) error {
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register validation %q: %w", tag, err)
		}
	}
	return nil
}

// supportedVersion accepts semantic versions with or without a leading v
// whose major version is SupportedMajor.
func supportedVersion(v string) bool {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.IsValid(v) && semver.Major(v) == SupportedMajor
}

func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeField(fe))
	}
	return stderrors.New(strings.Join(msgs, "; "))
}

func describeField(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Sheet.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "sheet_version":
		return fmt.Sprintf("%s %q is not a %s.x.y version", field, fe.Value(), SupportedMajor)
	case "control_name":
		return fmt.Sprintf("%s %q must be lowercase letters, digits, '-' or '_'", field, fe.Value())
	case "control_kind":
		return fmt.Sprintf("%s %q is not button, container or label", field, fe.Value())
	case "style_color":
		return fmt.Sprintf("%s %q is not a color", field, fe.Value())
	case "unique":
		return fmt.Sprintf("%s has duplicate names", field)
	case "gt", "gte", "min":
		return fmt.Sprintf("%s must be %s %s", field, fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
