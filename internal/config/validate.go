package config

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"

	"github.com/freshcart/gridkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator. Field names are reported
// by their yaml key so messages match what the user wrote.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semver.IsValid(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks the configuration and reports the first failing field by
// its dotted path, for example "grid.maxItemWidth".
func (c *Config) Validate() error {
	if c == nil {
		return &errors.GridError{Op: "config.Validate", Kind: errors.KindConfig, Err: stderrors.New("configuration is nil")}
	}
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &errors.GridError{Op: "config.Validate", Kind: errors.KindConfig, Err: err}
	}
	fe := fieldErrs[0]
	return &errors.GridError{
		Op:    "config.Validate",
		Kind:  errors.KindConfig,
		Field: fieldPath(fe.Namespace()),
		Err:   stderrors.New(describe(fe)),
	}
}

// fieldPath drops the root type name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "semver":
		return fmt.Sprintf("%q is not a semantic version (want e.g. %s)", fe.Value(), CurrentVersion)
	case "gt":
		return fmt.Sprintf("must be greater than %s (got %v)", fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("must be at least %s (got %v)", fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("must be at most %s (got %v)", fe.Param(), fe.Value())
	case "gtefield":
		return fmt.Sprintf("must not be less than %s (got %v)", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}
