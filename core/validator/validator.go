package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

func ValidateStruct(f interface{}) error {
	err := getValidator().Struct(f)
	return checkError(err)
}

func ValidateOneOf(value string, enums ...string) error {
	tags := "omitempty,oneof=" + strings.Join(enums, " ")
	err := getValidator().Var(value, tags)
	return checkError(err)
}

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = newValidator()
	})
	return validate
}

func checkError(err error) error {
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	errStrs := []string{}
	for _, e := range errs {
		switch e.Tag() {
		case "oneof":
			errStrValue := fmt.Sprintf("error value \"%v\"", rawValue(e.Value()))
			if e.Field() != "" {
				errStrValue = errStrValue + fmt.Sprintf(" for key \"%s\"", e.Field())
			}
			errStrValue = errStrValue + fmt.Sprintf(" not recognized, only support \"%s\"", e.Param())
			errStrs = append(errStrs, errStrValue)
		case "gte", "min":
			errStrs = append(errStrs, fmt.Sprintf("%s cannot be less than %s", e.Field(), e.Param()))
		case "required":
			errStrs = append(errStrs, fmt.Sprintf("%s is required", e.Field()))
		default:
			errStrs = append(errStrs, e.Error())
		}
	}
	return errors.New(strings.Join(errStrs, " and "))
}

// rawValue unwraps named string and numeric types so a fmt.Stringer does not
// replace the value that failed validation.
func rawValue(v interface{}) interface{} {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	default:
		return v
	}
}
