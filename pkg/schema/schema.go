package schema

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// ErrInvalid matches every decode or validation failure.
var ErrInvalid = errors.New("invalid input")

// Error lists the problems found in one input, one entry per field.
type Error struct {
	Problems []string
}

func (e *Error) Error() string {
	return ErrInvalid.Error() + ": " + strings.Join(e.Problems, "; ")
}

// Is makes errors.Is(err, ErrInvalid) hold.
func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// Validator narrows untyped key/value bags into typed structs and validates
// them against their `validate` tags. Field names in errors are the json names.
// Safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := registerRules(v); err != nil {
		panic(fmt.Sprintf("schema: register rules: %v", err))
	}
	return &Validator{validate: v}
}

// RegisterBindingRules adds the custom rules to gin's binding validator so
// request structs can use them in `binding` tags. Safe to call more than once.
func RegisterBindingRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("schema: unexpected binding engine %T", binding.Validator.Engine())
	}
	return registerRules(v)
}

func registerRules(v *validator.Validate) error {
	return v.RegisterValidation("notblank", notBlank)
}

// Decode copies input into out (a pointer to struct) using the `json` tags,
// without any weak type conversion, then validates out.
// Keys without a matching field are ignored.
func (v *Validator) Decode(input map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: false,
		DecodeHook:       integralNumberHook,
	})
	if err != nil {
		return fmt.Errorf("schema: build decoder: %w", err)
	}

	if err := decoder.Decode(input); err != nil {
		return &Error{Problems: describeDecodeError(err)}
	}

	return v.Struct(out)
}

// Struct validates an already typed struct.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, describeFieldError(fe))
		}
		return &Error{Problems: msgs}
	}

	return &Error{Problems: []string{err.Error()}}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return true
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

// integralNumberHook rejects fractional JSON numbers headed for integer fields.
// JSON numbers arrive as float64 and mapstructure would otherwise truncate them.
func integralNumberHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.Float64 && from.Kind() != reflect.Float32 {
		return data, nil
	}
	for to.Kind() == reflect.Ptr {
		to = to.Elem()
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f := reflect.ValueOf(data).Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, fmt.Errorf("expected an integer, got %v", f)
		}
	}
	return data, nil
}

func describeDecodeError(err error) []string {
	var msgs []string
	for _, line := range strings.Split(err.Error(), "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
		if line == "" || strings.HasPrefix(line, "decoding failed") || strings.HasSuffix(line, "decoding:") {
			continue
		}
		msgs = append(msgs, line)
	}
	if len(msgs) == 0 {
		return []string{err.Error()}
	}
	return msgs
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "min":
		if isLengthKind(fe.Kind()) {
			return fmt.Sprintf("%s must have at least %s item(s) or character(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if isLengthKind(fe.Kind()) {
			return fmt.Sprintf("%s must have at most %s item(s) or character(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "unique":
		return fmt.Sprintf("%s must not contain duplicates", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

func isLengthKind(k reflect.Kind) bool {
	return k == reflect.String || k == reflect.Slice || k == reflect.Map || k == reflect.Array
}
