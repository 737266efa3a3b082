package logging

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	validatorV10 "github.com/go-playground/validator/v10"

	apperrors "github.com/leeforge/clog/errors"
)

var validator *validatorV10.Validate

func init() {
	validator = validatorV10.New()
	validator.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
}

// Validate inspects an Options bundle and returns the ConsoleConfig or FileConfig it
// describes. A bundle with anything other than two or five options fails with an
// args_count error; a bundle of the right size with a missing, mistyped or unknown
// value fails with an args_name error.
func Validate(opts Options) (Config, error) {
	var (
		cfg Config
		err error
	)
	switch len(opts) {
	case 2:
		cfg, err = consoleFromOptions(opts)
	case 5:
		cfg, err = fileFromOptions(opts)
	default:
		return nil, apperrors.NewArgsCount(len(opts))
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func consoleFromOptions(opts Options) (ConsoleConfig, error) {
	name, err := stringOption(opts, OptionName)
	if err != nil {
		return ConsoleConfig{}, err
	}
	level, err := levelOption(opts)
	if err != nil {
		return ConsoleConfig{}, err
	}

	cfg := ConsoleConfig{Name: name, Level: level}
	if err := cfg.Validate(); err != nil {
		return ConsoleConfig{}, err
	}
	return cfg, nil
}

func fileFromOptions(opts Options) (FileConfig, error) {
	base, err := consoleFromOptions(Options{
		OptionName:  opts[OptionName],
		OptionLevel: opts[OptionLevel],
	})
	if err != nil {
		return FileConfig{}, err
	}

	file, err := stringOption(opts, OptionFile)
	if err != nil {
		return FileConfig{}, err
	}
	mode, err := stringOption(opts, OptionMode)
	if err != nil {
		return FileConfig{}, err
	}
	encoding, err := stringOption(opts, OptionEncoding)
	if err != nil {
		return FileConfig{}, err
	}

	cfg := FileConfig{
		Name:     base.Name,
		Level:    base.Level,
		File:     file,
		Mode:     Mode(mode),
		Encoding: encoding,
	}
	if err := cfg.Validate(); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}

// stringOption requires key to be present with a non-nil string value.
func stringOption(opts Options, key string) (string, error) {
	raw, ok := opts[key]
	if !ok {
		return "", apperrors.NewArgsName(key, "missing")
	}
	if raw == nil {
		return "", apperrors.NewArgsName(key, "is null")
	}
	s, ok := raw.(string)
	if !ok {
		return "", apperrors.NewArgsName(key, fmt.Sprintf("must be a string, got %T", raw))
	}
	return s, nil
}

func levelOption(opts Options) (Level, error) {
	name, err := stringOption(opts, OptionLevel)
	if err != nil {
		return 0, err
	}
	level, ok := ParseLevel(name)
	if !ok {
		return 0, apperrors.NewArgsName(OptionLevel, fmt.Sprintf("unknown level %q", name))
	}
	return level, nil
}

// Validate checks the console configuration.
func (c ConsoleConfig) Validate() error {
	return validateStruct(c)
}

// Validate checks the file configuration, including that Encoding names a known encoding.
func (c FileConfig) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if _, err := lookupEncoding(c.Encoding); err != nil {
		return apperrors.NewArgsName(OptionEncoding, err.Error())
	}
	return nil
}

func validateStruct(v any) error {
	err := validator.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validatorV10.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewArgsName(fe.Field(), getValidationMessage(fe))
	}
	return apperrors.NewArgsName("", err.Error())
}

func getValidationMessage(fe validatorV10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		if fe.Field() == OptionLevel {
			return fmt.Sprintf("unknown level %v", fe.Value())
		}
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
