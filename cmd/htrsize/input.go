package main

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/htrsize/render"
	"github.com/katalvlaran/htrsize/sizing"
)

// input is everything one invocation asks for, after parsing.
type input struct {
	Watts     float64 `flag:"WATTS" validate:"gt=0"`
	Length    float64 `flag:"LENGTH" validate:"gt=0"`
	Tolerance float64 `flag:"tolerance" validate:"gte=0"`
	Factor    float64 `flag:"factor" validate:"gt=0"`
	VMax      float64 `flag:"vmax" validate:"gt=0"`
	IMax      float64 `flag:"imax" validate:"gt=0"`
	Catalog   string  `flag:"catalog" validate:"omitempty,file"`
	Format    render.Format
}

var (
	validateOnce  sync.Once
	inputValidate *validator.Validate
)

// inputValidator returns the shared validator; field errors carry flag names.
func inputValidator() *validator.Validate {
	validateOnce.Do(func() {
		inputValidate = validator.New(validator.WithRequiredStructEnabled())
		inputValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if tag := fld.Tag.Get("flag"); tag != "" {
				return tag
			}

			return fld.Name
		})
	})

	return inputValidate
}

// parsePositional fills Watts and Length from the two positional arguments.
func (in *input) parsePositional(args []string) error {
	var err error
	if in.Watts, err = strconv.ParseFloat(args[0], 64); err != nil {
		return fmt.Errorf("%w: WATTS %q is not a number", sizing.ErrInvalidInput, args[0])
	}
	if in.Length, err = strconv.ParseFloat(args[1], 64); err != nil {
		return fmt.Errorf("%w: LENGTH %q is not a number", sizing.ErrInvalidInput, args[1])
	}

	return nil
}

// parseFormat resolves the --format value.
func (in *input) parseFormat(s string) error {
	f, err := render.ParseFormat(s)
	if err != nil {
		return fmt.Errorf("%w: format: %w", sizing.ErrInvalidInput, err)
	}
	in.Format = f

	return nil
}

// validate checks in and reports the first violation by flag name.
func (in input) validate() error {
	err := inputValidator().Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return fmt.Errorf("%w: %s must satisfy %s=%s, got %v", sizing.ErrInvalidInput, fe.Field(), fe.Tag(), fe.Param(), fe.Value())
		}

		return fmt.Errorf("%w: %s must satisfy %s, got %v", sizing.ErrInvalidInput, fe.Field(), fe.Tag(), fe.Value())
	}

	return fmt.Errorf("%w: %v", sizing.ErrInvalidInput, err)
}
