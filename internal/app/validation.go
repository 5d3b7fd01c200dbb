package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"wedding_venues/internal/domain"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	// report json names so messages line up with the request payloads
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("role", validateRole); err != nil {
		panic(fmt.Sprintf("register role validator: %v", err))
	}
	return &Validator{validate: v}
}

func validateRole(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	for _, r := range domain.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Profile checks the Home page form. Name and email are mandatory.
func (v *Validator) Profile(p domain.Profile) error {
	return v.structErr(p)
}

// Criteria checks the Search page form against the given day.
func (v *Validator) Criteria(c domain.SearchCriteria, today time.Time) error {
	if err := v.structErr(c); err != nil {
		return err
	}
	if err := ValidateDateRange(c.CheckIn, c.CheckOut); err != nil {
		return err
	}
	if DateOnly(c.CheckIn).Before(DateOnly(today)) {
		return ValidationErrors{{Field: "check_in", Message: "check_in cannot be in the past"}}
	}
	return nil
}

// Booking checks the Booking page form for the selected hotel.
func (v *Validator) Booking(req domain.BookingRequest, h domain.Hotel) error {
	if err := v.structErr(req); err != nil {
		return err
	}
	var errs ValidationErrors
	switch {
	case h.AvailableRooms < 1:
		errs = append(errs, ValidationError{Field: "rooms", Message: "no rooms are available at this venue"})
	case req.Rooms < 1:
		errs = append(errs, ValidationError{Field: "rooms", Message: "rooms must be at least 1"})
	case req.Rooms > h.AvailableRooms:
		errs = append(errs, ValidationError{Field: "rooms", Message: fmt.Sprintf("rooms must be at most %d", h.AvailableRooms)})
	}
	if !req.AgreeTerms {
		errs = append(errs, ValidationError{Field: "agree_terms", Message: "please agree to the terms and conditions to proceed"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateDateRange rejects a check-out on or before the check-in day.
func ValidateDateRange(checkIn, checkOut time.Time) error {
	if !DateOnly(checkOut).After(DateOnly(checkIn)) {
		return ValidationErrors{{Field: "check_out", Message: "check_out must be after check_in"}}
	}
	return nil
}

// DateOnly truncates t to its calendar day in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (v *Validator) structErr(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return translateValidationErrors(validationErrs)
	}
	return err
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, 0, len(errs))
	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", err.Field())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "lte":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "role":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), strings.Join(domain.Roles, ", "))
		}

		out = append(out, ValidationError{Field: err.Field(), Message: message})
	}
	return out
}
