package validate

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"quickchat/internal/domain"
)

// MaxContentLength is the longest message body, in characters, callers may submit.
const MaxContentLength = 250

var cellPattern = regexp.MustCompile(`^\+27\d{9}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("za_cell", func(fl validator.FieldLevel) bool {
		return cellPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("validate: register za_cell: %v", err))
	}
	return v
}

// Draft is a message as a caller submits it, before the registry assigns an id.
type Draft struct {
	Sender    string `validate:"required"`
	Recipient string `validate:"required,za_cell"`
	Content   string `validate:"max=250"`
}

// CheckRecipientCell reports whether cell is a South African mobile number
// in international form.
func CheckRecipientCell(cell string) bool {
	return validate.Var(cell, "required,za_cell") == nil
}

// CheckContentLength reports whether content fits in one message.
func CheckContentLength(content string) bool {
	return validate.Var(content, "max=250") == nil
}

// CheckDraft validates every field of d and maps the first failure onto a
// domain error where one exists.
func CheckDraft(d Draft) error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	switch verrs[0].Field() {
	case "Recipient":
		return domain.ErrInvalidRecipient
	case "Content":
		return domain.ErrContentTooLong
	}
	return err
}
