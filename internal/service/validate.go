package service

import (
	"errors"
	"fmt"
	"strings"
	"volley-training/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags and reports failures as ErrInvalidInput
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", models.ErrInvalidInput, strings.Join(msgs, "; "))
}

// ValidatePlan checks every slot and that sequence numbers do not repeat
func ValidatePlan(plan []models.SessionDrill) error {
	seen := make(map[int]bool, len(plan))
	for i := range plan {
		if err := Validate(&plan[i]); err != nil {
			return fmt.Errorf("slot %d: %w", i+1, err)
		}
		if seen[plan[i].SequenceNo] {
			return fmt.Errorf("%w: #%d", models.ErrDuplicateSlot, plan[i].SequenceNo)
		}
		seen[plan[i].SequenceNo] = true
	}
	return nil
}
