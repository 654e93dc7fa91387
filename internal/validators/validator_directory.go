// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-user-directory/models"
)

// DirectoryValidator validates the inputs of the directory service.
type DirectoryValidator struct {
}

func NewDirectoryValidator() Validator {
	return &DirectoryValidator{}
}

// Validate dispatches on the type of obj. A string is validated as the
// field named by the first entry of fields (FieldID or FieldAttributeName).
func (v *DirectoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateString(ctx, value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.Fields:
		return v.validateFields(ctx, value, fields...)

	case models.SearchSpec:
		return v.validateSearchSpec(ctx, value, fields...)
	case *models.SearchSpec:
		return v.validateSearchSpec(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DirectoryValidator) validateString(ctx context.Context, value string, fields ...string) error {
	if len(fields) == 0 {
		return ErrUnknownField
	}

	switch fields[0] {
	case FieldID:
		return validateID(value)
	case FieldUsername:
		if strings.TrimSpace(value) == "" {
			return ErrEmptyUsername
		}
	case FieldAttributeName:
		return validateName(value)
	default:
		return ErrUnknownField
	}
	return nil
}

func (v *DirectoryValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUsername, FieldAttributes}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if err := validateID(user.ID); err != nil {
				return err
			}
		case FieldUsername:
			if strings.TrimSpace(user.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldAttributes:
			if err := v.validateFields(ctx, user.Fields); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DirectoryValidator) validateFields(ctx context.Context, bag models.Fields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAttributes}
	}

	for _, f := range fields {
		switch f {
		case FieldCriteria:
			if len(bag) == 0 {
				return ErrEmptyCriteria
			}
		case FieldAttributes:
		default:
			return ErrUnknownField
		}
	}

	for name := range bag {
		if err := validateName(name); err != nil {
			return err
		}
	}
	return nil
}

func (v *DirectoryValidator) validateSearchSpec(ctx context.Context, spec models.SearchSpec, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldActive, FieldComparisons, FieldAttributeCriteria, FieldReturnFields, FieldSort}
	}

	for _, f := range fields {
		switch f {
		case FieldActive:
			switch spec.Active {
			case models.ActiveOnly, models.InactiveOnly, models.ActiveAny:
			default:
				return ErrInvalidActiveFilter
			}
		case FieldComparisons:
			for _, c := range spec.Comparisons {
				if err := validateComparison(c); err != nil {
					return err
				}
			}
		case FieldAttributeCriteria:
			if err := validateNames(spec.HasFields, spec.MissingFields); err != nil {
				return err
			}
			for name := range spec.MatchAllFields {
				if err := validateName(name); err != nil {
					return err
				}
			}
			for name := range spec.ContainsFields {
				if err := validateName(name); err != nil {
					return err
				}
			}
		case FieldReturnFields:
			if err := validateNames(spec.ReturnFields); err != nil {
				return err
			}
		case FieldSort:
			if _, err := spec.SortKey(); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidUserID, id)
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyAttributeName
	}
	return nil
}

func validateNames(lists ...[]string) error {
	for _, names := range lists {
		for _, name := range names {
			if err := validateName(name); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateComparison(c models.Comparison) error {
	if !c.Operator.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedOperator, c.Operator)
	}

	field := strings.TrimSpace(c.Field)
	if err := validateName(field); err != nil {
		return err
	}
	if field == models.SortByCreatedAt || field == models.SortByUpdatedAt {
		if _, err := time.Parse(time.RFC3339, strings.TrimSpace(c.Value)); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimestamp, c.Value)
		}
	}
	return nil
}
