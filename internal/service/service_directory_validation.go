// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/validators"
	"github.com/MKhiriev/go-user-directory/models"
)

// DirectoryValidationService rejects malformed input with ErrInvalidArgument
// before it reaches the wrapped DirectoryService.
type DirectoryValidationService struct {
	inner     DirectoryService
	validator validators.Validator
}

func NewDirectoryValidationService() DirectoryServiceWrapper {
	return &DirectoryValidationService{
		validator: validators.NewDirectoryValidator(),
	}
}

func (v *DirectoryValidationService) Wrap(wrapped DirectoryService) DirectoryService {
	v.inner = wrapped
	return v
}

func (v *DirectoryValidationService) validate(ctx context.Context, op string, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", op).Msg("validation failed")
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return nil
}

func (v *DirectoryValidationService) validateID(ctx context.Context, op, id string) error {
	return v.validate(ctx, op, id, validators.FieldID)
}

func (v *DirectoryValidationService) Create(ctx context.Context, username string, password models.Password, fields models.Fields, id string) (models.User, error) {
	scope := []string{validators.FieldUsername, validators.FieldAttributes}
	if id != "" {
		scope = append(scope, validators.FieldID)
	}
	user := models.User{ID: id, Username: username, Fields: fields}
	if err := v.validate(ctx, "*DirectoryValidationService.Create", user, scope...); err != nil {
		return models.User{}, err
	}
	return v.inner.Create(ctx, username, password, fields, id)
}

// Authenticate does not validate: malformed credentials simply fail.
func (v *DirectoryValidationService) Authenticate(ctx context.Context, username, password string) (models.User, bool, error) {
	return v.inner.Authenticate(ctx, username, password)
}

func (v *DirectoryValidationService) FindByID(ctx context.Context, id string, includeInactive bool) (models.User, error) {
	if err := v.validateID(ctx, "*DirectoryValidationService.FindByID", id); err != nil {
		return models.User{}, err
	}
	return v.inner.FindByID(ctx, id, includeInactive)
}

func (v *DirectoryValidationService) FindByUsername(ctx context.Context, username string, includeInactive bool) (models.User, error) {
	if err := v.validate(ctx, "*DirectoryValidationService.FindByUsername", username, validators.FieldUsername); err != nil {
		return models.User{}, err
	}
	return v.inner.FindByUsername(ctx, username, includeInactive)
}

func (v *DirectoryValidationService) FindByAttributes(ctx context.Context, criteria map[string]string) (models.User, bool, error) {
	bag := make(models.Fields, len(criteria))
	for name, value := range criteria {
		bag[name] = []string{value}
	}
	if err := v.validate(ctx, "*DirectoryValidationService.FindByAttributes", bag, validators.FieldCriteria); err != nil {
		return models.User{}, false, err
	}
	return v.inner.FindByAttributes(ctx, criteria)
}

func (v *DirectoryValidationService) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	if err := v.validate(ctx, "*DirectoryValidationService.IsUsernameAvailable", username, validators.FieldUsername); err != nil {
		return false, err
	}
	return v.inner.IsUsernameAvailable(ctx, username)
}

func (v *DirectoryValidationService) SetUsername(ctx context.Context, id, username string) error {
	user := models.User{ID: id, Username: username}
	if err := v.validate(ctx, "*DirectoryValidationService.SetUsername", user, validators.FieldID, validators.FieldUsername); err != nil {
		return err
	}
	return v.inner.SetUsername(ctx, id, username)
}

func (v *DirectoryValidationService) SetPassword(ctx context.Context, id string, password models.Password) error {
	if err := v.validateID(ctx, "*DirectoryValidationService.SetPassword", id); err != nil {
		return err
	}
	return v.inner.SetPassword(ctx, id, password)
}

func (v *DirectoryValidationService) SetActive(ctx context.Context, id string, active bool) error {
	if err := v.validateID(ctx, "*DirectoryValidationService.SetActive", id); err != nil {
		return err
	}
	return v.inner.SetActive(ctx, id, active)
}

func (v *DirectoryValidationService) Remove(ctx context.Context, id string) error {
	if err := v.validateID(ctx, "*DirectoryValidationService.Remove", id); err != nil {
		return err
	}
	return v.inner.Remove(ctx, id)
}

func (v *DirectoryValidationService) AddField(ctx context.Context, id, name string, values []string) error {
	if err := v.validateID(ctx, "*DirectoryValidationService.AddField", id); err != nil {
		return err
	}
	if err := v.validate(ctx, "*DirectoryValidationService.AddField", name, validators.FieldAttributeName); err != nil {
		return err
	}
	return v.inner.AddField(ctx, id, name, values)
}

func (v *DirectoryValidationService) AddFields(ctx context.Context, id string, fields models.Fields) error {
	user := models.User{ID: id, Fields: fields}
	if err := v.validate(ctx, "*DirectoryValidationService.AddFields", user, validators.FieldID, validators.FieldAttributes); err != nil {
		return err
	}
	return v.inner.AddFields(ctx, id, fields)
}

func (v *DirectoryValidationService) ReplaceFields(ctx context.Context, id string, fields models.Fields) error {
	user := models.User{ID: id, Fields: fields}
	if err := v.validate(ctx, "*DirectoryValidationService.ReplaceFields", user, validators.FieldID, validators.FieldAttributes); err != nil {
		return err
	}
	return v.inner.ReplaceFields(ctx, id, fields)
}

func (v *DirectoryValidationService) RemoveField(ctx context.Context, id, name string) error {
	if err := v.validateID(ctx, "*DirectoryValidationService.RemoveField", id); err != nil {
		return err
	}
	if err := v.validate(ctx, "*DirectoryValidationService.RemoveField", name, validators.FieldAttributeName); err != nil {
		return err
	}
	return v.inner.RemoveField(ctx, id, name)
}

func (v *DirectoryValidationService) GetFields(ctx context.Context, id string, names []string) (models.Fields, error) {
	if err := v.validateID(ctx, "*DirectoryValidationService.GetFields", id); err != nil {
		return nil, err
	}
	spec := models.SearchSpec{ReturnFields: names}
	if err := v.validate(ctx, "*DirectoryValidationService.GetFields", spec, validators.FieldReturnFields); err != nil {
		return nil, err
	}
	return v.inner.GetFields(ctx, id, names)
}

func (v *DirectoryValidationService) GetValues(ctx context.Context, id, name string) ([]string, error) {
	if err := v.validateID(ctx, "*DirectoryValidationService.GetValues", id); err != nil {
		return nil, err
	}
	if err := v.validate(ctx, "*DirectoryValidationService.GetValues", name, validators.FieldAttributeName); err != nil {
		return nil, err
	}
	return v.inner.GetValues(ctx, id, name)
}

func (v *DirectoryValidationService) DistinctValues(ctx context.Context, name string) ([]string, error) {
	if err := v.validate(ctx, "*DirectoryValidationService.DistinctValues", name, validators.FieldAttributeName); err != nil {
		return nil, err
	}
	return v.inner.DistinctValues(ctx, name)
}

func (v *DirectoryValidationService) Search(ctx context.Context, spec models.SearchSpec) (models.SearchResult, error) {
	if err := v.validate(ctx, "*DirectoryValidationService.Search", spec); err != nil {
		return models.SearchResult{}, err
	}
	return v.inner.Search(ctx, spec)
}
