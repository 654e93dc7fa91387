// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/models"
)

// dummyPassword is verified against when no real hash is available so that
// unknown users cost the same bcrypt round as known ones.
const dummyPassword = "directory-timing-equalizer"

// directoryService is the concrete implementation of DirectoryService.
// It composes the catalog and the user, attribute and search repositories
// and owns password hashing. Inputs are expected to be validated by
// [DirectoryValidationService].
type directoryService struct {
	catalog    store.AttributeCatalog
	users      store.UserRepository
	attributes store.AttributeRepository
	search     store.SearchRepository

	hasher      PasswordHasher
	idGenerator IDGenerator

	dummyOnce sync.Once
	dummyHash string

	logger *logger.Logger
}

// NewDirectoryService constructs the core DirectoryService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewDirectoryService(storages *store.Storages, hasher PasswordHasher, idGenerator IDGenerator, logger *logger.Logger) DirectoryService {
	return &directoryService{
		catalog:     storages.Catalog,
		users:       storages.Users,
		attributes:  storages.Attributes,
		search:      storages.Search,
		hasher:      hasher,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

// Create registers a new user.
//
// The username is trimmed and checked for availability across active and
// inactive users. Field names are resolved before the user is written, and
// the user row and its fields are written in one transaction.
//
// Returns the reloaded user or:
//   - ErrConflict if the username or id is taken;
//   - ErrInvalidArgument for an empty or too long password (use NoLogin)
//     or an empty field name;
//   - a wrapped storage error otherwise.
func (s *directoryService) Create(ctx context.Context, username string, password models.Password, fields models.Fields, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if id == "" {
		id = s.idGenerator.Generate()
	}
	id = canonicalID(id)

	available, err := s.IsUsernameAvailable(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	if !available {
		log.Info().Str("func", "*directoryService.Create").Str("username", username).Msg("username is taken")
		return models.User{}, fmt.Errorf("%w: %w: %q", ErrConflict, ErrUsernameTaken, username)
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		log.Err(err).Str("func", "*directoryService.Create").Msg("password hashing failed")
		return models.User{}, err
	}

	fields = fields.Normalized()
	if _, err = s.catalog.ResolveAll(ctx, fields.Names()); err != nil {
		log.Err(err).Str("func", "*directoryService.Create").Msg("resolving field names failed")
		return models.User{}, fmt.Errorf("resolving field names: %w", err)
	}

	created, err := s.users.CreateUser(ctx, models.User{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
		Active:       true,
		Fields:       fields,
	})
	if err != nil {
		log.Err(err).Str("func", "*directoryService.Create").Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return s.FindByID(ctx, created.ID, true)
}

// Authenticate verifies credentials of an active user. A bcrypt round is
// spent whether or not the user exists.
func (s *directoryService) Authenticate(ctx context.Context, username, password string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.FindUserByUsername(ctx, strings.TrimSpace(username), false)
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.Err(err).Str("func", "*directoryService.Authenticate").Msg("user search by username failed")
		return models.User{}, false, fmt.Errorf("user search by username failed: %w", err)
	}

	if err != nil || !user.CanLogin() {
		s.hasher.Verify(password, s.timingHash())
		return models.User{}, false, nil
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		log.Info().Str("func", "*directoryService.Authenticate").Str("id", user.ID).Msg("wrong password")
		return models.User{}, false, nil
	}

	fields, err := s.loadFields(ctx, user.ID, nil)
	if err != nil {
		return models.User{}, false, err
	}
	user.Fields = fields
	return user, true, nil
}

// FindByID loads the user with all of its fields.
func (s *directoryService) FindByID(ctx context.Context, id string, includeInactive bool) (models.User, error) {
	user, err := s.users.FindUserByID(ctx, canonicalID(id), includeInactive)
	if err != nil {
		return models.User{}, err
	}
	return s.hydrate(ctx, user)
}

// FindByUsername loads the user with all of its fields.
func (s *directoryService) FindByUsername(ctx context.Context, username string, includeInactive bool) (models.User, error) {
	user, err := s.users.FindUserByUsername(ctx, strings.TrimSpace(username), includeInactive)
	if err != nil {
		return models.User{}, err
	}
	return s.hydrate(ctx, user)
}

// FindByAttributes runs a one-row search over active users ordered by id.
func (s *directoryService) FindByAttributes(ctx context.Context, criteria map[string]string) (models.User, bool, error) {
	match := make(map[string][]string, len(criteria))
	for name, value := range criteria {
		match[name] = []string{value}
	}

	result, err := s.search.Search(ctx, models.SearchSpec{
		Active:         models.ActiveOnly,
		MatchAllFields: match,
		Limit:          1,
	})
	if err != nil {
		return models.User{}, false, err
	}
	if len(result.Users) == 0 {
		return models.User{}, false, nil
	}

	user, err := s.hydrate(ctx, result.Users[0])
	if err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}

// IsUsernameAvailable reports whether no user, active or not, holds
// username.
func (s *directoryService) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	_, err := s.users.FindUserByUsername(ctx, strings.TrimSpace(username), true)
	if errors.Is(err, ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// SetUsername renames the user. Renaming a user to its current name is a
// no-op; a name held by any other user is ErrConflict.
func (s *directoryService) SetUsername(ctx context.Context, id, username string) error {
	id = canonicalID(id)
	username = strings.TrimSpace(username)

	owner, err := s.users.FindUserByUsername(ctx, username, true)
	switch {
	case err == nil && owner.ID == id:
		return nil
	case err == nil:
		return fmt.Errorf("%w: %w: %q", ErrConflict, ErrUsernameTaken, username)
	case !errors.Is(err, ErrNotFound):
		return err
	}

	return s.users.SetUsername(ctx, id, username)
}

// SetPassword replaces the credential; NoLogin disables login.
func (s *directoryService) SetPassword(ctx context.Context, id string, password models.Password) error {
	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}
	return s.users.SetPasswordHash(ctx, canonicalID(id), hash)
}

func (s *directoryService) SetActive(ctx context.Context, id string, active bool) error {
	return s.users.SetActive(ctx, canonicalID(id), active)
}

// Remove deletes the user and all of its fields. Any later operation on the
// id reports ErrNotFound.
func (s *directoryService) Remove(ctx context.Context, id string) error {
	return s.users.RemoveUser(ctx, canonicalID(id))
}

func (s *directoryService) AddField(ctx context.Context, id, name string, values []string) error {
	return s.attributes.AddValues(ctx, canonicalID(id), name, values)
}

func (s *directoryService) AddFields(ctx context.Context, id string, fields models.Fields) error {
	return s.attributes.AddFields(ctx, canonicalID(id), fields)
}

func (s *directoryService) ReplaceFields(ctx context.Context, id string, fields models.Fields) error {
	return s.attributes.ReplaceAll(ctx, canonicalID(id), fields)
}

func (s *directoryService) RemoveField(ctx context.Context, id, name string) error {
	return s.attributes.RemoveAttribute(ctx, canonicalID(id), name)
}

// GetFields returns the named fields of the user, or all of them when names
// is empty.
func (s *directoryService) GetFields(ctx context.Context, id string, names []string) (models.Fields, error) {
	return s.loadFields(ctx, canonicalID(id), names)
}

func (s *directoryService) GetValues(ctx context.Context, id, name string) ([]string, error) {
	return s.attributes.GetValues(ctx, canonicalID(id), name)
}

func (s *directoryService) DistinctValues(ctx context.Context, name string) ([]string, error) {
	return s.attributes.DistinctValues(ctx, name)
}

func (s *directoryService) Search(ctx context.Context, spec models.SearchSpec) (models.SearchResult, error) {
	return s.search.Search(ctx, spec)
}

func (s *directoryService) hydrate(ctx context.Context, user models.User) (models.User, error) {
	fields, err := s.loadFields(ctx, user.ID, nil)
	if err != nil {
		return models.User{}, err
	}
	user.Fields = fields
	return user, nil
}

func (s *directoryService) loadFields(ctx context.Context, id string, names []string) (models.Fields, error) {
	byUser, err := s.attributes.GetFields(ctx, []string{id}, names)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*directoryService.loadFields").Msg("loading fields failed")
		return nil, err
	}
	if fields := byUser[id]; fields != nil {
		return fields, nil
	}
	return models.Fields{}, nil
}

func (s *directoryService) hashPassword(password models.Password) (string, error) {
	if password.IsNoLogin() {
		return "", nil
	}
	if password.Plain() == "" {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, ErrEmptyPassword)
	}

	hash, err := s.hasher.Hash(password.Plain())
	if errors.Is(err, ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	return hash, nil
}

// timingHash lazily hashes dummyPassword with the configured hasher.
func (s *directoryService) timingHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash(dummyPassword)
		if err == nil {
			s.dummyHash = hash
		}
	})
	return s.dummyHash
}

func canonicalID(id string) string {
	if canonical, ok := utils.CanonicalID(id); ok {
		return canonical
	}
	return id
}
