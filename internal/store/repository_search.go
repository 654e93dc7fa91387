// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
)

// searchRepository is the SQL implementation of [SearchRepository].
type searchRepository struct {
	db         *DB
	compiler   searchQueryBuilder
	attributes AttributeRepository
	logger     *logger.Logger
}

// NewSearchRepository constructs a [SearchRepository]. Returned attributes
// are hydrated through attributes.
func NewSearchRepository(db *DB, attributes AttributeRepository, log *logger.Logger) SearchRepository {
	log.Debug().Msg("creating search repository")
	return &searchRepository{
		db:         db,
		compiler:   searchQueryBuilder{dialect: db.dialect},
		attributes: attributes,
		logger:     log,
	}
}

// Search counts the whole match set, loads the requested page and then
// hydrates the requested attributes of the page with one more query.
func (r *searchRepository) Search(ctx context.Context, spec models.SearchSpec) (models.SearchResult, error) {
	log := logger.FromContext(ctx)

	compiled, err := r.compiler.compile(ctx, spec)
	if err != nil {
		log.Err(err).Str("func", "*searchRepository.Search").Msg("invalid search")
		return models.SearchResult{}, err
	}
	if compiled.empty {
		return models.SearchResult{Users: []models.User{}}, nil
	}

	total, err := r.count(ctx, compiled)
	if err != nil {
		return models.SearchResult{}, err
	}

	users, err := r.page(ctx, compiled)
	if err != nil {
		return models.SearchResult{}, err
	}

	if err = r.hydrate(ctx, users, spec.ReturnFields); err != nil {
		return models.SearchResult{}, err
	}

	return models.SearchResult{Users: users, TotalMatching: total}, nil
}

func (r *searchRepository) count(ctx context.Context, compiled compiledSearch) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := compiled.count.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*searchRepository.count").Msg("error building count query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*searchRepository.count").Msg("error executing count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.storeError(err))
	}
	return total, nil
}

func (r *searchRepository) page(ctx context.Context, compiled compiledSearch) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := compiled.page.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*searchRepository.page").Msg("error building page query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*searchRepository.page").Msg("error executing page query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.storeError(err))
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Active, &user.CreatedAt, &user.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*searchRepository.page").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, r.db.storeError(err))
		}
		user.CreatedAt = user.CreatedAt.UTC()
		user.UpdatedAt = user.UpdatedAt.UTC()
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*searchRepository.page").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.storeError(err))
	}

	return users, nil
}

// hydrate loads names for the whole page at once. Every returned user
// carries every requested name, empty when unset.
func (r *searchRepository) hydrate(ctx context.Context, users []models.User, names []string) error {
	if len(names) == 0 || len(users) == 0 {
		return nil
	}

	ids := make([]string, len(users))
	for i, user := range users {
		ids[i] = user.ID
	}

	fields, err := r.attributes.GetFields(ctx, ids, names)
	if err != nil {
		return err
	}

	for i := range users {
		hydrated := models.Fields{}
		for _, name := range names {
			name = strings.TrimSpace(name)
			hydrated[name] = fields[users[i].ID].Values(name)
		}
		users[i].Fields = hydrated
	}
	return nil
}
