// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
)

// likeEscaper escapes the LIKE wildcards of user input. The escape
// character is declared with ESCAPE '\' on every pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

var comparisonOperators = map[models.Operator]string{
	models.OperatorEq: "=",
	models.OperatorGt: ">",
	models.OperatorLt: "<",
}

// searchQueryBuilder compiles a [models.SearchSpec] into a count query and
// a page query that share one filter.
//
// Attribute criteria become correlated EXISTS / NOT EXISTS subqueries over
// attribute_values joined to attribute_types by name, so a user matches at
// most once regardless of how many values it has. Every literal is a bound
// parameter; the only identifiers embedded in the text are identity
// columns taken from [models.IdentityColumns].
type searchQueryBuilder struct {
	dialect Dialect
}

// compiledSearch is the output of [searchQueryBuilder.compile].
type compiledSearch struct {
	count sq.SelectBuilder
	page  sq.SelectBuilder

	// empty is set when the result is known to be empty without asking the
	// store (an identifier allow-list with no valid identifiers).
	empty bool
}

func (b searchQueryBuilder) compile(ctx context.Context, spec models.SearchSpec) (compiledSearch, error) {
	sortKey, err := spec.SortKey()
	if err != nil {
		return compiledSearch{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	filter, empty, err := b.filter(ctx, spec)
	if err != nil || empty {
		return compiledSearch{empty: empty}, err
	}

	count := b.dialect.builder().Select("COUNT(*)").From("users u")
	page := b.dialect.builder().
		Select("u.id", "u.username", "u.password_hash", "u.active", "u.created_at", "u.updated_at").
		From("users u")
	if len(filter) > 0 {
		count = count.Where(filter)
		page = page.Where(filter)
	}

	page = b.orderBy(page, sortKey, spec.Sort.Descending)
	page = b.paginate(page, spec.Limit, spec.Offset)

	return compiledSearch{count: count, page: page}, nil
}

func (b searchQueryBuilder) filter(ctx context.Context, spec models.SearchSpec) (sq.And, bool, error) {
	var filter sq.And

	switch spec.Active {
	case models.ActiveOnly:
		filter = append(filter, sq.Eq{"u.active": true})
	case models.InactiveOnly:
		filter = append(filter, sq.Eq{"u.active": false})
	case models.ActiveAny:
	default:
		return nil, false, fmt.Errorf("%w: unknown active filter %d", ErrInvalidArgument, spec.Active)
	}

	if spec.CreatedAfter != nil {
		filter = append(filter, sq.Gt{"u.created_at": spec.CreatedAfter.UTC()})
	}
	if spec.UpdatedAfter != nil {
		filter = append(filter, sq.Gt{"u.updated_at": spec.UpdatedAfter.UTC()})
	}

	if spec.IDs != nil {
		ids := validIDs(ctx, spec.IDs)
		if len(ids) == 0 {
			return nil, true, nil
		}
		filter = append(filter, sq.Eq{"u.id": ids})
	}

	for _, comparison := range spec.Comparisons {
		predicate, err := b.comparison(comparison)
		if err != nil {
			return nil, false, err
		}
		filter = append(filter, predicate)
	}

	for _, name := range spec.HasFields {
		sub, err := attributeSubquery(name)
		if err != nil {
			return nil, false, err
		}
		filter = append(filter, exists(sub.Where("av.value <> ''")))
	}

	if len(spec.MissingFields) > 0 {
		missing := make(sq.Or, 0, len(spec.MissingFields))
		for _, name := range spec.MissingFields {
			sub, err := attributeSubquery(name)
			if err != nil {
				return nil, false, err
			}
			missing = append(missing, notExists(sub.Where("av.value <> ''")))
		}
		filter = append(filter, missing)
	}

	for _, name := range sortedKeys(spec.MatchAllFields) {
		sub, err := attributeSubquery(name)
		if err != nil {
			return nil, false, err
		}
		values := models.NormalizeValues(spec.MatchAllFields[name])
		filter = append(filter, exists(sub.Where(sq.Eq{"av.value": values})))
	}

	for _, name := range sortedKeys(spec.ContainsFields) {
		sub, err := attributeSubquery(name)
		if err != nil {
			return nil, false, err
		}
		filter = append(filter, exists(sub.Where(b.like("av.value"), containsPattern(spec.ContainsFields[name]))))
	}

	if query := strings.TrimSpace(spec.Query); query != "" {
		pattern := containsPattern(query)
		anyValue := sq.Select("1").
			From("attribute_values av").
			Where("av.user_id = u.id").
			Where(b.like("av.value"), pattern)
		filter = append(filter, sq.Or{
			sq.Expr(b.like("u.username"), pattern),
			exists(anyValue),
		})
	}

	return filter, false, nil
}

func (b searchQueryBuilder) comparison(c models.Comparison) (sq.Sqlizer, error) {
	op, ok := comparisonOperators[c.Operator]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported comparison operator %q", ErrInvalidArgument, c.Operator)
	}

	field := strings.TrimSpace(c.Field)
	switch field {
	case models.SortByCreatedAt, models.SortByUpdatedAt:
		at, err := time.Parse(time.RFC3339, strings.TrimSpace(c.Value))
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be an RFC 3339 timestamp: %w", ErrInvalidArgument, field, err)
		}
		return sq.Expr(fmt.Sprintf("%s %s ?", quoteIdentifier("u", field), op), at.UTC()), nil
	}

	sub, err := attributeSubquery(field)
	if err != nil {
		return nil, err
	}
	return exists(sub.Where("av.value "+op+" ?", c.Value)), nil
}

func (b searchQueryBuilder) orderBy(page sq.SelectBuilder, key string, descending bool) sq.SelectBuilder {
	direction := " ASC"
	if descending {
		direction = " DESC"
	}

	if models.IsIdentityColumn(key) {
		page = page.OrderBy(quoteIdentifier("u", key) + direction)
	} else {
		// users with several values sort by the lexically first one
		page = page.OrderByClause(
			"COALESCE((SELECT MIN(av.value) FROM attribute_values av"+
				" JOIN attribute_types t ON t.id = av.attribute_type_id"+
				" WHERE av.user_id = u.id AND t.name = ?), '')"+direction, key)
	}

	if key != models.SortByID {
		page = page.OrderBy(quoteIdentifier("u", models.SortByID) + " ASC")
	}
	return page
}

func (b searchQueryBuilder) paginate(page sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	if limit > 0 {
		page = page.Limit(uint64(limit))
	}
	if offset > 0 {
		// SQLite does not accept OFFSET without LIMIT
		if limit <= 0 && b.dialect.Name == SQLiteDialect.Name {
			page = page.Limit(math.MaxInt64)
		}
		page = page.Offset(uint64(offset))
	}
	return page
}

func (b searchQueryBuilder) like(column string) string {
	return column + " " + b.dialect.likeOperator + ` ? ESCAPE '\'`
}

// attributeSubquery selects the values of the named attribute of the outer
// user. Callers narrow it down with further Where clauses.
func attributeSubquery(name string) (sq.SelectBuilder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return sq.SelectBuilder{}, fmt.Errorf("%w: attribute name is empty", ErrInvalidArgument)
	}
	return sq.Select("1").
		From("attribute_values av").
		Join("attribute_types t ON t.id = av.attribute_type_id").
		Where("av.user_id = u.id").
		Where(sq.Eq{"t.name": name}), nil
}

func exists(sub sq.SelectBuilder) sq.Sqlizer {
	return sq.Expr("EXISTS (?)", sub)
}

func notExists(sub sq.SelectBuilder) sq.Sqlizer {
	return sq.Expr("NOT EXISTS (?)", sub)
}

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// validIDs canonicalizes the well-formed identifiers and drops the rest.
func validIDs(ctx context.Context, ids []string) []string {
	valid := make([]string, 0, len(ids))
	var dropped []string
	for _, id := range ids {
		parsed, err := uuid.Parse(strings.TrimSpace(id))
		if err != nil {
			dropped = append(dropped, id)
			continue
		}
		valid = append(valid, parsed.String())
	}

	if len(dropped) > 0 {
		logger.FromContext(ctx).Warn().
			Str("func", "validIDs").
			Strs("ids", dropped).
			Msg("ignoring malformed identifiers in allow-list")
	}
	return valid
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
