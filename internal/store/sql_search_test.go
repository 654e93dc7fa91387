// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-directory/models"
)

const attributeExists = "EXISTS (SELECT 1 FROM attribute_values av JOIN attribute_types t ON t.id = av.attribute_type_id WHERE av.user_id = u.id AND t.name = "

func compilePostgres(t *testing.T, spec models.SearchSpec) (countSQL string, countArgs []any, pageSQL string, pageArgs []any) {
	t.Helper()

	compiled, err := searchQueryBuilder{dialect: PostgresDialect}.compile(context.Background(), spec)
	require.NoError(t, err)
	require.False(t, compiled.empty)

	countSQL, countArgs, err = compiled.count.ToSql()
	require.NoError(t, err)
	pageSQL, pageArgs, err = compiled.page.ToSql()
	require.NoError(t, err)
	return countSQL, countArgs, pageSQL, pageArgs
}

func TestCompile_Defaults(t *testing.T) {
	countSQL, countArgs, pageSQL, pageArgs := compilePostgres(t, models.SearchSpec{})

	assert.Equal(t, "SELECT COUNT(*) FROM users u WHERE (u.active = $1)", countSQL)
	assert.Equal(t, []any{true}, countArgs)
	assert.Equal(t,
		`SELECT u.id, u.username, u.password_hash, u.active, u.created_at, u.updated_at FROM users u WHERE (u.active = $1) ORDER BY "u"."id" ASC`,
		pageSQL)
	assert.Equal(t, []any{true}, pageArgs)
}

func TestCompile_ActiveFilter(t *testing.T) {
	countSQL, args, _, _ := compilePostgres(t, models.SearchSpec{Active: models.InactiveOnly})
	assert.Contains(t, countSQL, "u.active = $1")
	assert.Equal(t, []any{false}, args)

	countSQL, args, _, _ = compilePostgres(t, models.SearchSpec{Active: models.ActiveAny})
	assert.Equal(t, "SELECT COUNT(*) FROM users u", countSQL)
	assert.Empty(t, args)
}

func TestCompile_CountSharesFilterWithPage(t *testing.T) {
	spec := models.SearchSpec{
		HasFields:      []string{"email"},
		MatchAllFields: map[string][]string{"role": {"customer"}},
		Limit:          2,
		Offset:         3,
	}

	countSQL, countArgs, pageSQL, pageArgs := compilePostgres(t, spec)

	where := countSQL[len("SELECT COUNT(*) FROM users u"):]
	assert.Contains(t, pageSQL, where)
	assert.Equal(t, countArgs, pageArgs)
	assert.Contains(t, pageSQL, "LIMIT 2 OFFSET 3")
	assert.NotContains(t, countSQL, "LIMIT")
}

func TestCompile_MatchAllFields(t *testing.T) {
	_, _, pageSQL, args := compilePostgres(t, models.SearchSpec{
		MatchAllFields: map[string][]string{
			"role":  {"customer", "vip"},
			"email": {"a@example.com"},
		},
	})

	assert.Contains(t, pageSQL, attributeExists+"$2 AND av.value IN ($3))")
	assert.Contains(t, pageSQL, attributeExists+"$4 AND av.value IN ($5,$6))")
	assert.Equal(t, []any{true, "email", "a@example.com", "role", "customer", "vip"}, args)
}

func TestCompile_HasAndMissingFields(t *testing.T) {
	_, _, pageSQL, args := compilePostgres(t, models.SearchSpec{
		HasFields:     []string{"email"},
		MissingFields: []string{"phone", "address"},
	})

	assert.Contains(t, pageSQL, attributeExists+"$2 AND av.value <> '')")
	assert.Contains(t, pageSQL, "(NOT EXISTS (SELECT 1 FROM attribute_values av JOIN attribute_types t ON t.id = av.attribute_type_id WHERE av.user_id = u.id AND t.name = $3 AND av.value <> '') OR NOT EXISTS (")
	assert.Equal(t, []any{true, "email", "phone", "address"}, args)
}

func TestCompile_ContainsFieldsEscapesWildcards(t *testing.T) {
	_, _, pageSQL, args := compilePostgres(t, models.SearchSpec{
		ContainsFields: map[string]string{"note": `50%_off\`},
	})

	assert.Contains(t, pageSQL, `AND av.value ILIKE $3 ESCAPE '\')`)
	assert.Equal(t, []any{true, "note", `%50\%\_off\\%`}, args)
}

func TestCompile_FreeTextQuery(t *testing.T) {
	_, _, pageSQL, args := compilePostgres(t, models.SearchSpec{Query: "  ali "})

	assert.Contains(t, pageSQL, `(u.username ILIKE $2 ESCAPE '\' OR EXISTS (SELECT 1 FROM attribute_values av WHERE av.user_id = u.id AND av.value ILIKE $3 ESCAPE '\'))`)
	assert.Equal(t, []any{true, "%ali%", "%ali%"}, args)
}

func TestCompile_Comparisons(t *testing.T) {
	_, _, pageSQL, args := compilePostgres(t, models.SearchSpec{
		Comparisons: []models.Comparison{
			{Field: "created_at", Operator: models.OperatorGt, Value: "2026-01-01T00:00:00Z"},
			{Field: "birthday", Operator: models.OperatorLt, Value: "2000-01-01"},
		},
	})

	assert.Contains(t, pageSQL, `"u"."created_at" > $2`)
	assert.Contains(t, pageSQL, attributeExists+"$3 AND av.value < $4)")
	assert.Equal(t, []any{true, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "birthday", "2000-01-01"}, args)
}

func TestCompile_TimestampBounds(t *testing.T) {
	after := time.Date(2026, 2, 1, 0, 0, 0, 0, time.FixedZone("X", 3600))

	countSQL, args, _, _ := compilePostgres(t, models.SearchSpec{CreatedAfter: &after, UpdatedAfter: &after})

	assert.Contains(t, countSQL, "u.created_at > $2")
	assert.Contains(t, countSQL, "u.updated_at > $3")
	assert.Equal(t, []any{true, after.UTC(), after.UTC()}, args)
}

func TestCompile_IDAllowList(t *testing.T) {
	upper := "0195A1B2-C3D4-7E5F-8A9B-0C1D2E3F4A5B"

	countSQL, args, _, _ := compilePostgres(t, models.SearchSpec{IDs: []string{"not-an-id", upper}})
	assert.Contains(t, countSQL, "u.id IN ($2)")
	assert.Equal(t, []any{true, testUserID}, args)

	compiled, err := searchQueryBuilder{dialect: PostgresDialect}.compile(context.Background(),
		models.SearchSpec{IDs: []string{"bogus"}})
	require.NoError(t, err)
	assert.True(t, compiled.empty)

	compiled, err = searchQueryBuilder{dialect: PostgresDialect}.compile(context.Background(),
		models.SearchSpec{IDs: []string{}})
	require.NoError(t, err)
	assert.True(t, compiled.empty)
}

func TestCompile_Sort(t *testing.T) {
	t.Run("identity column descending", func(t *testing.T) {
		_, _, pageSQL, _ := compilePostgres(t, models.SearchSpec{Sort: models.Sort{Key: "username", Descending: true}})
		assert.Contains(t, pageSQL, `ORDER BY "u"."username" DESC, "u"."id" ASC`)
	})

	t.Run("returned attribute", func(t *testing.T) {
		_, _, pageSQL, args := compilePostgres(t, models.SearchSpec{
			Sort:         models.Sort{Key: "lastname"},
			ReturnFields: []string{"lastname"},
			Limit:        10,
		})
		assert.Contains(t, pageSQL, "ORDER BY COALESCE((SELECT MIN(av.value) FROM attribute_values av JOIN attribute_types t ON t.id = av.attribute_type_id WHERE av.user_id = u.id AND t.name = $2), '') ASC, \"u\".\"id\" ASC LIMIT 10")
		assert.Equal(t, []any{true, "lastname"}, args)
	})

	t.Run("attribute not returned", func(t *testing.T) {
		_, err := searchQueryBuilder{dialect: PostgresDialect}.compile(context.Background(), models.SearchSpec{
			Sort: models.Sort{Key: "lastname"},
		})
		require.ErrorIs(t, err, ErrInvalidArgument)
		assert.ErrorIs(t, err, models.ErrInvalidSortKey)
	})

	t.Run("injection attempt", func(t *testing.T) {
		_, err := searchQueryBuilder{dialect: PostgresDialect}.compile(context.Background(), models.SearchSpec{
			Sort: models.Sort{Key: `id"; DROP TABLE users; --`},
		})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestCompile_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		spec models.SearchSpec
	}{
		{name: "unknown operator", spec: models.SearchSpec{Comparisons: []models.Comparison{{Field: "a", Operator: "ne", Value: "1"}}}},
		{name: "bad timestamp", spec: models.SearchSpec{Comparisons: []models.Comparison{{Field: "updated_at", Operator: models.OperatorEq, Value: "yesterday"}}}},
		{name: "empty has field", spec: models.SearchSpec{HasFields: []string{" "}}},
		{name: "empty match field", spec: models.SearchSpec{MatchAllFields: map[string][]string{"": {"x"}}}},
		{name: "unknown active filter", spec: models.SearchSpec{Active: models.ActiveFilter(42)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := searchQueryBuilder{dialect: PostgresDialect}.compile(context.Background(), tt.spec)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestCompile_SQLiteDialect(t *testing.T) {
	compiled, err := searchQueryBuilder{dialect: SQLiteDialect}.compile(context.Background(), models.SearchSpec{
		Query:  "bob",
		Offset: 3,
	})
	require.NoError(t, err)

	pageSQL, _, err := compiled.page.ToSql()
	require.NoError(t, err)
	assert.Contains(t, pageSQL, `u.username LIKE ? ESCAPE '\'`)
	assert.Contains(t, pageSQL, "LIMIT 9223372036854775807 OFFSET 3")
	assert.NotContains(t, pageSQL, "$1")
}
