package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBuilder(t *testing.T) {
	sql, args, err := Select("id", "name").
		From("teams").
		Where(Eq("name", "Riga FC")).
		OrderBy("points DESC", "name ASC").
		Limit(10).
		ToSQL()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM teams WHERE name = $1 ORDER BY points DESC, name ASC LIMIT 10", sql)
	assert.Equal(t, []any{"Riga FC"}, args)
}

func TestSelectBuilder_MultipleConditions(t *testing.T) {
	sql, args, err := Select("id").
		From("players").
		Where(Eq("team_id", int64(3)), Eq("number", 7)).
		ToSQL()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM players WHERE team_id = $1 AND number = $2", sql)
	assert.Equal(t, []any{int64(3), 7}, args)
}

func TestSelectBuilder_Bare(t *testing.T) {
	sql, args, err := Select("name").From("teams").ToSQL()

	require.NoError(t, err)
	assert.Equal(t, "SELECT name FROM teams", sql)
	assert.Empty(t, args)
}

func TestSelectBuilder_Invalid(t *testing.T) {
	_, _, err := Select().From("teams").ToSQL()
	require.Error(t, err)

	_, _, err = Select("id").ToSQL()
	require.Error(t, err)
}

func TestInsertBuilder(t *testing.T) {
	sql, args, err := InsertInto("teams").
		Columns("name", "games").
		Values("Riga FC", 0).
		Suffix("RETURNING id").
		ToSQL()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO teams (name, games) VALUES ($1, $2) RETURNING id", sql)
	assert.Equal(t, []any{"Riga FC", 0}, args)
}

func TestInsertBuilder_ValueCountMismatch(t *testing.T) {
	_, _, err := InsertInto("teams").
		Columns("name", "games").
		Values("Riga FC").
		ToSQL()

	require.ErrorContains(t, err, "expected 2")
}

func TestUpdateBuilder(t *testing.T) {
	sql, args, err := Update("teams").
		Set("points", 5).
		Set("games", 1).
		Where(Eq("id", int64(7))).
		ToSQL()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE teams SET points = $1, games = $2 WHERE id = $3", sql)
	assert.Equal(t, []any{5, 1, int64(7)}, args)
}

func TestUpdateBuilder_NoSets(t *testing.T) {
	_, _, err := Update("teams").Where(Eq("id", 1)).ToSQL()
	require.Error(t, err)
}
