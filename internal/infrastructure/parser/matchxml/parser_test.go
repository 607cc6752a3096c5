package matchxml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azajakins/lfl-stats/internal/domain/match"
	"github.com/azajakins/lfl-stats/internal/domain/player"
)

func TestParser_ParseFile(t *testing.T) {
	rec, err := NewParser().ParseFile(filepath.Join("testdata", "spele.xml"))
	require.NoError(t, err)

	assert.Equal(t, "2025/7/18", rec.Date)
	assert.Equal(t, "Daugavas stadions", rec.Venue)
	assert.Equal(t, 640, rec.Attendance)
	require.Len(t, rec.Teams, 2)

	home := rec.Teams[0]
	assert.Equal(t, "Riga FC", home.Name)
	require.Len(t, home.Roster, 4)
	assert.Equal(t, match.RosterEntry{
		Number: 1, Name: "Janis", Surname: "Berzins", Role: player.RoleGoalkeeper,
	}, home.Roster[0])
	assert.Equal(t, player.RoleDefender, home.Roster[1].Role)
	assert.Equal(t, player.RoleAttacker, home.Roster[2].Role)

	assert.Equal(t, []int{1, 4, 7}, home.StartingLineup)
	assert.Equal(t, []match.Substitution{{Time: 2700, Out: 7, In: 9}}, home.Substitutions)
	assert.Equal(t, []match.Penalty{{Time: 1000, Number: 4}}, home.Penalties)

	require.Len(t, home.Goals, 2)
	assert.Equal(t, match.Goal{Time: 1200, Number: 7, OpenPlay: true, Assists: []int{4}}, home.Goals[0])
	assert.Equal(t, match.Goal{Time: 3100, Number: 9, OpenPlay: false}, home.Goals[1])

	away := rec.Teams[1]
	assert.Equal(t, "Ventspils", away.Name)
	require.Len(t, away.Goals, 1)
	assert.True(t, away.Goals[0].OpenPlay)

	require.Len(t, rec.Referees, 3)
	assert.Equal(t, match.Referee{Name: "Andris", Surname: "Ozols", Main: true}, rec.Referees[2])
	assert.False(t, rec.Referees[0].Main)

	require.NoError(t, rec.Validate())
}

func TestParser_ParseFile_MissingFile(t *testing.T) {
	_, err := NewParser().ParseFile(filepath.Join("testdata", "nav.xml"))
	require.Error(t, err)
}

func TestParser_ParseFile_MalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bojats.xml")
	require.NoError(t, os.WriteFile(path, []byte("<Spele><Komanda>"), 0o644))

	_, err := NewParser().ParseFile(path)
	require.ErrorIs(t, err, ErrMalformedFile)
}

func TestParser_ParseFile_UnknownRole(t *testing.T) {
	doc := `<Spele Laiks="2025/7/18">
  <Komanda Nosaukums="Riga FC">
    <Speletaji>
      <Speletajs Nr="1" Vards="Janis" Uzvards="Berzins" Loma="Z"/>
    </Speletaji>
  </Komanda>
</Spele>`

	path := filepath.Join(t.TempDir(), "loma.xml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := NewParser().ParseFile(path)
	require.ErrorIs(t, err, ErrMalformedFile)
	require.ErrorContains(t, err, `"Z"`)
}
