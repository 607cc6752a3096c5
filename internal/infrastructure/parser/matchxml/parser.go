// Package matchxml decodes LFL match files: one <Spele> document per
// match, Latvian attribute names, event times in seconds from kickoff.
package matchxml

import (
	"encoding/xml"
	"os"

	crerr "github.com/cockroachdb/errors"

	"github.com/azajakins/lfl-stats/internal/domain/match"
	"github.com/azajakins/lfl-stats/internal/domain/player"
)

var ErrMalformedFile = crerr.New("malformed match file")

type xmlGame struct {
	XMLName    xml.Name     `xml:"Spele"`
	Venue      string       `xml:"Vieta,attr"`
	Date       string       `xml:"Laiks,attr"`
	Attendance int          `xml:"Skatitaji,attr"`
	Teams      []xmlTeam    `xml:"Komanda"`
	Referees   []xmlReferee `xml:"T"`
	MainRef    *xmlReferee  `xml:"VT"`
}

type xmlTeam struct {
	Name          string            `xml:"Nosaukums,attr"`
	Players       []xmlPlayer       `xml:"Speletaji>Speletajs"`
	Lineup        []xmlNumber       `xml:"Pamatsastavs>Speletajs"`
	Goals         []xmlGoal         `xml:"Varti>VG"`
	Substitutions []xmlSubstitution `xml:"Mainas>Maina"`
	Penalties     []xmlPenalty      `xml:"Sodi>Sods"`
}

type xmlPlayer struct {
	Number  int    `xml:"Nr,attr"`
	Name    string `xml:"Vards,attr"`
	Surname string `xml:"Uzvards,attr"`
	Role    string `xml:"Loma,attr"`
}

type xmlNumber struct {
	Number int `xml:"Nr,attr"`
}

type xmlGoal struct {
	Time    int         `xml:"Laiks,attr"`
	Number  int         `xml:"Nr,attr"`
	Kick    string      `xml:"Sitiens,attr"`
	Assists []xmlNumber `xml:"P"`
}

type xmlSubstitution struct {
	Time int `xml:"Laiks,attr"`
	Out  int `xml:"NoLaukuma,attr"`
	In   int `xml:"Laukuma,attr"`
}

type xmlPenalty struct {
	Time   int `xml:"Laiks,attr"`
	Number int `xml:"Nr,attr"`
}

type xmlReferee struct {
	Name    string `xml:"Vards,attr"`
	Surname string `xml:"Uzvards,attr"`
}

// penaltyKick marks a goal scored from a penalty kick rather than
// open play.
const penaltyKick = "P"

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) ParseFile(path string) (match.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return match.Record{}, crerr.Wrapf(err, "open match file %s", path)
	}
	defer func() {
		_ = f.Close()
	}()

	var game xmlGame
	if err := xml.NewDecoder(f).Decode(&game); err != nil {
		return match.Record{}, crerr.WithDetail(
			crerr.Wrapf(ErrMalformedFile, "decode %s: %v", path, err),
			"expected a <Spele> document",
		)
	}

	return toRecord(game)
}

func toRecord(game xmlGame) (match.Record, error) {
	rec := match.Record{
		Date:       game.Date,
		Venue:      game.Venue,
		Attendance: game.Attendance,
	}

	for _, ref := range game.Referees {
		rec.Referees = append(rec.Referees, match.Referee{Name: ref.Name, Surname: ref.Surname})
	}
	if game.MainRef != nil {
		rec.Referees = append(rec.Referees, match.Referee{
			Name:    game.MainRef.Name,
			Surname: game.MainRef.Surname,
			Main:    true,
		})
	}

	for _, t := range game.Teams {
		sheet, err := toTeamSheet(t)
		if err != nil {
			return match.Record{}, err
		}
		rec.Teams = append(rec.Teams, sheet)
	}

	return rec, nil
}

func toTeamSheet(t xmlTeam) (match.TeamSheet, error) {
	sheet := match.TeamSheet{Name: t.Name}

	for _, entry := range t.Players {
		role, err := player.ParseRole(entry.Role)
		if err != nil {
			return match.TeamSheet{}, crerr.Wrapf(ErrMalformedFile,
				"team %s player %d: %v", t.Name, entry.Number, err)
		}
		sheet.Roster = append(sheet.Roster, match.RosterEntry{
			Number:  entry.Number,
			Name:    entry.Name,
			Surname: entry.Surname,
			Role:    role,
		})
	}

	for _, entry := range t.Lineup {
		sheet.StartingLineup = append(sheet.StartingLineup, entry.Number)
	}

	for _, sub := range t.Substitutions {
		sheet.Substitutions = append(sheet.Substitutions, match.Substitution{
			Time: sub.Time,
			Out:  sub.Out,
			In:   sub.In,
		})
	}

	for _, pen := range t.Penalties {
		sheet.Penalties = append(sheet.Penalties, match.Penalty{Time: pen.Time, Number: pen.Number})
	}

	for _, goal := range t.Goals {
		converted := match.Goal{
			Time:     goal.Time,
			Number:   goal.Number,
			OpenPlay: goal.Kick != penaltyKick,
		}
		for _, assist := range goal.Assists {
			converted.Assists = append(converted.Assists, assist.Number)
		}
		sheet.Goals = append(sheet.Goals, converted)
	}

	return sheet, nil
}
