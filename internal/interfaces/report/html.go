// Package report renders the computed leaderboards into presentation
// documents. It never recomputes a metric, rows arrive pre-derived.
package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/valyala/bytebufferpool"

	"github.com/azajakins/lfl-stats/internal/usecase"
)

const htmlDocument = `<!DOCTYPE html>
<html lang="en">
<head>
  <title>LFL statistics</title>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link rel="stylesheet" href="https://maxcdn.bootstrapcdn.com/bootstrap/3.4.1/css/bootstrap.min.css">
</head>
<body>

<nav class="navbar navbar-expand-lg navbar-light bg-light">
    <a class="btn btn-primary" href="#club">Club table</a>
    <a class="btn btn-primary" href="#best_striker">Best striker</a>
    <a class="btn btn-primary" href="#mvp">MVP</a>
    <a class="btn btn-primary" href="#goalkeeper">Best goalkeeper</a>
    <a class="btn btn-primary" href="#hard_work">Most hardworking</a>
    <a class="btn btn-primary" href="#popular">Most popular club</a>
</nav>

<table class="table table-hover table-responsive table-sm" id="club">
  <thead>
    <tr>
      <th scope="col">Position</th>
      <th scope="col">Club</th>
      <th scope="col">Played</th>
      <th scope="col">Won</th>
      <th scope="col">Lost</th>
      <th scope="col">Won (OT)</th>
      <th scope="col">Lost (OT)</th>
      <th scope="col">GF</th>
      <th scope="col">GA</th>
      <th scope="col">GD</th>
      <th scope="col">Points</th>
    </tr>
  </thead>
  <tbody>
{{- range $i, $row := .TeamStandings}}
    <tr>
      <th scope="row">{{position $i}}</th>
      <td>{{$row.Name}}</td>
      <td>{{$row.Games}}</td>
      <td>{{$row.Wins}}</td>
      <td>{{$row.Losses}}</td>
      <td>{{$row.OvertimeWins}}</td>
      <td>{{$row.OvertimeLosses}}</td>
      <td>{{$row.GoalsFor}}</td>
      <td>{{$row.GoalsAgainst}}</td>
      <td>{{$row.GoalDifference}}</td>
      <td>{{$row.Points}}</td>
    </tr>
{{- end}}
  </tbody>
</table>

<table class="table table-hover table-responsive table-sm" id="best_striker">
  <thead>
    <tr>
      <th scope="col">#</th>
      <th scope="col">Player</th>
      <th scope="col">Club</th>
      <th scope="col">Points</th>
      <th scope="col">Goals (penalty)</th>
      <th scope="col">Assists</th>
      <th scope="col">Games played</th>
    </tr>
  </thead>
  <tbody>
{{- range $i, $row := .TopScorers}}
    <tr>
      <th scope="row">{{position $i}}</th>
      <td>{{$row.Name}} {{$row.Surname}} ({{$row.Number}})</td>
      <td>{{$row.Team}}</td>
      <td>{{$row.Points}}</td>
      <td>{{$row.TotalGoals}} ({{$row.PenaltyGoals}})</td>
      <td>{{$row.Assists}}</td>
      <td>{{$row.Games}}</td>
    </tr>
{{- end}}
  </tbody>
</table>

<table class="table table-hover table-responsive table-sm" id="mvp">
  <thead>
    <tr>
      <th scope="col">#</th>
      <th scope="col">Player</th>
      <th scope="col">Club</th>
      <th scope="col">Points/h</th>
      <th scope="col">Points</th>
      <th scope="col">Games played</th>
      <th scope="col">Minutes on the field</th>
    </tr>
  </thead>
  <tbody>
{{- range $i, $row := .MostValuable}}
    <tr>
      <th scope="row">{{position $i}}</th>
      <td>{{$row.Name}} {{$row.Surname}} ({{$row.Number}})</td>
      <td>{{$row.Team}}</td>
      <td>{{rate $row.PointsPerHour}}</td>
      <td>{{$row.Points}}</td>
      <td>{{$row.Games}}</td>
      <td>{{minutes $row.MinutesOnField}}</td>
    </tr>
{{- end}}
  </tbody>
</table>

<table class="table table-hover table-responsive table-sm" id="goalkeeper">
  <thead>
    <tr>
      <th scope="col">#</th>
      <th scope="col">Player</th>
      <th scope="col">Club</th>
      <th scope="col">Goals against/h</th>
      <th scope="col">Goals against</th>
      <th scope="col">Games played</th>
      <th scope="col">Minutes on the field</th>
    </tr>
  </thead>
  <tbody>
{{- range $i, $row := .BestGoalkeepers}}
    <tr>
      <th scope="row">{{position $i}}</th>
      <td>{{$row.Name}} {{$row.Surname}} ({{$row.Number}})</td>
      <td>{{$row.Team}}</td>
      <td>{{rate $row.GoalsAgainstPerHour}}</td>
      <td>{{$row.GoalsAgainst}}</td>
      <td>{{$row.Games}}</td>
      <td>{{minutes $row.MinutesOnField}}</td>
    </tr>
{{- end}}
  </tbody>
</table>

<table class="table table-hover table-responsive table-sm" id="hard_work">
  <thead>
    <tr>
      <th scope="col">#</th>
      <th scope="col">Player</th>
      <th scope="col">Club</th>
      <th scope="col">Minutes on the field</th>
    </tr>
  </thead>
  <tbody>
{{- range $i, $row := .MostMinutes}}
    <tr>
      <th scope="row">{{position $i}}</th>
      <td>{{$row.Name}} {{$row.Surname}} ({{$row.Number}})</td>
      <td>{{$row.Team}}</td>
      <td>{{minutes $row.MinutesOnField}}</td>
    </tr>
{{- end}}
  </tbody>
</table>

<table class="table table-hover table-responsive table-sm" id="popular">
  <thead>
    <tr>
      <th scope="col">Position</th>
      <th scope="col">Club</th>
      <th scope="col">Avg attendance</th>
    </tr>
  </thead>
  <tbody>
{{- range $i, $row := .TeamPopularity}}
    <tr>
      <th scope="row">{{position $i}}</th>
      <td>{{$row.Name}}</td>
      <td>{{rate $row.AverageAttendance}}</td>
    </tr>
{{- end}}
  </tbody>
</table>

</body>
</html>
`

var htmlTemplate = template.Must(template.New("leaderboards").Funcs(template.FuncMap{
	"position": func(i int) int { return i + 1 },
	"rate":     func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"minutes":  func(v float64) string { return fmt.Sprintf("%.1f", v) },
}).Parse(htmlDocument))

// RenderHTML writes the six leaderboards as one HTML document.
func RenderHTML(w io.Writer, boards usecase.Leaderboards) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := htmlTemplate.Execute(buf, boards); err != nil {
		return fmt.Errorf("render leaderboards html: %w", err)
	}
	if _, err := w.Write(buf.B); err != nil {
		return fmt.Errorf("write leaderboards html: %w", err)
	}

	return nil
}
