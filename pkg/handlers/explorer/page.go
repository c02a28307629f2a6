package explorer

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Height and Weight Linear Regression</title>
<style>
body { background: #f5f5f5; color: #1c3f60; font-family: sans-serif; margin: 0; padding: 20px; }
.layout { display: flex; flex-wrap: wrap; gap: 16px; max-width: 72rem; margin: 0 auto; }
.chart { flex: 3 1 36rem; }
.chart img { width: 100%; height: auto; }
.results { flex: 1 1 14rem; background: white; padding: 15px; border-radius: 5px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); align-self: flex-start; }
.results h3 { color: #0066cc; margin-bottom: 10px; }
.results p { margin: 5px 0; }
.equation { color: #0066cc; margin-left: 10px; }
table { border-collapse: collapse; margin: 20px auto; max-width: 72rem; width: 100%; }
th, td { border-bottom: 1px solid #e0e0e0; padding: 4px 8px; text-align: right; }
</style>
</head>
<body>
<div class="layout">
  <div class="chart">
    {{if .Snapshot.Observations}}<img src="/chart.svg?run={{.Snapshot.RunID}}" alt="Height and weight scatter plot">{{else}}<p>No observations.</p>{{end}}
  </div>
  <div class="results">
    <h3>Linear Regression Results:</h3>
    <p><strong>Slope (m):</strong> {{.Snapshot.Regression.SlopeFormatted}}</p>
    <p><strong>Intercept (b):</strong> {{.Snapshot.Regression.InterceptFormatted}}</p>
    <p><strong>Equation:</strong></p>
    <p class="equation">{{.Snapshot.Regression.Equation}}</p>
    {{with .Snapshot.Regression.Error}}<p><strong>Fit skipped:</strong> {{.}}</p>{{end}}
    <form method="post" action="/refresh"><button type="submit">Generate new sample</button></form>
  </div>
</div>
<table>
  <thead><tr><th>#</th><th>Height</th><th>Weight</th><th>BMI</th></tr></thead>
  <tbody>
  {{range $i, $o := .Snapshot.Observations}}<tr><td>{{$i}}</td><td>{{$o.HeightFormatted}}</td><td>{{$o.WeightFormatted}}</td><td>{{$o.BMIFormatted}}</td></tr>
  {{end}}
  </tbody>
</table>
</body>
</html>
`
