package pdf

import (
	"bytes"
	"html/template"

	"sanayi_portal_backend/internal/payments/transport"
)

var scheduleTmpl = template.Must(template.New("schedule").Parse(`<!DOCTYPE html>
<html lang="tr">
<head>
<meta charset="utf-8">
<style>
  body { font-family: Arial, Helvetica, sans-serif; font-size: 12px; color: #1a1a2e; }
  h1 { font-size: 18px; margin-bottom: 2px; }
  .subtitle { color: #666; margin-bottom: 16px; }
  table { width: 100%; border-collapse: collapse; }
  th, td { border: 1px solid #d0d0d0; padding: 6px 10px; text-align: left; }
  th { background: #16213e; color: #fff; }
  tr:nth-child(even) td { background: #f4f4f8; }
  .amount { text-align: right; }
  tfoot td { font-weight: bold; background: #e8e8f0; }
</style>
</head>
<body>
<h1>Model Sanayi Merkezi</h1>
<div class="subtitle">Ödeme Planı</div>
<table>
  <thead>
    <tr><th>No</th><th>Tarih</th><th>Açıklama</th><th class="amount">Tutar (TL)</th></tr>
  </thead>
  <tbody>
  {{range .Items}}
    <tr>
      <td>{{.InstallmentNo}}</td>
      <td>{{.Date}}</td>
      <td>{{.Description}}</td>
      <td class="amount">{{printf "%.0f" .Amount}}</td>
    </tr>
  {{end}}
  </tbody>
  <tfoot>
    <tr><td colspan="3">Toplam</td><td class="amount">{{printf "%.0f" .TotalAmount}}</td></tr>
  </tfoot>
</table>
</body>
</html>`))

// RenderScheduleHTML produces the printable payment schedule document fed
// to Gotenberg.
func RenderScheduleHTML(plan transport.PaymentPlanResponse) ([]byte, error) {
	var buf bytes.Buffer
	if err := scheduleTmpl.Execute(&buf, plan); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
