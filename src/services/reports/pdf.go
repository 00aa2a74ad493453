package reports

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

var offersPDFTmpl = template.Must(template.New("offersPdf").Parse(`<!DOCTYPE html>
<html>
<head><style>
body { font-family: Arial, sans-serif; margin: 24px; }
h1 { font-size: 18px; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #888; padding: 6px 10px; font-size: 12px; text-align: left; }
th { background: #4472c4; color: #fff; }
</style></head>
<body>
<h1>Placement Offers by Company</h1>
<p>Generated {{.GeneratedAt}}</p>
<table>
<tr><th>Company</th><th>Job Role</th><th>Student Code</th><th>Student Name</th><th>CTC (LPA)</th></tr>
{{range .Rows}}<tr><td>{{.CompanyName}}</td><td>{{.JobTitle}}</td><td>{{.StudentCode}}</td><td>{{.StudentName}}</td><td>{{.CTC}}</td></tr>
{{end}}
</table>
</body>
</html>`))

// RenderOffersHTML builds the printable report page.
func RenderOffersHTML(rows []OfferRow) (string, error) {
	var buf bytes.Buffer
	err := offersPDFTmpl.Execute(&buf, struct {
		GeneratedAt string
		Rows        []OfferRow
	}{
		GeneratedAt: time.Now().Format("2 Jan 2006 15:04"),
		Rows:        rows,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// HTMLToPDF prints an HTML document to PDF bytes with headless Chrome.
func HTMLToPDF(parent context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(parent, 60*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true), // needed when running as root in a container
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}
