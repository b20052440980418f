// Package htmldoc renders the downloadable advisory documents as
// self-contained HTML files suitable for printing to PDF.
package htmldoc

import (
	"bytes"
	"html/template"
	"time"

	"startup-companion-be/internal/entity"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Georgia, serif; max-width: 800px; margin: 40px auto; color: #1a1a2e; line-height: 1.6; }
  h1 { color: #16213e; border-bottom: 3px solid #0f3460; padding-bottom: 12px; }
  h2 { color: #0f3460; margin-top: 32px; }
  .meta { color: #666; font-size: 0.9em; margin-bottom: 32px; }
  .section { margin-bottom: 24px; }
  ul { padding-left: 24px; }
  pre.kit { white-space: pre-wrap; font-family: inherit; }
  a { color: #0f3460; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="meta">Prepared for {{.BusinessName}} on {{.Date}}</div>
{{.Body}}
</body>
</html>
`))

type page struct {
	Title        string
	BusinessName string
	Date         string
	Body         template.HTML
}

func render(title, businessName string, body template.HTML) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, page{
		Title:        title,
		BusinessName: businessName,
		Date:         time.Now().Format("2 January 2006"),
		Body:         body,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var registrationTmpl = template.Must(template.New("registration").Parse(`
<div class="section">
<h2>Recommended Entity Type</h2>
<p>{{if .EntityType}}Based on your profile, you indicated a preference for a <strong>{{.EntityType}}</strong>.{{else}}For a {{if .TeamSize}}team of {{.TeamSize}}{{else}}new venture{{end}} in {{.Industry}}, a Private Limited Company is the most common choice for startups seeking funding; an LLP suits service firms that want lighter compliance.{{end}}</p>
</div>

<div class="section">
<h2>Documents Checklist</h2>
<ul>
  <li>PAN and Aadhaar of all directors/partners</li>
  <li>Passport-size photographs</li>
  <li>Proof of registered office address (utility bill, rent agreement, NOC)</li>
  <li>Digital Signature Certificate (DSC) for each director</li>
  <li>Director Identification Number (DIN) via SPICe+</li>
  <li>Draft MOA and AOA</li>
</ul>
</div>

<div class="section">
<h2>Step-by-Step Registration Process</h2>
<ol>
  <li>Obtain DSCs for all proposed directors</li>
  <li>Reserve the company name via SPICe+ Part A on the MCA portal</li>
  <li>File SPICe+ Part B with MOA, AOA, AGILE-PRO-S</li>
  <li>Receive the Certificate of Incorporation with PAN and TAN</li>
  <li>Open a current account and deposit subscription capital</li>
  <li>File INC-20A (declaration of commencement of business) within 180 days</li>
</ol>
</div>

<div class="section">
<h2>Official Links</h2>
<ul>
  <li>MCA portal: <a href="https://www.mca.gov.in">https://www.mca.gov.in</a></li>
  <li>SPICe+ form: <a href="https://www.mca.gov.in/content/mca/global/en/mca/e-filing/incorporation-services.html">Incorporation services</a></li>
  <li>Startup India: <a href="https://www.startupindia.gov.in">https://www.startupindia.gov.in</a></li>
</ul>
</div>

<div class="section">
<h2>Timeline and Costs</h2>
<p>Typical incorporation takes 7 to 15 working days. Government fees for a small private limited company are modest; professional fees vary. Budget separately for DSCs and notarization.</p>
</div>

<div class="section">
<h2>Post-Registration Compliance</h2>
<ul>
  <li>Appoint the first auditor within 30 days</li>
  <li>GST registration if turnover thresholds or interstate supply apply</li>
  <li>Professional tax and Shops &amp; Establishments registration per state{{if .Location}} ({{.Location}}){{end}}</li>
  <li>Maintain statutory registers and hold the first board meeting within 30 days</li>
</ul>
</div>
`))

// RegistrationGuide renders the company registration guide personalized with
// the founder's profile.
func RegistrationGuide(p *entity.BusinessProfile) ([]byte, error) {
	data := struct {
		EntityType string
		TeamSize   int
		Industry   string
		Location   string
	}{
		Industry: "your industry",
	}
	businessName := "your business"
	if p != nil {
		data.EntityType = p.EntityType
		data.TeamSize = p.TeamSize
		data.Location = p.Location
		if p.Industry != "" {
			data.Industry = p.Industry
		}
		if p.BusinessName != "" {
			businessName = p.BusinessName
		}
	}

	var body bytes.Buffer
	if err := registrationTmpl.Execute(&body, data); err != nil {
		return nil, err
	}
	return render("Company Registration Guide", businessName, template.HTML(body.String()))
}

// StartupKit wraps generated kit content in the document shell. The content
// is model output, rendered as preformatted text rather than trusted markup.
func StartupKit(p *entity.BusinessProfile, kitContent string) ([]byte, error) {
	businessName := "your business"
	if p != nil && p.BusinessName != "" {
		businessName = p.BusinessName
	}

	escaped := template.HTMLEscapeString(kitContent)
	body := template.HTML(`<pre class="kit">` + escaped + `</pre>`)
	return render("Personalized Startup Kit", businessName, body)
}
