// Package export renders an audit report into a paginated plain-text
// document.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/domain/model"
)

// findingsPerPage bounds how many findings a single page carries
// before overflowing onto a continuation page.
const findingsPerPage = 5

// Document is a rendered report
type Document struct {
	Title string   `json:"title"`
	Pages []string `json:"pages"`
}

type Service struct{}

func New() *Service {
	return &Service{}
}

// Render builds the document from a report. Section order is fixed
// regardless of which sections are filled in.
func (s *Service) Render(report model.Report) (Document, error) {
	if report.Title == "" {
		return Document{}, goerr.New("report has no title", goerr.V("reportID", report.ID))
	}

	var b strings.Builder
	writeTitleBlock(&b, report)
	writeSection(&b, "Executive Summary", report.Summary)
	writeSection(&b, "Scope", report.Scope)
	writeSection(&b, "Methodology", report.Methodology)
	writeSection(&b, "Conclusions", report.Conclusions)
	writeSection(&b, "Observations", report.Observations)
	writeSection(&b, "Recommendations", report.Recommendations)

	pages := []string{b.String()}
	pages = append(pages, findingPages(report)...)

	doc := Document{Title: report.Title, Pages: pages}
	numberPages(&doc)
	return doc, nil
}

func writeTitleBlock(b *strings.Builder, report model.Report) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(b, "%s\n%s\n%s\n\n", rule, report.Title, rule)
	if report.AuditName != "" {
		fmt.Fprintf(b, "Audit:    %s\n", report.AuditName)
	}
	if !report.CreatedAt.IsZero() {
		fmt.Fprintf(b, "Date:     %s\n", report.CreatedAt.Format("2006-01-02"))
	}
	fmt.Fprintf(b, "Status:   %s\n\n", report.Status)
}

func writeSection(b *strings.Builder, heading, body string) {
	fmt.Fprintf(b, "%s\n%s\n", heading, strings.Repeat("-", len(heading)))
	if body == "" {
		b.WriteString("(not provided)\n\n")
		return
	}
	b.WriteString(body)
	b.WriteString("\n\n")
}

// findingPages renders the findings section, overflowing onto
// continuation pages past the per-page count.
func findingPages(report model.Report) []string {
	if len(report.Findings) == 0 {
		var b strings.Builder
		writeSection(&b, "Findings", "No findings recorded.")
		return []string{b.String()}
	}

	var pages []string
	for start := 0; start < len(report.Findings); start += findingsPerPage {
		end := start + findingsPerPage
		if end > len(report.Findings) {
			end = len(report.Findings)
		}

		var b strings.Builder
		heading := "Findings"
		if start > 0 {
			heading = "Findings (continued)"
		}
		fmt.Fprintf(&b, "%s\n%s\n\n", heading, strings.Repeat("-", len(heading)))
		for _, f := range report.Findings[start:end] {
			writeFinding(&b, f)
		}
		pages = append(pages, b.String())
	}
	return pages
}

func writeFinding(b *strings.Builder, f model.ReportFinding) {
	fmt.Fprintf(b, "Finding #%d [%s]\n", f.Number, f.Severity)
	fmt.Fprintf(b, "  Description:    %s\n", f.Description)
	if f.Recommendation != "" {
		fmt.Fprintf(b, "  Recommendation: %s\n", f.Recommendation)
	}
	if f.DueDate != nil {
		fmt.Fprintf(b, "  Due:            %s\n", f.DueDate.Format("2006-01-02"))
	}
	b.WriteString("\n")
}

func numberPages(doc *Document) {
	total := len(doc.Pages)
	for i := range doc.Pages {
		doc.Pages[i] += fmt.Sprintf("\nPage %d of %d\n", i+1, total)
	}
}

// Filename suggests a download name for the rendered document
func Filename(report model.Report, now time.Time) string {
	name := strings.ToLower(report.Title)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, name)
	name = strings.Trim(name, "-")
	if name == "" {
		name = fmt.Sprintf("report-%d", report.ID)
	}
	return fmt.Sprintf("%s-%s.txt", name, now.Format("20060102"))
}
