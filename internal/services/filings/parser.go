package filings

import (
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/strata/internal/models"
)

// sectionPattern matches SEC-style item headings ("Item 1.", "Item 7A.").
var sectionPattern = regexp.MustCompile(`(?i)\bitem\s+(\d{1,2}[a-z]?)\.`)

// Parser converts filing HTML into the normalized projections the engine
// consumes: collapsed plain text and a markdown rendering.
type Parser struct {
	logger arbor.ILogger
}

// NewParser creates a new filing parser.
func NewParser(logger arbor.ILogger) *Parser {
	return &Parser{logger: logger}
}

// NormalizeHTML strips markup from filing HTML and returns the plain-text and
// markdown projections. Text is whitespace-collapsed with entities decoded.
func (p *Parser) NormalizeHTML(html string) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	// Separator per element boundary avoids merging words across tags
	var builder strings.Builder
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		builder.WriteString(sel.Text())
		builder.WriteString(" ")
	})
	text := builder.String()
	if text == "" {
		text = doc.Text()
	}
	text = strings.Join(strings.Fields(text), " ")

	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(html)
	if err != nil {
		// Markdown is a presentation projection; text extraction is what the
		// engine depends on, so degrade rather than fail.
		if p.logger != nil {
			p.logger.Warn().Err(err).Msg("HTML to markdown conversion failed")
		}
		markdown = ""
	}

	return text, markdown, nil
}

// Parse produces the read-only plain-text projection of a stored filing.
func (p *Parser) Parse(filing *models.Filing) (*models.ParsedDocument, error) {
	if filing == nil {
		return nil, fmt.Errorf("filing is nil")
	}

	return &models.ParsedDocument{
		DocID:    filing.ID,
		FullText: filing.ContentText,
		Sections: detectSections(filing.ContentText),
	}, nil
}

// detectSections performs a coarse split on SEC item headings. Each section
// runs from its heading to the next heading (or end of document).
func detectSections(text string) map[string]models.Section {
	matches := sectionPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make(map[string]models.Section, len(matches))
	for i, match := range matches {
		start := match[0]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		item := strings.ToUpper(text[match[2]:match[3]])
		title := "Item " + item
		if _, exists := sections[title]; exists {
			// Tables of contents repeat headings; keep the longer body
			if end-start <= sections[title].EndIdx-sections[title].StartIdx {
				continue
			}
		}
		sections[title] = models.Section{
			Title:    title,
			Content:  text[start:end],
			StartIdx: start,
			EndIdx:   end,
		}
	}
	return sections
}
