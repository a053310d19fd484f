// Package page locates the initialization script inside a fetched list page.
package page

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/sells-group/maplist-cli/internal/payload"
)

// ErrScriptNotFound means no script element on the page carries the
// initialization payload. Fatal to the whole conversion.
var ErrScriptNotFound = eris.New("page: no script element contains the initialization payload")

// FindInitScript scans the document's script elements and returns the text
// of the first one containing the initialization marker.
func FindInitScript(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", eris.Wrap(err, "page: parse html")
	}

	var script string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if strings.Contains(text, payload.InitStateMarker) {
			script = text
			return false
		}
		return true
	})

	if script == "" {
		return "", ErrScriptNotFound
	}
	return script, nil
}
