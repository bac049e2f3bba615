package htmltext

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(t *testing.T, body string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body>" + body + "</body></html>"))
	require.NoError(t, err)
	return d
}

func TestInnerText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "Paragraphs become lines",
			html:     `<div class="x"><p>one</p><p>two</p></div>`,
			expected: "one\ntwo",
		},
		{
			name:     "Br breaks lines",
			html:     `<div class="x">first<br>second<br/>third</div>`,
			expected: "first\nsecond\nthird",
		},
		{
			name:     "Inline elements stay on one line",
			html:     `<div class="x"><span>job</span> <b>description</b></div>`,
			expected: "job description",
		},
		{
			name:     "Whitespace collapses",
			html:     "<div class=\"x\">\n   a \n\t b   </div>",
			expected: "a b",
		},
		{
			name:     "Scripts are skipped",
			html:     `<div class="x"><script>var a = 1;</script><p>text</p><style>p{}</style></div>`,
			expected: "text",
		},
		{
			name:     "Lists",
			html:     `<div class="x"><ul><li>Go</li><li>SQL</li></ul></div>`,
			expected: "Go\nSQL",
		},
		{
			name:     "Empty",
			html:     `<div class="x"></div>`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InnerText(doc(t, tt.html).Find(".x")))
		})
	}
}

func TestInnerText_Hebrew(t *testing.T) {
	d := doc(t, `<div class="x"><h3>תיאור המשרה</h3><p>פיתוח Backend</p></div>`)
	assert.Equal(t, "תיאור המשרה\nפיתוח Backend", InnerText(d.Find(".x")))
}
