package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/causelist/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowTexts(t *testing.T, html string) []string {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	texts := []string{}
	for _, row := range goquery.Rows(doc) {
		texts = append(texts, goquery.RowText(row))
	}
	return texts
}

func TestRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "table rows win over lists",
			html: `<table><tr><td>a</td></tr></table><ul><li>b</li></ul>`,
			want: []string{"a"},
		},
		{
			name: "list items when there are no tables",
			html: `<ul><li>a</li><li>b</li></ul><ol><li>c</li></ol>`,
			want: []string{"a", "b", "c"},
		},
		{
			name: "nested list items repeat once per enclosing list",
			html: `<ul><li>a<ul><li>b</li></ul></li></ul>`,
			want: []string{"a b", "b", "b"},
		},
		{
			name: "nested tables contribute their rows",
			html: `<table><tr><td>outer<table><tr><td>inner</td></tr></table></td></tr></table>`,
			want: []string{"outer inner", "inner"},
		},
		{
			name: "no tables or lists",
			html: `<p>1 CIV 123 of 2024</p><div>x</div>`,
			want: []string{},
		},
		{
			name: "text pieces joined with single spaces",
			html: `<table><tr><td>  1 </td><td><b>CIV</b>
				123</td></tr></table>`,
			want: []string{"1 CIV 123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, rowTexts(t, tt.html))
		})
	}
}
