package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/causelist"
	"github.com/fwojciec/causelist/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements causelist.Converter at compile time.
var _ causelist.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts the list heading", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<h1>Cause List for 09-03-2024</h1>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Cause List for 09-03-2024")
	})

	t.Run("converts listing items", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>1. CIV 123 of 2024</li><li>2. CRI 45/2023</li></ul>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "CIV 123 of 2024")
		assert.Contains(t, md, "CRI 45/2023")
	})

	t.Run("keeps relative links without a domain", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p><a href="https://example.com/a.pdf">Order</a></p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Order](https://example.com/a.pdf)")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Sr. No.</th><th>Case</th></tr></thead>
<tbody><tr><td>1</td><td>CIV 123 of 2024</td></tr><tr><td>2</td><td>CRI 45/2023</td></tr></tbody>
</table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		// Table cells may have padding for alignment, so check for content
		assert.Contains(t, md, "Sr. No.")
		assert.Contains(t, md, "CIV 123 of 2024")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  \n")

		require.Error(t, err)
		assert.Equal(t, causelist.EINVALID, causelist.ErrorCode(err))
	})

	t.Run("renders a cause list table with absolute order links", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Sr. No.</th><th>Court</th><th>Case</th><th>Order</th></tr></thead>
<tbody>
<tr><td>1</td><td>Court No. 1</td><td>CIV 123 of 2024</td><td><a href="/ecourts/pdf/1.pdf">View PDF</a></td></tr>
</tbody>
</table>`

		conv := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain("https://services.ecourts.gov.in"))
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Court No. 1")
		assert.Contains(t, md, "[View PDF](https://services.ecourts.gov.in/ecourts/pdf/1.pdf)")
	})
}
