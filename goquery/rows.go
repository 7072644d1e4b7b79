package goquery

import "github.com/PuerkitoBio/goquery"

// Rows returns the listing entries of a cause list.
//
// Table rows win: if the document has any tr element, every tr is a row.
// Otherwise the rows are the li elements of each ul or ol, list by list in
// document order. An item inside nested lists is returned once per enclosing
// list.
func Rows(doc *goquery.Document) []*goquery.Selection {
	var rows []*goquery.Selection

	if trs := doc.Find("tr"); trs.Length() > 0 {
		trs.Each(func(_ int, tr *goquery.Selection) {
			rows = append(rows, tr)
		})
		return rows
	}

	doc.Find("ul, ol").Each(func(_ int, list *goquery.Selection) {
		list.Find("li").Each(func(_ int, li *goquery.Selection) {
			rows = append(rows, li)
		})
	})
	return rows
}
