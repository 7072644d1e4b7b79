package mock

import "github.com/fwojciec/causelist"

var _ causelist.Converter = (*Converter)(nil)

// Converter is a mock implementation of causelist.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
