// Package model contains domain models passed between layers.
package model

import (
	"strconv"
	"strings"
)

// Package is one raw sensor reading: a workout type code and its positional
// values (action, duration, weight, then discipline-specific fields).
type Package struct {
	ID     string    `json:"id,omitempty" yaml:"id,omitempty" koanf:"id"` // optional, for tracing
	Code   string    `json:"code" yaml:"code" koanf:"code"`
	Values []float64 `json:"values" yaml:"values,flow" koanf:"values"`
}

// String renders the package as CODE[v1 v2 ...].
func (p Package) String() string {
	var b strings.Builder
	b.WriteString(p.Code)
	b.WriteByte('[')
	for i, v := range p.Values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}

// DemoPackages returns the reference batch: one swim, one run and one walk.
func DemoPackages() []Package {
	return []Package{
		{Code: "SWM", Values: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Values: []float64{15000, 1, 75}},
		{Code: "WLK", Values: []float64{9000, 1, 75, 180}},
	}
}
