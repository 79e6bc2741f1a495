package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSpecifications(t *testing.T) {
	p := Product{Specifications: `{"weight":"174g","cores":8,"screen_size":"6.1"}`}

	specs := p.ParseSpecifications()
	assert.Equal(t, []Spec{
		{Key: "cores", Value: "8"},
		{Key: "screen_size", Value: "6.1"},
		{Key: "weight", Value: "174g"},
	}, specs)
}

func TestParseSpecificationsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"not json", "screen: big"},
		{"json but not an object", `["a","b"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Specifications: tt.raw}
			assert.Empty(t, p.ParseSpecifications())
		})
	}
}
