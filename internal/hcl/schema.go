package hcl

import "github.com/hashicorp/hcl/v2"

// componentBlock is the raw HCL shape of a `component` declaration:
//
//	component "gear" {
//	  seconds     = 0.5
//	  producer    = "machine"
//	  ingredients = { iron = 2 }
//	}
//
// All attributes are optional; a bare block declares a raw resource.
type componentBlock struct {
	Name        string         `hcl:"name,label"`
	Seconds     *float64       `hcl:"seconds,optional"`
	Producer    string         `hcl:"producer,optional"`
	Ingredients hcl.Expression `hcl:"ingredients,optional"`
}

// speedsBlock is the raw HCL shape of a `speeds` block. Its attributes are
// free-form category-name = multiplier pairs, so the body is kept opaque
// and walked with JustAttributes.
type speedsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// fileRoot decodes all supported top-level blocks from one catalog file.
type fileRoot struct {
	Components []*componentBlock `hcl:"component,block"`
	Speeds     *speedsBlock      `hcl:"speeds,block"`
	Remain     hcl.Body          `hcl:",remain"`
}
