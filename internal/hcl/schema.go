package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a rule file. Anything not listed
// here is rejected by the decoder.
type fileRoot struct {
	Grid  gridBlock    `hcl:"grid,block"`
	Rules []*ruleBlock `hcl:"rule,block"`
}

type gridBlock struct {
	Rows    int `hcl:"rows"`
	Columns int `hcl:"columns"`
}

// ruleBlock keeps the coordinates as raw expressions; they are evaluated
// once the grid size is known.
type ruleBlock struct {
	Mode string         `hcl:"mode,label"`
	From hcl.Expression `hcl:"from"`
	To   hcl.Expression `hcl:"to"`
}
