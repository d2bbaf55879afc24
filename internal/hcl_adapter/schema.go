package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2"
)

// rootSchema lists the blocks allowed at the top level of a config file.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "grammar", LabelNames: []string{"name"}},
	},
}

// grammarBlock is the body of a grammar block. Attributes stay unevaluated
// expressions so the loader can tell an omitted attribute from an empty one.
type grammarBlock struct {
	Source     hcl.Expression `hcl:"source,optional"`
	Inline     hcl.Expression `hcl:"inline,optional"`
	Start      hcl.Expression `hcl:"start,optional"`
	EndMarker  hcl.Expression `hcl:"end_marker,optional"`
	NilKeyword hcl.Expression `hcl:"nil_keyword,optional"`
	FollowMode hcl.Expression `hcl:"follow_mode,optional"`
	Rules      hcl.Expression `hcl:"rules,optional"`
}
