package vanilla

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	inlinePolicyOnce sync.Once
	inlinePolicy     *bluemonday.Policy
)

// InlineLabelPolicy allows a small set of inline formatting elements inside
// labels and strips everything else, scripts and event handlers included.
func InlineLabelPolicy() *bluemonday.Policy {
	inlinePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "small")
		policy.AllowAttrs("class").OnElements("span")
		policy.AllowElements("span")
		inlinePolicy = policy
	})
	return inlinePolicy
}
