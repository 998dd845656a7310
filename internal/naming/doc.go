// Package naming classifies comic filename stems into canonical naming
// schemes and renders the resulting folder/filename plan.
//
// Classification is an ordered table of match rules ([Rules]); first match
// wins. The order encodes precedence: volume and annual patterns are more
// specific than the plain issue pattern, and the two standalone forms are
// fallbacks that defer to the numeric matchers by rejecting stems carrying
// issue or volume signatures.
//
// File boundaries: parsed.go (result type), rules.go (regexes and matchers),
// parser.go (cascade), format.go (title/issue formatting), plan.go
// (canonical rendering), collision.go (on-disk unique destinations).
package naming
