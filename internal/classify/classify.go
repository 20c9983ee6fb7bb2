// Package classify assigns catalog category identifiers to an extracted
// product by running an ordered cascade of keyword rules over the product's
// combined text.
//
// The cascade is data, not code: each Group holds an ordered list of Rules
// (compound keywords before generic ones) and the first matching rule wins
// within its group. Independent groups may all contribute, so a product can
// be filed under both a tapware subtype and, say, a flooring family when its
// text genuinely mentions both.
//
// Output ordering follows group evaluation order and is fully deterministic
// for identical input text.
package classify

import "strings"

// Rule is a single keyword test inside a group.
//
// The rule matches when Keyword occurs in the corpus and none of the
// Exclude keywords do. Exclude exists so generic terms don't misfire: a
// bare "basin" rule must not claim a "basin mixer".
type Rule struct {
	Keyword  string   `json:"keyword"`
	Exclude  []string `json:"exclude,omitempty"`
	Category string   `json:"category"`
}

// Group is an ordered rule list for one product family. Evaluation stops at
// the first matching rule within the group.
type Group struct {
	Name  string `json:"name"`
	Rules []Rule `json:"rules"`
}

// Classifier evaluates the rule cascade. Construct once and reuse; all
// state is read-only after New.
type Classifier struct {
	groups    []Group
	ancestors map[string][]string

	// Last-resort brand fallback, applied only when no group matched.
	fallbackBrand string
	fallbackChain []string
}

// New builds a Classifier from an ordered group list and a category ->
// ancestor-chain map. fallbackBrand and fallbackChain configure the
// last-resort brand fallback; either may be empty to disable it.
func New(groups []Group, ancestors map[string][]string, fallbackBrand string, fallbackChain []string) *Classifier {
	return &Classifier{
		groups:        groups,
		ancestors:     ancestors,
		fallbackBrand: fallbackBrand,
		fallbackChain: fallbackChain,
	}
}

// Default returns a Classifier loaded with the built-in rule cascade.
func Default() *Classifier {
	return New(DefaultGroups(), DefaultAncestors(), FallbackBrand, FallbackChain())
}

// Classify concatenates the text fields into one lower-cased corpus and
// runs the cascade. brand never enters the corpus: brand names contain
// generic family words ("Nero Tapware", "Phoenix Tapware") that would
// satisfy keyword rules for every product of that brand; it feeds only the
// last-resort fallback check.
//
// Matched categories are emitted most specific first: the matched id, then
// its ancestor chain. Duplicates across groups are dropped, keeping the
// first occurrence. An empty result is valid; if additionally the detected
// brand equals the configured fallback brand, the brand's default chain is
// returned instead.
func (c *Classifier) Classify(name, shortDescription, longDescription, brand, sourceURL string) []string {
	corpus := buildCorpus(name, shortDescription, longDescription, sourceURL)

	var out []string
	seen := make(map[string]bool)
	emit := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
	}

	matched := false
	for _, g := range c.groups {
		for _, r := range g.Rules {
			if !ruleMatches(corpus, r) {
				continue
			}
			matched = true
			emit(r.Category)
			for _, anc := range c.ancestors[r.Category] {
				emit(anc)
			}
			break
		}
	}

	if !matched && c.fallbackBrand != "" && brand == c.fallbackBrand {
		for _, id := range c.fallbackChain {
			emit(id)
		}
	}

	return out
}

func ruleMatches(corpus string, r Rule) bool {
	if r.Keyword == "" || !strings.Contains(corpus, r.Keyword) {
		return false
	}
	for _, ex := range r.Exclude {
		if ex != "" && strings.Contains(corpus, ex) {
			return false
		}
	}
	return true
}

// buildCorpus joins and lower-cases the classifier inputs. Hyphens and
// underscores become spaces so URL slugs like /basin-mixers/ match compound
// keywords.
func buildCorpus(fields ...string) string {
	corpus := strings.ToLower(strings.Join(fields, " "))
	corpus = strings.ReplaceAll(corpus, "-", " ")
	corpus = strings.ReplaceAll(corpus, "_", " ")
	return corpus
}
