package model

import (
	"regexp"
	"strings"
)

// VersionPlaceholder is replaced by the target version when a rule is applied
const VersionPlaceholder = "{version}"

// DefaultTool is the package manager whose "add" command examples are rewritten
const DefaultTool = "corral"

// SubstitutionRule is a search pattern and its replacement template. The
// template follows regexp.Expand syntax and may contain VersionPlaceholder.
type SubstitutionRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// DefaultRules returns the rules for repo, in the order they are applied:
//
//  1. <repo>@X.Y.Z
//  2. <tool> add github.com/<repo>.git -version X.Y.Z (or -v X.Y.Z)
func DefaultRules(repo RepoID, tool string) []SubstitutionRule {
	if tool == "" {
		tool = DefaultTool
	}

	quoted := regexp.QuoteMeta(repo.String())
	literal := escapeReplacement(repo.String())

	return []SubstitutionRule{
		{
			// The leading group keeps "other-owner/repo@..." style references
			// to different repositories out of the match.
			Pattern:     regexp.MustCompile(`(^|[^A-Za-z0-9_.\-])` + quoted + `@\d+\.\d+\.\d+`),
			Replacement: "${1}" + literal + "@" + VersionPlaceholder,
		},
		{
			Pattern:     regexp.MustCompile(regexp.QuoteMeta(tool) + ` add github\.com/` + quoted + `\.git -(-version|v) \d+\.\d+\.\d+`),
			Replacement: escapeReplacement(tool) + " add github.com/" + literal + ".git -${1} " + VersionPlaceholder,
		},
	}
}

// Rewrite applies rules in order to the whole text
func Rewrite(text string, rules []SubstitutionRule, version Version) string {
	v := escapeReplacement(version.String())
	for _, rule := range rules {
		replacement := strings.ReplaceAll(rule.Replacement, VersionPlaceholder, v)
		text = rule.Pattern.ReplaceAllString(text, replacement)
	}
	return text
}

func escapeReplacement(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
