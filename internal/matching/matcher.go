// Package matching scores job descriptions against a user's skill list.
package matching

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/maxaizer/skillmatch/internal/domain/models"
)

const (
	strongMatchThreshold   = 70
	moderateMatchThreshold = 40
)

// Match reports the share of skills found as whole words in description.
// Skills are compared case-insensitively, blank entries are ignored and duplicates count once.
func Match(description string, skills []string) models.MatchResult {
	matched, total := split(description, skills, nil)
	return models.MatchResult{
		Percentage:    percentage(len(matched), total),
		MatchedSkills: matched,
	}
}

// Gap splits skills into those found in description and those missing from it.
func Gap(description string, skills []string) models.SkillGap {
	missing := make([]string, 0)
	matched, total := split(description, skills, &missing)
	p := percentage(len(matched), total)
	return models.SkillGap{
		Percentage: p,
		Matched:    matched,
		Missing:    missing,
		Level:      levelOf(p),
	}
}

func split(description string, skills []string, missing *[]string) ([]string, int) {
	matched := make([]string, 0)
	text := normalize(description)
	seen := make(map[string]struct{}, len(skills))

	for _, skill := range skills {
		key := normalize(skill)
		label := strings.TrimSpace(strings.ToValidUTF8(skill, ""))
		if key == "" {
			continue
		}
		if _, duplicate := seen[key]; duplicate {
			continue
		}
		seen[key] = struct{}{}

		if containsWord(text, key) {
			matched = append(matched, label)
		} else if missing != nil {
			*missing = append(*missing, label)
		}
	}
	return matched, len(seen)
}

func percentage(matched, total int) int {
	if total == 0 {
		return 0
	}
	p := int(math.Round(100 * float64(matched) / float64(total)))
	return min(max(p, 0), 100)
}

func levelOf(percentage int) models.GapLevel {
	switch {
	case percentage >= strongMatchThreshold:
		return models.GapLevelStrong
	case percentage >= moderateMatchThreshold:
		return models.GapLevelModerate
	default:
		return models.GapLevelWeak
	}
}

// normalize drops invalid UTF-8, lowercases s and collapses whitespace runs into single spaces.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.ToValidUTF8(s, ""))), " ")
}

// containsWord reports whether word occurs in text without being glued to other word characters.
// Edges of word that are not letters or digits themselves (".NET", "C++") need no boundary.
// A run of '+' or '#' right after the word extends it ("C" is not found in "C++") unless
// a letter or digit follows the run ("Java" is found in "Java+Spring").
func containsWord(text, word string) bool {
	if text == "" || word == "" {
		return false
	}

	first, _ := utf8.DecodeRuneInString(word)
	last, _ := utf8.DecodeLastRuneInString(word)
	checkLeft, checkRight := isWordRune(first), isWordRune(last)

	for offset := 0; offset <= len(text)-len(word); {
		idx := strings.Index(text[offset:], word)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(word)

		leftOK := true
		if checkLeft && start > 0 {
			before, _ := utf8.DecodeLastRuneInString(text[:start])
			leftOK = !isWordRune(before)
		}

		rightOK := !checkRight || !gluedSuffix(text[end:])

		if leftOK && rightOK {
			return true
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

// gluedSuffix reports whether rest starts with a word character or with a '+'/'#' run
// that ends the token, as in "++" or "#".
func gluedSuffix(rest string) bool {
	if rest == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	if isWordRune(r) {
		return true
	}
	if !isSuffixRune(r) {
		return false
	}
	tail := strings.TrimLeftFunc(rest, isSuffixRune)
	if tail == "" {
		return true
	}
	next, _ := utf8.DecodeRuneInString(tail)
	return !isWordRune(next)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isSuffixRune(r rune) bool {
	return r == '+' || r == '#'
}
