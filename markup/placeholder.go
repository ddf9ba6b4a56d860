package markup

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	imgTagRe           = regexp.MustCompile(`(?is)<img\b[^>]*>`)
	srcAttrRe          = regexp.MustCompile(`(?is)\bsrc\s*=\s*("([^"]*)"|'([^']*)')`)
	altAttrRe          = regexp.MustCompile(`(?is)\balt\s*=\s*("([^"]*)"|'([^']*)')`)
	placeholderValueRe = regexp.MustCompile(`^\[?(\d+)\]?$`)
)

// EncodePlaceholders replaces every <img> src URL with a sequential 1-based
// placeholder number in document order and returns the rewritten markup
// together with the original URLs in the same order.
func EncodePlaceholders(input string) (string, []string) {
	var urls []string
	counter := 0
	encoded := imgTagRe.ReplaceAllStringFunc(input, func(tag string) string {
		loc := srcAttrRe.FindStringSubmatchIndex(tag)
		if loc == nil {
			return tag
		}
		counter++
		urls = append(urls, attrValue(tag, loc))
		quote := tag[loc[2]]
		return tag[:loc[2]] + string(quote) + strconv.Itoa(counter) + string(quote) + tag[loc[3]:]
	})
	return encoded, urls
}

// ExtractPlaceholders returns the numeric placeholder values found in <img>
// src attributes, in document order. Values are accepted bare ("1") or
// bracket-wrapped ("[1]"). Non-numeric src values are someone else's
// concern and are skipped.
func ExtractPlaceholders(input string) []int {
	var numbers []int
	for _, tag := range imgTagRe.FindAllString(input, -1) {
		loc := srcAttrRe.FindStringSubmatchIndex(tag)
		if loc == nil {
			continue
		}
		match := placeholderValueRe.FindStringSubmatch(strings.TrimSpace(attrValue(tag, loc)))
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}

// ExtractImageSources returns the raw src attribute values of every <img>
// tag in document order. Tags without a src attribute are skipped.
func ExtractImageSources(input string) []string {
	var sources []string
	for _, tag := range imgTagRe.FindAllString(input, -1) {
		loc := srcAttrRe.FindStringSubmatchIndex(tag)
		if loc == nil {
			continue
		}
		sources = append(sources, attrValue(tag, loc))
	}
	return sources
}

// ExtractImageAlts returns the non-empty alt attribute values of every
// <img> tag in document order.
func ExtractImageAlts(input string) []string {
	var alts []string
	for _, tag := range imgTagRe.FindAllString(input, -1) {
		loc := altAttrRe.FindStringSubmatchIndex(tag)
		if loc == nil {
			continue
		}
		if value := attrValue(tag, loc); strings.TrimSpace(value) != "" {
			alts = append(alts, value)
		}
	}
	return alts
}

// IsPlaceholderValue reports whether value is a numeric placeholder,
// optionally bracket-wrapped. The empty string is not a placeholder.
func IsPlaceholderValue(value string) bool {
	return placeholderValueRe.MatchString(strings.TrimSpace(value))
}

// attrValue extracts the quoted attribute content from a submatch index
// produced by srcAttrRe or altAttrRe: group 2 holds double-quoted content,
// group 3 single-quoted.
func attrValue(tag string, loc []int) string {
	if loc[4] >= 0 {
		return tag[loc[4]:loc[5]]
	}
	if loc[6] >= 0 {
		return tag[loc[6]:loc[7]]
	}
	return ""
}
