package markup

import (
	"fmt"
	"strings"
)

// voidTags never receive a matching closing tag and are excluded from the
// balance stack.
var voidTags = map[string]bool{
	"img": true, "br": true, "hr": true, "input": true, "meta": true,
	"link": true, "area": true, "base": true, "col": true, "embed": true,
	"source": true, "track": true, "wbr": true,
}

// shortcodeLookback bounds how far behind a '<' the syntax pass searches
// for an unterminated '[' before treating the position as shortcode text.
const shortcodeLookback = 120

// ValidateTagBalance scans markup for unclosed or mismatched tags and for
// malformed attribute quoting. It never fails on malformed input; every
// defect becomes a positioned Error in the result.
func ValidateTagBalance(input string) Result {
	if strings.TrimSpace(input) == "" {
		return Result{
			Errors: []Error{{
				Kind:     KindEmptyContent,
				Message:  "document has no content",
				Position: -1,
			}},
		}
	}

	errs := scanBalance(input)
	errs = append(errs, scanTagSyntax(input)...)
	return Result{Valid: len(errs) == 0, Errors: errs}
}

type tagToken struct {
	name        string
	offset      int
	closing     bool
	selfClosing bool
}

func scanBalance(input string) []Error {
	var errs []Error
	var stack []tagToken

	for _, tok := range scanTags(input) {
		if tok.selfClosing {
			continue
		}
		if !tok.closing {
			stack = append(stack, tok)
			continue
		}
		if len(stack) == 0 {
			errs = append(errs, Error{
				Kind:     KindStrayClosingTag,
				Message:  fmt.Sprintf("closing tag </%s> has no matching opening tag", tok.name),
				Position: tok.offset,
			})
			continue
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.name == tok.name {
			continue
		}

		errs = append(errs, Error{
			Kind:     KindMismatchedTag,
			Message:  fmt.Sprintf("closing tag </%s> does not match opening tag <%s>", tok.name, top.name),
			Position: tok.offset,
		})

		// Recovery: if the intended opening tag is deeper in the stack,
		// discard everything above it so one mistake does not cascade.
		found := -1
		for k := len(stack) - 1; k >= 0; k-- {
			if stack[k].name == tok.name {
				found = k
				break
			}
		}
		if found >= 0 {
			stack = stack[:found]
		} else {
			stack = append(stack, top)
		}
	}

	for _, tok := range stack {
		errs = append(errs, Error{
			Kind:     KindUnclosedTag,
			Message:  fmt.Sprintf("tag <%s> is never closed", tok.name),
			Position: tok.offset,
		})
	}
	return errs
}

// scanTags tokenizes every complete tag, skipping comments, CDATA, and
// doctype/processing-instruction spans.
func scanTags(input string) []tagToken {
	var tokens []tagToken
	i := 0
	for i < len(input) {
		lt := strings.IndexByte(input[i:], '<')
		if lt < 0 {
			break
		}
		pos := i + lt
		rest := input[pos:]

		if skip, next := skipNonTagSpan(input, pos, rest); skip {
			if next < 0 {
				break
			}
			i = next
			continue
		}

		j := pos + 1
		closing := false
		if j < len(input) && input[j] == '/' {
			closing = true
			j++
		}
		nameStart := j
		if nameStart >= len(input) || !isNameStart(input[nameStart]) {
			i = pos + 1
			continue
		}
		for j < len(input) && isNameByte(input[j]) {
			j++
		}
		name := strings.ToLower(input[nameStart:j])

		// Tags that never reach their '>' are the syntax pass's concern;
		// the balance stack only reasons about complete tags.
		end := findTagEnd(input, j)
		if end < 0 {
			i = j
			continue
		}

		raw := input[pos:end]
		tokens = append(tokens, tagToken{
			name:        name,
			offset:      pos,
			closing:     closing,
			selfClosing: voidTags[name] || strings.HasSuffix(raw, "/>"),
		})
		i = end
	}
	return tokens
}

// skipNonTagSpan handles '<' positions that open comments, CDATA sections,
// doctypes, or processing instructions. It reports whether the position was
// consumed and where scanning should resume (-1 when the span never ends).
func skipNonTagSpan(input string, pos int, rest string) (bool, int) {
	switch {
	case strings.HasPrefix(rest, "<!--"):
		if end := strings.Index(rest, "-->"); end >= 0 {
			return true, pos + end + 3
		}
		return true, -1
	case strings.HasPrefix(rest, "<![CDATA["):
		if end := strings.Index(rest, "]]>"); end >= 0 {
			return true, pos + end + 3
		}
		return true, -1
	case strings.HasPrefix(rest, "<!"), strings.HasPrefix(rest, "<?"):
		if end := strings.IndexByte(rest, '>'); end >= 0 {
			return true, pos + end + 1
		}
		return true, -1
	}
	return false, 0
}

// findTagEnd returns the index just past the tag's '>', honouring quoted
// attribute values, or -1 when the tag never terminates.
func findTagEnd(input string, from int) int {
	var quote byte
	for k := from; k < len(input); k++ {
		c := input[k]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '>':
			return k + 1
		case '<':
			return -1
		}
	}
	return -1
}

func isNameStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameByte(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9') || c == '-' || c == ':'
}

// scanTagSyntax is the second, independent pass: it verifies that attribute
// quotes open after '=' are closed before the tag ends, and that every tag
// reaches its '>' before a new '<' or a newline.
func scanTagSyntax(input string) []Error {
	var errs []Error
	i := 0
	for i < len(input) {
		lt := strings.IndexByte(input[i:], '<')
		if lt < 0 {
			break
		}
		pos := i + lt
		rest := input[pos:]

		if skip, next := skipNonTagSpan(input, pos, rest); skip {
			if next < 0 {
				break
			}
			i = next
			continue
		}
		if insideShortcode(input, pos) {
			i = pos + 1
			continue
		}

		j := pos + 1
		if j < len(input) && input[j] == '/' {
			j++
		}
		if j >= len(input) || !isNameStart(input[j]) {
			i = pos + 1
			continue
		}

		next, tagErrs := checkTagSyntax(input, pos, j)
		errs = append(errs, tagErrs...)
		i = next
	}
	return errs
}

// insideShortcode reports whether pos sits inside bracket-shortcode syntax:
// an unterminated '[' within the lookback window before the '<'.
func insideShortcode(input string, pos int) bool {
	start := pos - shortcodeLookback
	if start < 0 {
		start = 0
	}
	window := input[start:pos]
	open := strings.LastIndexByte(window, '[')
	if open < 0 {
		return false
	}
	return strings.LastIndexByte(window, ']') < open
}

func checkTagSyntax(input string, pos, from int) (int, []Error) {
	var errs []Error
	var quote byte
	quoteStart := -1
	var prev byte

	for k := from; k < len(input); k++ {
		c := input[k]
		if quote != 0 {
			switch c {
			case quote:
				quote = 0
			case '\n', '>':
				errs = append(errs, Error{
					Kind:     KindUnclosedQuote,
					Message:  "attribute value quote is never closed",
					Position: quoteStart,
				})
				return k + 1, errs
			}
			continue
		}
		switch c {
		case '"', '\'':
			if prev == '=' {
				quote = c
				quoteStart = k
			}
		case '>':
			return k + 1, errs
		case '<':
			errs = append(errs, Error{
				Kind:     KindMissingCloseBracket,
				Message:  "tag is missing its closing bracket",
				Position: pos,
			})
			return k, errs
		case '\n':
			errs = append(errs, Error{
				Kind:     KindMissingCloseBracket,
				Message:  "tag is missing its closing bracket",
				Position: pos,
			})
			return k + 1, errs
		}
		if c != ' ' && c != '\t' {
			prev = c
		}
	}

	if quote != 0 {
		errs = append(errs, Error{
			Kind:     KindUnclosedQuote,
			Message:  "attribute value quote is never closed",
			Position: quoteStart,
		})
	} else {
		errs = append(errs, Error{
			Kind:     KindMissingCloseBracket,
			Message:  "tag is missing its closing bracket",
			Position: pos,
		})
	}
	return len(input), errs
}
