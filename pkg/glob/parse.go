package glob

import (
	"strings"

	"pathglob.dev/pkg/strutil"
)

type options struct {
	braces     bool
	sets       bool
	subpattern bool
}

type token int

const (
	tokNone token = iota
	tokChar
	tokQmark
	tokStar
	tokOpenSet
	tokOpenBrace
	tokComma
	tokEndBrace
)

// parser is a cursor over the pattern text. Positions are byte offsets,
// which also serve as error positions.
type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool    { return p.pos == len(p.src) }
func (p *parser) rest() string { return p.src[p.pos:] }

// skipTo moves the cursor so that rest() == rest.
func (p *parser) skipTo(rest string) { p.pos = len(p.src) - len(rest) }

// peekToken classifies the character at the cursor. Escaped metacharacters
// are CHAR tokens; the classification of '}', ',' depends on whether the
// parser is inside an alternation, and of '[', '{' on the options.
func (p *parser) peekToken(opts options) token {
	if p.eof() {
		return tokNone
	}
	switch p.src[p.pos] {
	case '?':
		return tokQmark
	case '*':
		return tokStar
	case '[':
		if opts.sets {
			return tokOpenSet
		}
	case '{':
		if opts.braces {
			return tokOpenBrace
		}
	case '}':
		if opts.subpattern {
			return tokEndBrace
		}
	case ',':
		if opts.subpattern {
			return tokComma
		}
	}
	return tokChar
}

// Parse parses a pattern into its compiled representation. The input is the
// pattern for a single path component; '/' has no special meaning.
func Parse(pattern string, flags Flags) (*Pattern, error) {
	p := &parser{src: pattern}
	return p.parsePattern(options{
		braces: flags&NoBraces == 0,
		sets:   flags&NoSets == 0,
	})
}

// IsPattern reports whether s contains at least one unescaped metacharacter
// enabled by the flags. Escaped metacharacters do not count: a string for
// which it returns false compiles to a pattern that matches exactly one
// string, its text with the escapes decoded.
func IsPattern(s string, flags Flags) bool {
	opts := options{
		braces: flags&NoBraces == 0,
		sets:   flags&NoSets == 0,
	}
	p := &parser{src: s}
	for !p.eof() {
		switch p.peekToken(opts) {
		case tokStar, tokQmark, tokOpenSet, tokOpenBrace:
			return true
		}
		_, rest, _, ok := strutil.UnescapeNext(p.rest())
		if !ok {
			return false
		}
		p.skipTo(rest)
	}
	return false
}

func (p *parser) parsePattern(opts options) (*Pattern, error) {
	pat := &Pattern{}
	for {
		switch p.peekToken(opts) {
		case tokChar:
			if s := p.extractLiteral(opts); s != "" {
				pat.Elements = append(pat.Elements, Literal{s})
			}
		case tokQmark:
			pat.Elements = append(pat.Elements, p.extractQmarks())
		case tokStar:
			pat.Elements = append(pat.Elements, p.extractStars())
		case tokOpenSet:
			set, err := p.extractCharSet()
			if err != nil {
				return nil, err
			}
			pat.Elements = append(pat.Elements, set)
		case tokOpenBrace:
			alt, err := p.extractAlternation(opts)
			if err != nil {
				return nil, err
			}
			pat.Elements = append(pat.Elements, alt)
		default:
			// tokNone, or tokComma/tokEndBrace terminating a subpattern.
			if len(pat.Elements) == 0 {
				pat.Elements = []Element{Empty{}}
			}
			if !opts.subpattern {
				optimize(pat)
			}
			return pat, nil
		}
	}
}

// extractLiteral absorbs a run of CHAR tokens, decoding escapes as it goes.
// A lone trailing backslash is dropped.
func (p *parser) extractLiteral(opts options) string {
	var sb strings.Builder
	for !p.eof() {
		c := p.src[p.pos]
		if c == '\\' {
			r, rest, _, ok := strutil.UnescapeNext(p.rest())
			p.skipTo(rest)
			if ok {
				sb.WriteRune(r)
			}
			continue
		}
		if c == '?' || c == '*' ||
			(opts.sets && c == '[') ||
			(opts.braces && c == '{') ||
			(opts.subpattern && (c == '}' || c == ',')) {
			break
		}
		sb.WriteByte(c)
		p.pos++
	}
	return sb.String()
}

// extractStars collapses a run of '*' into a single Star.
func (p *parser) extractStars() Star {
	for !p.eof() && p.src[p.pos] == '*' {
		p.pos++
	}
	return Star{}
}

// extractQmarks collapses a run of '?' into one Qmark.
func (p *parser) extractQmarks() Qmark {
	var q Qmark
	for !p.eof() && p.src[p.pos] == '?' {
		q.Length++
		p.pos++
	}
	return q
}

// extractCharSet parses "[...]" starting at the opening bracket. A '^'
// directly after '[' negates the set. Items are codepoints and "A-B"
// ranges; a '-' before any range, or escaped, is a literal hyphen.
func (p *parser) extractCharSet() (CharSet, error) {
	start := p.pos
	p.pos++ // consume '['
	var set CharSet
	if !p.eof() && p.src[p.pos] == '^' {
		set.Negated = true
		p.pos++
	}

	const (
		awaitingFirst = iota
		hasFirst
		awaitingLast
	)
	state := awaitingFirst
	first := true
	for !p.eof() {
		r, rest, escaped, ok := strutil.UnescapeNext(p.rest())
		if !ok {
			break
		}
		p.skipTo(rest)
		// A ']' as the very first item is literal, so "[]]" matches ']'
		// and "[]" is an unterminated class rather than an empty set.
		if r == ']' && !escaped && first {
			escaped = true
		}
		first = false
		switch {
		case r == ']' && !escaped:
			if state == awaitingLast {
				return CharSet{}, &Error{InvalidRange, start}
			}
			return set, nil
		case r == '-' && !escaped:
			switch {
			case state == hasFirst:
				state = awaitingLast
			case state == awaitingFirst && len(set.Ranges) == 0:
				// Literal hyphen at the head of the set.
				set.Ranges = append(set.Ranges, CharRange{'-', '-'})
			default:
				return CharSet{}, &Error{InvalidRange, start}
			}
		case state != awaitingLast:
			set.Ranges = append(set.Ranges, CharRange{r, r})
			state = hasFirst
		case set.Ranges[len(set.Ranges)-1].Hi <= r:
			set.Ranges[len(set.Ranges)-1].Hi = r
			state = awaitingFirst
		default:
			return CharSet{}, &Error{InvalidRange, start}
		}
	}
	return CharSet{}, &Error{UnterminatedClass, start}
}

// extractAlternation parses "{a,b,...}" starting at the opening brace.
// Alternatives are parsed recursively as subpatterns; "{}" is an error.
func (p *parser) extractAlternation(opts options) (Alternation, error) {
	start := p.pos
	opts.subpattern = true
	var alt Alternation
	for !p.eof() {
		switch p.peekToken(opts) {
		case tokOpenBrace, tokComma:
			p.pos++
			if len(alt.Patterns) == 0 && !p.eof() && p.src[p.pos] == '}' {
				return Alternation{}, &Error{EmptyAlternation, start}
			}
			sub, err := p.parsePattern(opts)
			if err != nil {
				return Alternation{}, err
			}
			alt.Patterns = append(alt.Patterns, sub)
		case tokEndBrace:
			p.pos++
			return alt, nil
		default:
			return Alternation{}, &Error{UnterminatedAlternation, start}
		}
	}
	return Alternation{}, &Error{UnterminatedAlternation, start}
}

// optimize computes TailLength: the length of the longest star-free suffix
// of the element list.
func optimize(pat *Pattern) {
	pat.TailLength = 0
	for i := len(pat.Elements) - 1; i >= 0; i-- {
		if hasStar(pat.Elements[i]) {
			break
		}
		pat.TailLength++
	}
}

func hasStar(e Element) bool {
	switch e := e.(type) {
	case Star:
		return true
	case Alternation:
		for _, sub := range e.Patterns {
			for _, el := range sub.Elements {
				if hasStar(el) {
					return true
				}
			}
		}
	}
	return false
}
