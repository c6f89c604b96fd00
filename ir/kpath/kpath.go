package kpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/metarhia/jstp-go/token"
)

var ErrSyntax = errors.New("kpath syntax error")

// KPath is one segment of a kinded path, linked to the rest through Next.
// Exactly one of Field and Index is set. A nil *KPath is the root.
type KPath struct {
	Field *string
	Index *int
	Next  *KPath
}

func Field(name string) *KPath {
	return &KPath{Field: &name}
}

func Index(i int) *KPath {
	return &KPath{Index: &i}
}

// Append returns a new path made of p followed by seg. Neither p nor seg is
// modified.
func (p *KPath) Append(seg *KPath) *KPath {
	var (
		head *KPath
		tail **KPath = &head
	)
	for _, x := range []*KPath{p, seg} {
		for ; x != nil; x = x.Next {
			*tail = x.copySegment()
			tail = &(*tail).Next
		}
	}
	return head
}

func (p *KPath) copySegment() *KPath {
	return &KPath{Field: p.Field, Index: p.Index}
}

func (p *KPath) String() string {
	b := &strings.Builder{}
	for x := p; x != nil; x = x.Next {
		if x.Field != nil && b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(x.SegmentString())
	}
	return b.String()
}

// SegmentString renders only the first segment of p.
func (p *KPath) SegmentString() string {
	switch {
	case p == nil:
		return ""
	case p.Field != nil:
		if token.IsIdentifier(*p.Field) {
			return *p.Field
		}
		return token.Quote(*p.Field, '\'')
	case p.Index != nil:
		return "[" + strconv.Itoa(*p.Index) + "]"
	}
	return ""
}

// Parse parses a kinded path. The empty string is the root and parses to
// nil.
func Parse(s string) (*KPath, error) {
	var (
		head *KPath
		tail **KPath = &head
		dot  bool
	)
	i := 0
	for i < len(s) {
		var seg *KPath
		switch c := s[i]; {
		case c == '.':
			if head == nil || dot {
				return nil, fmt.Errorf("%w: unexpected '.' at %d in %q", ErrSyntax, i, s)
			}
			dot = true
			i++
			continue
		case c == '[':
			if dot {
				return nil, fmt.Errorf("%w: unexpected '[' at %d in %q", ErrSyntax, i, s)
			}
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated index at %d in %q", ErrSyntax, i, s)
			}
			n, err := strconv.Atoi(s[i+1 : i+end])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrSyntax, s[i+1:i+end], s)
			}
			seg = Index(n)
			i += end + 1
		default:
			if head != nil && !dot {
				return nil, fmt.Errorf("%w: missing '.' at %d in %q", ErrSyntax, i, s)
			}
			if c == '\'' || c == '"' {
				v, n, err := token.Unquote(s[i:])
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
				}
				seg = Field(v)
				i += n
				break
			}
			n := strings.IndexAny(s[i:], ".[")
			if n < 0 {
				n = len(s) - i
			}
			f := s[i : i+n]
			if !token.IsIdentifier(f) {
				return nil, fmt.Errorf("%w: bad field %q in %q", ErrSyntax, f, s)
			}
			seg = Field(f)
			i += n
		}
		dot = false
		*tail = seg
		tail = &seg.Next
	}
	if dot {
		return nil, fmt.Errorf("%w: trailing '.' in %q", ErrSyntax, s)
	}
	return head, nil
}
