// Package frontmatter splits markdown documents into a YAML metadata block
// and the body that follows it.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMalformed is wrapped by every error caused by a front matter block
	// that cannot be decoded.
	ErrMalformed = errors.New("malformed front matter")

	// ErrMissingClosingDelimiter is returned when a document opens a front
	// matter block but never closes it.
	ErrMissingClosingDelimiter = fmt.Errorf("%w: missing closing delimiter", ErrMalformed)
)

const delimiter = "---"

// Document is a parsed markdown file.
type Document struct {
	Metadata       map[string]any
	Content        string
	HasFrontMatter bool

	node yaml.Node
}

// Decode decodes the metadata block into v.
func (d Document) Decode(v any) error {
	if d.node.Kind == 0 {
		return nil
	}
	if err := d.node.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// Split separates the front matter block from the body.
//
// The block must start on the first line with "---" and ends at the next
// line consisting only of "---". Both LF and CRLF line endings are accepted.
func Split(raw []byte) (front []byte, body []byte, had bool, err error) {
	nl := "\n"
	if bytes.HasPrefix(raw, []byte(delimiter+"\r\n")) {
		nl = "\r\n"
	} else if !bytes.HasPrefix(raw, []byte(delimiter+"\n")) {
		return nil, raw, false, nil
	}

	start := len(delimiter) + len(nl)
	rest := raw[start:]

	// Empty block: "---\n---\n".
	if bytes.HasPrefix(rest, []byte(delimiter+nl)) {
		return []byte{}, rest[len(delimiter)+len(nl):], true, nil
	}
	if bytes.Equal(rest, []byte(delimiter)) {
		return []byte{}, nil, true, nil
	}

	closing := []byte(nl + delimiter + nl)
	if idx := bytes.Index(rest, closing); idx >= 0 {
		return rest[:idx+len(nl)], rest[idx+len(closing):], true, nil
	}
	// Closing delimiter on the last line without a trailing newline.
	if bytes.HasSuffix(rest, []byte(nl+delimiter)) {
		end := len(rest) - len(delimiter)
		return rest[:end], nil, true, nil
	}
	return nil, nil, false, ErrMissingClosingDelimiter
}

// Parse splits raw and decodes its front matter into a key-value mapping.
// Documents without front matter parse to an empty mapping and the whole
// input as content.
func Parse(raw []byte) (Document, error) {
	front, body, had, err := Split(raw)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		Metadata:       map[string]any{},
		Content:        string(body),
		HasFrontMatter: had,
	}
	if len(bytes.TrimSpace(front)) == 0 {
		return doc, nil
	}

	if err := yaml.Unmarshal(front, &doc.node); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(doc.node.Content) == 0 || doc.node.Content[0].Kind != yaml.MappingNode {
		return Document{}, fmt.Errorf("%w: metadata is not a mapping", ErrMalformed)
	}
	if err := doc.node.Decode(&doc.Metadata); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return doc, nil
}
