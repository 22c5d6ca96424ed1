// Package frontmatter reads and writes the YAML header block of markdown
// files, delimited by "---" lines.
package frontmatter

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// delimiter opens and closes a frontmatter block, on a line of its own.
const delimiter = "---"

// ErrMissingFrontmatter is returned by MustParse when content carries no
// frontmatter block.
var ErrMissingFrontmatter = errors.New("missing frontmatter")

// Parse decodes the frontmatter into matter and returns the remaining
// body. Content without a frontmatter block is returned whole as the
// body, with matter left untouched.
func Parse[T any](r io.Reader, matter *T) ([]byte, error) {
	return parse(r, matter, false)
}

// MustParse is Parse with the frontmatter block required, for files like
// SKILL.md whose header carries the skill's identity.
func MustParse[T any](r io.Reader, matter *T) ([]byte, error) {
	return parse(r, matter, true)
}

func parse[T any](r io.Reader, matter *T, required bool) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	header, body, err := split(content)
	if err != nil {
		if required {
			return nil, err
		}
		return content, nil
	}

	if err := yaml.Unmarshal(header, matter); err != nil {
		return nil, err
	}
	return body, nil
}

// split separates the frontmatter block from the body. Lines may end in
// LF or CRLF; the header is normalized to LF for the YAML decoder.
func split(content []byte) (header, body []byte, err error) {
	first, rest, ok := cutLine(content)
	if !ok || string(trimCR(first)) != delimiter {
		return nil, nil, ErrMissingFrontmatter
	}

	for len(rest) > 0 {
		line, tail, _ := cutLine(rest)
		if string(trimCR(line)) == delimiter {
			return header, tail, nil
		}
		header = append(header, trimCR(line)...)
		header = append(header, '\n')
		rest = tail
	}
	return nil, nil, errors.New("missing closing frontmatter delimiter")
}

// cutLine splits off the first line of b, excluding its newline.
func cutLine(b []byte) (line, rest []byte, ok bool) {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return b[:i], b[i+1:], true
	}
	return b, nil, len(b) > 0
}

func trimCR(b []byte) []byte {
	return bytes.TrimSuffix(b, []byte("\r"))
}

// ParseHeader decodes only the frontmatter block, consuming the reader
// no further than the closing delimiter. Content without frontmatter is
// a silent no-op; matter stays empty.
func ParseHeader(r io.Reader, matter any) error {
	sc := bufio.NewScanner(r)
	if !sc.Scan() || strings.TrimSpace(sc.Text()) != delimiter {
		return sc.Err()
	}

	var header bytes.Buffer
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == delimiter {
			return yaml.Unmarshal(header.Bytes(), matter)
		}
		header.WriteString(sc.Text())
		header.WriteByte('\n')
	}
	return sc.Err()
}

// Format renders matter and body as a markdown document with a
// frontmatter header. The body is separated from the header by a blank
// line and always ends in a newline.
func Format(matter any, body string) ([]byte, error) {
	var out bytes.Buffer
	out.WriteString(delimiter)
	out.WriteByte('\n')

	enc := yaml.NewEncoder(&out)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, err
	}

	out.WriteString(delimiter)
	out.WriteByte('\n')

	if body != "" {
		out.WriteByte('\n')
		out.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			out.WriteByte('\n')
		}
	}
	return out.Bytes(), nil
}
