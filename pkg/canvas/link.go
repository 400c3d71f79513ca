package canvas

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/shapesmith/shapesmith/pkg/errors"
)

var (
	// Matches shared document URLs: .../file/<key>/<name> or
	// .../design/<key>/<name>, with an optional node-id query param.
	linkRE = regexp.MustCompile(`^(?:https?://)?(?:www\.)?[\w.-]+/(?:file|design)/([A-Za-z0-9]+)(?:/([^/?#]*))?`)

	// A key pasted on its own, without a surrounding URL.
	bareKeyRE = regexp.MustCompile(`^[A-Za-z0-9]{11,}$`)
)

// Link identifies a document, and optionally one node inside it.
type Link struct {
	Key    string
	NodeID string
	Name   string
}

// ParseLink extracts a document key from a pasted link or bare key.
// Shared URLs carry the key in the path and may name a node via the
// node-id query parameter. Bare alphanumeric keys longer than ten
// characters are accepted as-is.
func ParseLink(input string) (*Link, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, errors.New(errors.ErrCodeInvalidLink, "empty document link")
	}

	if bareKeyRE.MatchString(input) {
		return &Link{Key: input}, nil
	}

	m := linkRE.FindStringSubmatch(input)
	if m == nil {
		return nil, errors.New(errors.ErrCodeInvalidLink, "unrecognized document link: %q", input)
	}

	link := &Link{Key: m[1]}
	if m[2] != "" {
		if name, err := url.PathUnescape(m[2]); err == nil {
			link.Name = name
		} else {
			link.Name = m[2]
		}
	}

	if u, err := url.Parse(input); err == nil {
		if nodeID := u.Query().Get("node-id"); nodeID != "" {
			// Shared links encode "12:34" as "12-34".
			link.NodeID = strings.ReplaceAll(nodeID, "-", ":")
		}
	}

	return link, nil
}
