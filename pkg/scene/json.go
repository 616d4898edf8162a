package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mkoenig/framesmith/pkg/errors"
)

// ReadDocument decodes a scene document from r.
//
// The canonical input is a JSON object with a "nodes" array:
//
//	{
//	  "name": "Landing",
//	  "nodes": [{"name": "Card", "type": "FRAME", "width": 300, ...}]
//	}
//
// A bare top-level JSON array of nodes is also accepted and wrapped in
// an unnamed document, since some plugin versions export the selection
// without the envelope.
//
// ReadDocument returns an INVALID_DOCUMENT error for malformed JSON and
// an INVALID_DOCUMENT_EMPTY error when no root nodes are present. The
// returned document is independent of r; ReadDocument does not close r.
func ReadDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return ParseDocument(data)
}

// ParseDocument decodes a scene document from raw JSON bytes. See
// [ReadDocument] for the accepted forms and error contract.
func ParseDocument(data []byte) (*Document, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "empty input")
	}

	var doc Document
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &doc.Nodes); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode node array")
		}
	} else {
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode document")
		}
	}

	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ImportFile reads a scene document from the JSON file at path.
// The error wraps the underlying cause with the file path for context.
func ImportFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := ReadDocument(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return doc, nil
}

// Validate checks the structural invariants of a document: at least one
// root node, and a type on every node. Violations return INVALID_* errors
// and compilation must not proceed on a document that fails validation.
func Validate(doc *Document) error {
	if doc == nil || len(doc.Nodes) == 0 {
		return errors.New(errors.ErrCodeEmptyDocument, "document has no root nodes")
	}

	for i, root := range doc.Nodes {
		if err := validateNode(root, fmt.Sprintf("nodes[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(n *Node, path string) error {
	if n == nil {
		return errors.New(errors.ErrCodeInvalidDocument, "%s: null node", path)
	}
	if n.Type == "" {
		return errors.New(errors.ErrCodeInvalidDocument, "%s: missing type", path)
	}
	if n.Width < 0 || n.Height < 0 {
		return errors.New(errors.ErrCodeInvalidDocument, "%s: negative size %gx%g", path, n.Width, n.Height)
	}

	for i, c := range n.Children {
		if err := validateNode(c, fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}
