package reporting

import (
	stderrors "errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/kbukum/edukit/errors"
)

var kindNames = map[yaml.Kind]string{
	yaml.DocumentNode: "document",
	yaml.SequenceNode: "sequence",
	yaml.MappingNode:  "mapping",
	yaml.ScalarNode:   "scalar",
	yaml.AliasNode:    "alias",
}

// LoadGradebook reads a YAML or JSON mapping of student name to score list.
// Students keep their document order. An empty document yields an empty
// gradebook.
//
//	Alice: [85, 90, 88]
//	Bob: [70, 75, 72]
func LoadGradebook(r io.Reader) (Gradebook, error) {
	root, err := decodeRoot(r)
	if err != nil || root == nil {
		return Gradebook{}, err
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.TypeMismatch("gradebook", "mapping", kindNames[root.Kind])
	}

	book := make(Gradebook, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, errors.TypeMismatch("gradebook", "student name", kindNames[key.Kind])
		}
		field := "gradebook." + key.Value
		if val.Kind != yaml.SequenceNode {
			return nil, errors.TypeMismatch(field, "sequence", kindNames[val.Kind])
		}

		scores := make([]float64, len(val.Content))
		for j, n := range val.Content {
			if err := decodeScalar(n, &scores[j]); err != nil {
				return nil, errors.TypeMismatch(fmt.Sprintf("%s[%d]", field, j), "number", n.Value)
			}
		}
		book = append(book, ScoreRecord{Student: key.Value, Scores: scores})
	}
	return book, nil
}

// LoadInventory reads a YAML or JSON sequence of items, each a mapping with
// optional "item", "stock" and "price" keys. Unknown keys are ignored and a
// null value counts as absent.
//
//	- {item: Laptop, price: 1200, stock: 5}
//	- {item: Mouse, stock: 0}
func LoadInventory(r io.Reader) ([]Item, error) {
	root, err := decodeRoot(r)
	if err != nil || root == nil {
		return []Item{}, err
	}
	if root.Kind != yaml.SequenceNode {
		return nil, errors.TypeMismatch("inventory", "sequence", kindNames[root.Kind])
	}

	items := make([]Item, 0, len(root.Content))
	for i, node := range root.Content {
		field := fmt.Sprintf("inventory[%d]", i)
		if node.Kind != yaml.MappingNode {
			return nil, errors.TypeMismatch(field, "mapping", kindNames[node.Kind])
		}
		item, err := decodeItem(field, node)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func decodeItem(field string, node *yaml.Node) (Item, error) {
	var item Item
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind == yaml.ScalarNode && val.Tag == "!!null" {
			continue
		}
		switch key.Value {
		case "item":
			if val.Kind != yaml.ScalarNode || val.Tag != "!!str" {
				return Item{}, errors.TypeMismatch(field+".item", "string", describe(val))
			}
			name := val.Value
			item.Name = &name
		case "stock":
			var stock int
			if val.Tag != "!!int" || decodeScalar(val, &stock) != nil {
				return Item{}, errors.TypeMismatch(field+".stock", "integer", describe(val))
			}
			item.Stock = &stock
		case "price":
			if err := decodeScalar(val, &item.Price); err != nil {
				return Item{}, errors.TypeMismatch(field+".price", "number", describe(val))
			}
		}
	}
	return item, nil
}

// decodeRoot returns the top node of the first document in r, or nil for
// an empty document.
func decodeRoot(r io.Reader) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.New(errors.ErrCodeTypeError, "malformed input document").WithCause(err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	return doc.Content[0], nil
}

// decodeScalar decodes n into out. Quoted strings are refused so that
// "5" is not read as a number.
func decodeScalar(n *yaml.Node, out any) error {
	if n.Kind != yaml.ScalarNode || n.Tag == "!!str" {
		return fmt.Errorf("not a numeric scalar: %s", describe(n))
	}
	return n.Decode(out)
}

func describe(n *yaml.Node) string {
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}
	return kindNames[n.Kind]
}
