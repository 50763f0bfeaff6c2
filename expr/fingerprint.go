package expr

import (
	"github.com/cnf/structhash"
)

// shape is the hashed record of a node. Children enter by their own
// fingerprints, which makes the fingerprint of a tree a Merkle-style hash.
type shape struct {
	Kind     Kind     `hash:"name:kind"`
	Symbol   string   `hash:"name:sym"`
	Labels   []string `hash:"name:labels"`
	Children []string `hash:"name:children"`
}

// Fingerprint computes a structural hash of a tree. Structurally equal trees
// (see Equal) have identical fingerprints, so fingerprints may serve as cache
// keys for trees.
func Fingerprint(e Expr) (string, error) {
	if IsNil(e) {
		return structhash.Hash(shape{}, 1)
	}
	sh := shape{Kind: e.Kind()}
	switch x := e.(type) {
	case *Identifier:
		sh.Symbol = x.Name
	case *Literal:
		sh.Symbol = x.Raw
		if x.Type == Text {
			sh.Labels = []string{"text"}
		}
	case *BinaryOp:
		sh.Symbol = x.Op
	case *PrefixOp:
		sh.Symbol = x.Op
	case *Call:
		sh.Labels = make([]string, len(x.Args))
		for i, a := range x.Args {
			sh.Labels[i] = a.Label
		}
	case *Opaque:
		sh.Symbol = x.Text
	}
	for _, ch := range Children(e) {
		h, err := Fingerprint(ch)
		if err != nil {
			return "", err
		}
		sh.Children = append(sh.Children, h)
	}
	return structhash.Hash(sh, 1)
}
