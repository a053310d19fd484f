package payload

import "strings"

// FindListNode locates the one array in the tree that carries the place
// list, identified purely by structure: its element at the signature entry
// offset is an array whose element at the URL offset is a string containing
// the share-URL marker. Traversal is depth-first and signature-first (each
// array is tested before its children are visited), and the first match
// wins. Object field order is whatever map iteration yields; real payloads
// are array-only at every level that matters, so the order is irrelevant.
func FindListNode(root *Node, f *Format) (*Node, error) {
	match, err := searchNode(root, f, 0)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrSignatureNotFound
	}
	return match, nil
}

func searchNode(n *Node, f *Format, depth int) (*Node, error) {
	if depth > maxNestingDepth {
		return nil, ErrStructureTooDeep
	}
	switch n.Kind() {
	case KindArray:
		if matchesSignature(n, f) {
			return n, nil
		}
		for i := 0; i < n.Len(); i++ {
			child, _ := n.Index(i)
			match, err := searchNode(child, f, depth+1)
			if err != nil || match != nil {
				return match, err
			}
		}
	case KindObject:
		for _, child := range n.fields {
			match, err := searchNode(child, f, depth+1)
			if err != nil || match != nil {
				return match, err
			}
		}
	}
	return nil, nil
}

func matchesSignature(n *Node, f *Format) bool {
	entry, ok := n.Index(f.Signature.EntryOffset)
	if !ok || !entry.IsArray() {
		return false
	}
	el, ok := entry.Index(f.Signature.URLOffset)
	if !ok {
		return false
	}
	s, ok := el.Str()
	if !ok {
		return false
	}
	return strings.Contains(s, f.Signature.URLMarker)
}
