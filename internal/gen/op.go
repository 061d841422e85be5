package gen

import "strings"

// Op enumerates the CRUD operations a resource can expose.
type Op int

//go:generate go run golang.org/x/tools/cmd/stringer -type=Op -linecomment

const (
	OpList   Op = iota // list
	OpCreate           // create
	OpRead             // read
	OpUpdate           // update
	OpDelete           // delete
)

// AllOps returns every operation, in the order paths are assembled.
func AllOps() []Op {
	return []Op{OpList, OpCreate, OpRead, OpUpdate, OpDelete}
}

// ParseOp matches an operation name from an openapi.operations
// annotation. Surrounding whitespace is ignored.
func ParseOp(s string) (Op, bool) {
	name := strings.TrimSpace(s)
	for _, op := range AllOps() {
		if op.String() == name {
			return op, true
		}
	}
	return 0, false
}
