package workflow

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/githubnext/timeout-lint/pkg/logger"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/token"
)

var nodeLog = logger.New("workflow:node")

// maxNodeDepth bounds nesting, aliases included.
const maxNodeDepth = 1000

// coreFloat matches plain scalars that the YAML 1.2 core schema resolves to
// numbers but the parser leaves as strings, such as 1e3 or integers wider
// than 64 bits.
var coreFloat = regexp.MustCompile(`^[-+]?(\.[0-9]+|[0-9]+(\.[0-9]*)?)([eE][-+]?[0-9]+)?$`)

// nodeConverter builds Values from a parsed document, resolving scalars with
// YAML 1.2 core schema rules. Merge keys are not applied: "<<" is an
// ordinary key.
type nodeConverter struct {
	anchors map[string]Value
	depth   int
}

func newNodeConverter() *nodeConverter {
	return &nodeConverter{anchors: make(map[string]Value)}
}

func (c *nodeConverter) value(node ast.Node) (Value, error) {
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > maxNodeDepth {
		return Value{}, errors.New("document is nested too deeply")
	}

	switch n := node.(type) {
	case nil:
		return Null(), nil
	case *ast.NullNode:
		return Null(), nil
	case *ast.BoolNode:
		return Bool(n.Value), nil
	case *ast.IntegerNode:
		return integerValue(n), nil
	case *ast.FloatNode:
		if hasUnderscore(n.Token) {
			return String(n.Token.Value), nil
		}
		return Number(n.Value), nil
	case *ast.InfinityNode:
		return Number(n.Value), nil
	case *ast.NanNode:
		return Number(math.NaN()), nil
	case *ast.StringNode:
		return stringValue(n), nil
	case *ast.LiteralNode:
		if n.Value == nil {
			return String(""), nil
		}
		return String(n.Value.Value), nil
	case *ast.TagNode:
		return c.tagged(n)
	case *ast.AnchorNode:
		v, err := c.value(n.Value)
		if err != nil {
			return Value{}, err
		}
		c.anchors[n.Name.GetToken().Value] = v
		return v, nil
	case *ast.AliasNode:
		name := n.Value.GetToken().Value
		v, ok := c.anchors[name]
		if !ok {
			return Value{}, fmt.Errorf("unknown alias %q", name)
		}
		return v, nil
	case *ast.SequenceNode:
		items := make([]Value, 0, len(n.Values))
		for _, item := range n.Values {
			v, err := c.value(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Sequence(items...), nil
	case *ast.MappingNode:
		m := NewMapping()
		for _, pair := range n.Values {
			if err := c.setPair(m, pair); err != nil {
				return Value{}, err
			}
		}
		return MappingValue(m), nil
	case *ast.MappingValueNode:
		m := NewMapping()
		if err := c.setPair(m, n); err != nil {
			return Value{}, err
		}
		return MappingValue(m), nil
	case *ast.MappingKeyNode:
		return c.value(n.Value)
	default:
		return Value{}, fmt.Errorf("unsupported node %s at line %d", node.Type(), node.GetToken().Position.Line)
	}
}

func (c *nodeConverter) setPair(m *Mapping, pair *ast.MappingValueNode) error {
	key, err := c.key(pair.Key)
	if err != nil {
		return err
	}
	v, err := c.value(pair.Value)
	if err != nil {
		return err
	}
	m.Set(key, v)
	return nil
}

// key renders a mapping key as a string: `1:` becomes "1", `~:` becomes "".
func (c *nodeConverter) key(node ast.MapKeyNode) (string, error) {
	if merge, ok := node.(*ast.MergeKeyNode); ok {
		return merge.Token.Value, nil
	}
	v, err := c.value(node)
	if err != nil {
		return "", err
	}
	switch v.Kind() {
	case KindNull:
		return "", nil
	case KindString:
		return v.str, nil
	case KindBool:
		return strconv.FormatBool(v.boolean), nil
	case KindNumber:
		return strconv.FormatFloat(v.number, 'f', -1, 64), nil
	default:
		return node.GetToken().Value, nil
	}
}

func (c *nodeConverter) tagged(n *ast.TagNode) (Value, error) {
	switch token.ReservedTagKeyword(n.Start.Value) {
	case token.StringTag:
		if n.Value == nil {
			return String(""), nil
		}
		if s, ok := n.Value.(*ast.StringNode); ok {
			return String(s.Value), nil
		}
		return String(n.Value.GetToken().Value), nil
	case token.NullTag:
		return Null(), nil
	default:
		nodeLog.Printf("Ignoring tag %s", n.Start.Value)
		return c.value(n.Value)
	}
}

func integerValue(n *ast.IntegerNode) Value {
	// 1_000 and 0b101 are YAML 1.1 integers only.
	if hasUnderscore(n.Token) || isBinaryLiteral(n.Token) {
		return String(n.Token.Value)
	}
	switch i := n.Value.(type) {
	case int64:
		return Number(float64(i))
	case uint64:
		return Number(float64(i))
	default:
		nodeLog.Printf("Unexpected integer type %T for %q", n.Value, n.Token.Value)
		return String(n.Token.Value)
	}
}

func stringValue(n *ast.StringNode) Value {
	if n.Token == nil || n.Token.Type != token.StringType || !coreFloat.MatchString(n.Value) {
		return String(n.Value)
	}
	f, err := strconv.ParseFloat(n.Value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return String(n.Value)
	}
	return Number(f)
}

func hasUnderscore(tk *token.Token) bool {
	return tk != nil && strings.Contains(tk.Value, "_")
}

func isBinaryLiteral(tk *token.Token) bool {
	if tk == nil {
		return false
	}
	v := strings.TrimLeft(tk.Value, "+-")
	return strings.HasPrefix(v, "0b")
}
