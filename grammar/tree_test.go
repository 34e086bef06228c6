package grammar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreeString(t *testing.T) {
	tree := &Tree{Name: "Call", Text: `f("x")`, Length: 6, Children: []*Tree{
		{Name: "Ident", Text: "f", Length: 1},
		{Name: "Args", Offset: 1, Text: `("x")`, Length: 5, Children: []*Tree{
			{Name: "String", Offset: 2, Text: `"x"`, Length: 3},
		}},
	}}
	expected := `Call@0 "f(\"x\")"
  Ident@0 "f"
  Args@1 "(\"x\")"
    String@2 "\"x\""`
	require.Equal(t, expected, tree.String())
	require.Equal(t, []*Tree{tree.Children[1].Children[0]}, tree.Find("String"))
	require.Equal(t, []*Tree{tree}, tree.Find("Call"))
}
