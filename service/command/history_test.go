package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {
	h := NewHistory()
	assert.Nil(t, h.Pop())
	assert.Nil(t, h.Peek())
	assert.Nil(t, h.DropOldest())

	a, b, c := Func("a", nil, nil), Func("b", nil, nil), Func("c", nil, nil)
	h.Push(a)
	h.Push(b)
	h.Push(c)
	assert.Equal(t, 3, h.Len())
	assert.Same(t, c, h.Peek())
	assert.Equal(t, []Command{c, b, a}, h.Items())

	assert.Same(t, a, h.DropOldest())
	assert.Same(t, c, h.Pop())
	assert.Equal(t, []Command{b}, h.Items())

	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Items())
}

func TestNameOf(t *testing.T) {
	assert.Equal(t, "jump", NameOf(Func("jump", nil, nil)))
	assert.Equal(t, "*command.Macro", NameOf(&Macro{}))
}
