package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecklistToggleAndPercent(t *testing.T) {
	c := NewChecklist([]string{"langkah 1", "langkah 2", "langkah 3", "langkah 4"})

	assert.Equal(t, 0, c.Percent())

	c.Toggle(0)
	c.Toggle(2)
	assert.True(t, c.Checked(0))
	assert.False(t, c.Checked(1))
	assert.Equal(t, 2, c.Done())
	assert.Equal(t, 50, c.Percent())

	// Toggle kedua kali membatalkan centang
	c.Toggle(2)
	assert.False(t, c.Checked(2))
	assert.Equal(t, 25, c.Percent())
}

func TestChecklistEmptyProceduresNeverDivideError(t *testing.T) {
	c := NewChecklist(nil)
	assert.Equal(t, 0, c.Total())
	assert.Equal(t, 0, c.Percent())

	// Toggle apapun pada checklist kosong tetap 0%
	c.Toggle(0)
	c.Toggle(5)
	assert.Equal(t, 0, c.Done())
	assert.Equal(t, 0, c.Percent())
}

func TestChecklistIgnoresOutOfRange(t *testing.T) {
	c := NewChecklist([]string{"satu", "dua"})
	c.Toggle(-1)
	c.Toggle(2)
	assert.Equal(t, 0, c.Done())

	c.Toggle(1)
	assert.Equal(t, 50, c.Percent())
}

func TestChecklistRounding(t *testing.T) {
	c := NewChecklist([]string{"a", "b", "c"})
	c.Toggle(0)
	// 1/3 -> 33%
	assert.Equal(t, 33, c.Percent())
	c.Toggle(1)
	// 2/3 -> 67%
	assert.Equal(t, 67, c.Percent())
}
