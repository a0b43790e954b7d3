package rotation

import "math"

// Checklist melacak langkah prosedur yang sudah dicentang operator selama
// eksekusi change over. Murni state tampilan: tidak dipersist dan tidak
// menghalangi konfirmasi rotasi (rotasi boleh dikonfirmasi tanpa centang).
type Checklist struct {
	total   int
	checked map[int]struct{}
}

// NewChecklist membuat checklist untuk daftar prosedur sebuah task.
func NewChecklist(procedures []string) *Checklist {
	return &Checklist{
		total:   len(procedures),
		checked: make(map[int]struct{}),
	}
}

// Toggle membalik status satu langkah: tercentang jadi tidak, dan sebaliknya.
// Index di luar daftar prosedur diabaikan.
func (c *Checklist) Toggle(index int) {
	if index < 0 || index >= c.total {
		return
	}
	if _, ok := c.checked[index]; ok {
		delete(c.checked, index)
		return
	}
	c.checked[index] = struct{}{}
}

// Checked melaporkan apakah sebuah langkah sudah dicentang.
func (c *Checklist) Checked(index int) bool {
	_, ok := c.checked[index]
	return ok
}

// Done mengembalikan jumlah langkah yang sudah dicentang.
func (c *Checklist) Done() int {
	return len(c.checked)
}

// Total mengembalikan jumlah langkah prosedur.
func (c *Checklist) Total() int {
	return c.total
}

// Percent menghitung persentase progres. Penyebut minimal 1 supaya task
// tanpa prosedur menghasilkan 0, bukan pembagian nol.
func (c *Checklist) Percent() int {
	denom := c.total
	if denom < 1 {
		denom = 1
	}
	return int(math.Round(float64(len(c.checked)) / float64(denom) * 100))
}
