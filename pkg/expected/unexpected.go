package expected

import "fmt"

// Unexpected tags a payload as the error side of an Expected.
type Unexpected[E any] struct {
	err E
}

func Unexpect[E any](err E) Unexpected[E] {
	return Unexpected[E]{err: err}
}

func (u Unexpected[E]) Payload() E {
	return u.err
}

func (u Unexpected[E]) String() string {
	return fmt.Sprintf("Unexpected(%v)", u.err)
}
