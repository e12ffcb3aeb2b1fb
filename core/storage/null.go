package storage

// Null is a Store for execution contexts with no client storage available,
// such as server-side rendering. Every operation is a benign no-op: reads
// report absent, writes are discarded, nothing ever panics or errors.
type Null struct{}

// NewNull creates a no-op store.
func NewNull() Null { return Null{} }

func (Null) Get(string) (string, bool) { return "", false }
func (Null) Set(string, string)        {}
func (Null) Delete(string)             {}
