package parser

// Interner deduplicates strings behind a canonical pool. Identifiers and
// member names repeat constantly in script files ("console", "log", loop
// variables), so handing out one shared instance per spelling keeps the
// tree's allocation count down.
type Interner struct {
	pool map[string]string
}

// NewInterner creates an interner sized for capacity entries.
func NewInterner(capacity int) *Interner {
	return &Interner{pool: make(map[string]string, capacity)}
}

// Intern returns the canonical instance of s, pooling it on first sight.
func (i *Interner) Intern(s string) string {
	if interned, ok := i.pool[s]; ok {
		return interned
	}
	i.pool[s] = s
	return s
}

// InternBytes interns the string form of b. This is the lexer-token path,
// where the text starts out as a slice of the source buffer.
func (i *Interner) InternBytes(b []byte) string {
	return i.Intern(string(b))
}

// Size reports how many unique strings the pool holds.
func (i *Interner) Size() int {
	return len(i.pool)
}
