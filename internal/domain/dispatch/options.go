package dispatch

// Option applies a configuration option to the Table.
type Option func(*Table)

// WithEntry registers an additional workout type after the defaults.
func WithEntry(e Entry) Option {
	return func(t *Table) {
		t.pending = append(t.pending, e)
	}
}

// WithoutDefaults starts from an empty table.
func WithoutDefaults() Option {
	return func(t *Table) {
		t.skipDefaults = true
	}
}
