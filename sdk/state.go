package sdk

// State is the key/value store the ledger persists into. Keys are compact binary
// strings; Iterate walks a prefix in ascending byte order.
type State interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Iterate(prefix string, fn func(key, value string) error) error
}

// Op is one buffered write. Delete ops ignore Value.
type Op struct {
	Key    string
	Value  string
	Delete bool
}

// Batcher is implemented by stores that can apply several writes atomically.
type Batcher interface {
	Apply(ops []Op) error
}
