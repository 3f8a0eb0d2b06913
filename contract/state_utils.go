package contract

import (
	"fmt"
	"sort"
	"strings"

	"grant_ledger/sdk"
)

// txState buffers every write of one invocation on top of the backing store. Reads
// see the buffered writes first. Nothing reaches the store until commit, so an
// aborted call simply drops the txState.
type txState struct {
	base   sdk.State
	writes map[string]*string // nil value marks a delete
}

func newTxState(base sdk.State) *txState {
	return &txState{base: base, writes: map[string]*string{}}
}

func (t *txState) Get(key string) (string, bool, error) {
	if v, ok := t.writes[key]; ok {
		if v == nil {
			return "", false, nil
		}
		return *v, true, nil
	}
	return t.base.Get(key)
}

// Set skips writes that would not change the stored value so we dont churn the store.
func (t *txState) Set(key, value string) error {
	if _, pending := t.writes[key]; !pending {
		existing, ok, err := t.base.Get(key)
		if err != nil {
			return err
		}
		if ok && existing == value {
			return nil
		}
	}
	v := value
	t.writes[key] = &v
	return nil
}

func (t *txState) Delete(key string) error {
	t.writes[key] = nil
	return nil
}

// Iterate merges the backing store with pending writes and walks the result in
// ascending key order.
func (t *txState) Iterate(prefix string, fn func(key, value string) error) error {
	merged := map[string]string{}
	if err := t.base.Iterate(prefix, func(k, v string) error {
		merged[k] = v
		return nil
	}); err != nil {
		return err
	}
	for k, v := range t.writes {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = *v
	}
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := fn(k, merged[k]); err != nil {
			return err
		}
	}
	return nil
}

// ops returns the buffered writes sorted by key.
func (t *txState) ops() []sdk.Op {
	out := make([]sdk.Op, 0, len(t.writes))
	for k, v := range t.writes {
		if v == nil {
			out = append(out, sdk.Op{Key: k, Delete: true})
			continue
		}
		out = append(out, sdk.Op{Key: k, Value: *v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// commit flushes the buffer. Stores implementing sdk.Batcher get a single atomic
// batch; plain stores get the writes one by one.
func (t *txState) commit() error {
	ops := t.ops()
	if len(ops) == 0 {
		return nil
	}
	if b, ok := t.base.(sdk.Batcher); ok {
		return b.Apply(ops)
	}
	for _, op := range ops {
		var err error
		if op.Delete {
			err = t.base.Delete(op.Key)
		} else {
			err = t.base.Set(op.Key, op.Value)
		}
		if err != nil {
			return fmt.Errorf("write %x: %w", op.Key, err)
		}
	}
	return nil
}
