package contract

import (
	"bytes"
	"encoding/binary"
	"errors"
	"sort"

	"grant_ledger/sdk"
)

type binWriter struct {
	buf bytes.Buffer
}

func newWriter() *binWriter { return &binWriter{} }

func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAmount stores the fixed 16 byte big-endian form.
func (w *binWriter) writeAmount(a sdk.Amount) {
	b := a.Bytes16()
	w.buf.Write(b[:])
}

type binReader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

func (r *binReader) done() bool { return r.pos == len(r.data) }

func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if l > uint64(len(r.data)-r.pos) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

func (r *binReader) readAmount() (sdk.Amount, error) {
	if r.pos+16 > len(r.data) {
		return sdk.Amount{}, errors.New("unexpected EOF")
	}
	var b [16]byte
	copy(b[:], r.data[r.pos:r.pos+16])
	r.pos += 16
	return sdk.AmountFromBytes16(b), nil
}

// EncodeBalances writes count|denom|amount... with denominations sorted, so equal maps
// always encode to equal bytes.
func EncodeBalances(b Balances) []byte {
	w := newWriter()
	denoms := b.Denoms()
	w.writeVarUint(uint64(len(denoms)))
	for _, d := range denoms {
		w.writeString(d)
		w.writeAmount(b[d])
	}
	return w.bytes()
}

func DecodeBalances(data []byte) (Balances, error) {
	r := newReader(data)
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	if count > uint64(len(data)) {
		return nil, errors.New("balance count exceeds payload")
	}
	out := make(Balances, count)
	for i := uint64(0); i < count; i++ {
		denom, err := r.readString()
		if err != nil {
			return nil, err
		}
		amt, err := r.readAmount()
		if err != nil {
			return nil, err
		}
		out[denom] = amt
	}
	if !r.done() {
		return nil, errors.New("trailing bytes after balances")
	}
	return out, nil
}

// Denoms lists the denominations in ascending order.
func (b Balances) Denoms() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
