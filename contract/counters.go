package contract

import (
	"fmt"
	"strconv"
	"strings"

	"grant_ledger/sdk"
)

// loadRound reads the active round id. A missing counter means the ledger was never
// initialized, which the callers surface as ErrNotFound.
func loadRound(st sdk.State) (uint64, error) {
	raw, ok, err := st.Get(roundKey())
	if err != nil {
		return 0, err
	}
	if !ok || raw == "" {
		return 0, fmt.Errorf("%w: round id", ErrNotFound)
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt round id %q: %w", raw, err)
	}
	return n, nil
}

// saveRound stores the counter back as decimal text.
func saveRound(st sdk.State, n uint64) error {
	return st.Set(roundKey(), strconv.FormatUint(n, 10))
}

// UInt64ToString turns an id back into decimal text for events and logs.
// Example payload: UInt64ToString(9001)
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// UInt64SliceToString encodes project id lists as 1,2,5 for event attributes.
// Example payload: UInt64SliceToString([]uint64{1,2,3})
func UInt64SliceToString(nums []uint64) string {
	strNums := make([]string, len(nums))
	for i, n := range nums {
		strNums[i] = strconv.FormatUint(n, 10)
	}
	return strings.Join(strNums, ",")
}

// AmountSliceToString mirrors UInt64SliceToString for vote amounts.
// Example payload: AmountSliceToString([]sdk.Amount{sdk.NewAmount(10)})
func AmountSliceToString(amounts []sdk.Amount) string {
	strs := make([]string, len(amounts))
	for i, a := range amounts {
		strs[i] = a.String()
	}
	return strings.Join(strs, ",")
}
