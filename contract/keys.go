package contract

import (
	"encoding/binary"

	"grant_ledger/sdk"
)

// Numeric key parts are big-endian so a prefix walk returns rounds and projects in
// ascending order.

// packU64BEInline writes x into dst[0:8].
func packU64BEInline(x uint64, dst []byte) {
	binary.BigEndian.PutUint64(dst, x)
}

// packU64BE appends the encoded number to dst and returns the new slice.
func packU64BE(x uint64, dst []byte) []byte {
	return binary.BigEndian.AppendUint64(dst, x)
}

// adminKey mixes the prefix with the raw address bytes so the admin set sorts by address.
func adminKey(addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kAdmin)
	buf = append(buf, addrStr...)
	return string(buf)
}

func adminPrefix() string {
	return string([]byte{kAdmin})
}

func beneficiaryKey() string {
	return string([]byte{kBeneficiary})
}

func roundKey() string {
	return string([]byte{kRound})
}

// projectKey stores the totals of one project in one round.
func projectKey(round, project uint64) string {
	var buf [17]byte
	buf[0] = kProject
	packU64BEInline(round, buf[1:9])
	packU64BEInline(project, buf[9:17])
	return string(buf[:])
}

// roundProjectsPrefix covers every project key of a round.
func roundProjectsPrefix(round uint64) string {
	var buf [9]byte
	buf[0] = kProject
	packU64BEInline(round, buf[1:9])
	return string(buf[:])
}

// projectIDFromKey is the inverse of projectKey for the project part.
func projectIDFromKey(key string) (uint64, bool) {
	if len(key) != 17 || key[0] != kProject {
		return 0, false
	}
	return binary.BigEndian.Uint64([]byte(key[9:17])), true
}

// voteKey stores what one voter gave to one project in one round.
func voteKey(round, project uint64, voter sdk.Address) string {
	addrStr := voter.String()
	buf := make([]byte, 0, 1+8+8+len(addrStr))
	buf = append(buf, kVote)
	buf = packU64BE(round, buf)
	buf = packU64BE(project, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}
