package nxt64

import "fmt"

// InvalidKeyLengthError reports a key length that is zero, not a multiple
// of 8 bits, greater than 256 bits, or longer than the key bytes supplied.
type InvalidKeyLengthError int

func (e InvalidKeyLengthError) Error() string {
	return fmt.Sprintf("nxt64: invalid key length %d bits, must be a positive multiple of 8 not exceeding 256 and covered by the key bytes supplied", int(e))
}

// InvalidBlockLengthError reports an input or output buffer that is not
// exactly BlockSize bytes.
type InvalidBlockLengthError int

func (e InvalidBlockLengthError) Error() string {
	return fmt.Sprintf("nxt64: invalid block length %d, must be exactly %d bytes", int(e), BlockSize)
}
