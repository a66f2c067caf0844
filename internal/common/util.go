package common

// WipeByteArray overwrites buf with zeros. Use it to clear password buffers
// once they are no longer needed. Safe to call with nil.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
