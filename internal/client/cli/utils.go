package cli

// wipeBytes zeroes b so a password does not linger in memory.
func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
