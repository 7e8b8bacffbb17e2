package entity

// storageHash is the 31-based rolling string hash the legacy data files
// key their records by. Arithmetic wraps at 32 bits, so hashes of long
// strings can be negative.
func storageHash(s string) int32 {
	var h int32
	for _, r := range s {
		h = 31*h + int32(r)
	}
	return h
}
