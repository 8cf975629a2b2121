package ordmap

import (
	"encoding/binary"
	"hash/maphash"
	"math"

	"github.com/spaolacci/murmur3"
)

// fallbackSeed seeds hashing of key types without a canonical encoding.
var fallbackSeed = maphash.MakeSeed()

// hashKey hashes a key using MurmurHash3 over a canonical encoding.
//
// Strings, integers, floats and bools hash identically across processes.
// Other comparable keys (structs, arrays, pointers, channels) go through
// maphash.Comparable, which is stable for the lifetime of the process.
// Equal keys always produce equal hashes.
func hashKey[K comparable](key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return murmur3.Sum64([]byte(k))
	case int:
		return hashUint64(uint64(k))
	case int8:
		return hashUint64(uint64(k))
	case int16:
		return hashUint64(uint64(k))
	case int32:
		return hashUint64(uint64(k))
	case int64:
		return hashUint64(uint64(k))
	case uint:
		return hashUint64(uint64(k))
	case uint8:
		return hashUint64(uint64(k))
	case uint16:
		return hashUint64(uint64(k))
	case uint32:
		return hashUint64(uint64(k))
	case uint64:
		return hashUint64(k)
	case uintptr:
		return hashUint64(uint64(k))
	case float32:
		return hashFloat64(float64(k))
	case float64:
		return hashFloat64(k)
	case bool:
		if k {
			return hashUint64(1)
		}
		return hashUint64(0)
	default:
		return maphash.Comparable(fallbackSeed, key)
	}
}

func hashUint64(u uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	return murmur3.Sum64(buf[:])
}

// hashFloat64 folds -0 onto +0 so that keys comparing equal share a bucket.
func hashFloat64(f float64) uint64 {
	if f == 0 {
		return hashUint64(0)
	}
	return hashUint64(math.Float64bits(f))
}
