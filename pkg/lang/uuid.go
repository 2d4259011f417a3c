package lang

import (
	"cmp"
	"encoding/binary"

	"github.com/google/uuid"
)

// UUID is an object-shaped Comparable. Ordering compares the most and then
// the least significant 64 bits as signed integers, so UUIDs whose first
// byte is >= 0x80 sort before those below it.
type UUID struct {
	uuid.UUID
}

func NewUUID() UUID { return UUID{uuid.New()} }

func ParseUUID(s string) (UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, err
	}
	return UUID{u}, nil
}

func (u UUID) MostSignificantBits() int64 {
	return int64(binary.BigEndian.Uint64(u.UUID[:8]))
}

func (u UUID) LeastSignificantBits() int64 {
	return int64(binary.BigEndian.Uint64(u.UUID[8:]))
}

func unboxUUID(v any) UUID {
	switch o := v.(type) {
	case UUID:
		return o
	case uuid.UUID:
		return UUID{o}
	}
	panic(&ClassCastError{Value: v, Target: "UUID"})
}

func (u UUID) CompareTo(other any) int {
	o := unboxUUID(other)
	if c := cmp.Compare(u.MostSignificantBits(), o.MostSignificantBits()); c != 0 {
		return c
	}
	return cmp.Compare(u.LeastSignificantBits(), o.LeastSignificantBits())
}

func (u UUID) Equals(other any) bool {
	switch o := other.(type) {
	case UUID:
		return u.UUID == o.UUID
	case uuid.UUID:
		return u.UUID == o
	}
	return false
}

func (u UUID) HashCode() int32 {
	hilo := u.MostSignificantBits() ^ u.LeastSignificantBits()
	return int32(hilo>>32) ^ int32(hilo)
}
