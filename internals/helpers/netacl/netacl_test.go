package netacl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowed_ExactMatch(t *testing.T) {
	tests := []struct {
		name     string
		observed string
		list     []string
		want     bool
	}{
		{"same address", "10.0.0.5", []string{"10.0.0.5"}, true},
		{"different address", "10.0.0.6", []string{"10.0.0.5"}, false},
		{"second entry matches", "10.0.0.6", []string{"10.0.0.5", "10.0.0.6"}, true},
		{"empty list", "10.0.0.5", nil, false},
		{"empty observed", "", []string{"10.0.0.5"}, false},
		{"ipv6 exact", "::1", []string{"::1"}, true},
		{"whitespace entry", "10.0.0.5", []string{"  10.0.0.5  "}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAllowed(tt.observed, tt.list))
		})
	}
}

func TestIsAllowed_RangeMatch(t *testing.T) {
	tests := []struct {
		name     string
		observed string
		list     []string
		want     bool
	}{
		{"inside /24", "192.168.1.50", []string{"192.168.1.0/24"}, true},
		{"outside /24", "10.0.0.5", []string{"192.168.1.0/24"}, false},
		{"edge of /24", "192.168.1.255", []string{"192.168.1.0/24"}, true},
		{"next subnet", "192.168.2.1", []string{"192.168.1.0/24"}, false},
		{"/32 only exact", "192.168.1.50", []string{"192.168.1.50/32"}, true},
		{"/32 rejects neighbour", "192.168.1.51", []string{"192.168.1.50/32"}, false},
		{"/0 matches everything", "8.8.8.8", []string{"0.0.0.0/0"}, true},
		{"/16 inside", "172.16.200.1", []string{"172.16.0.0/16"}, true},
		{"/16 outside", "172.17.0.1", []string{"172.16.0.0/16"}, false},
		{"ipv6 never matches range", "::1", []string{"0.0.0.0/0"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAllowed(tt.observed, tt.list))
		})
	}
}

// Entry rusak harus dilewati, bukan menggagalkan entry valid setelahnya.
func TestIsAllowed_MalformedEntriesSkipped(t *testing.T) {
	list := []string{
		"not-an-ip",
		"300.1.2.3",
		"192.168.1.0/33",
		"192.168.1.0/-1",
		"192.168.1.0/abc",
		"1.2.3",
		"",
		"192.168.1.0/24", // valid, harus tetap dicek
	}
	assert.True(t, IsAllowed("192.168.1.10", list))
	assert.False(t, IsAllowed("10.9.9.9", list))
}

func TestPrefixMask(t *testing.T) {
	assert.Equal(t, uint32(0), prefixMask(0))
	assert.Equal(t, uint32(0xFFFFFFFF), prefixMask(32))
	assert.Equal(t, uint32(0xFFFFFF00), prefixMask(24))
	assert.Equal(t, uint32(0xFFFF0000), prefixMask(16))
	assert.Equal(t, uint32(0x80000000), prefixMask(1))
}

func TestIPv4ToUint32(t *testing.T) {
	v, ok := ipv4ToUint32("192.168.1.50")
	assert.True(t, ok)
	assert.Equal(t, uint32(192<<24|168<<16|1<<8|50), v)

	for _, bad := range []string{"", "1.2.3", "1.2.3.4.5", "a.b.c.d", "256.0.0.1", "1..2.3"} {
		_, ok := ipv4ToUint32(bad)
		assert.False(t, ok, bad)
	}
}
