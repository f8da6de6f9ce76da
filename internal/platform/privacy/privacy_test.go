package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashCitizenID(t *testing.T) {
	assert.Equal(t, "", HashCitizenID(""))
	assert.Len(t, HashCitizenID("1101402211111"), 16)
	assert.Equal(t, HashCitizenID("1101402211111"), HashCitizenID("1101402211111"))
	assert.NotEqual(t, HashCitizenID("1101402211111"), HashCitizenID("11014022111"))
	assert.NotContains(t, HashCitizenID("1101402211111"), "1101402211111")
}

func TestAnonymizeIP(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "ipv4 standard address", input: "192.168.1.47", expected: "192.168.1.0"},
		{name: "ipv4 localhost", input: "127.0.0.1", expected: "127.0.0.0"},
		{name: "ipv6 full address", input: "2001:db8:85a3::8a2e:370:7334", expected: "2001:0db8:85a3::"},
		{name: "ipv6 loopback", input: "::1", expected: "0000:0000:0000::"},
		{name: "empty string", input: "", expected: "unknown"},
		{name: "unknown value", input: "unknown", expected: "unknown"},
		{name: "invalid ip", input: "not-an-ip", expected: "invalid"},
		{name: "ip with port", input: "192.168.1.1:8080", expected: "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AnonymizeIP(tt.input))
		})
	}
}

func TestAnonymizeRemoteAddr(t *testing.T) {
	assert.Equal(t, "192.168.1.0", AnonymizeRemoteAddr("192.168.1.1:8080"))
	assert.Equal(t, "2001:0db8:85a3::", AnonymizeRemoteAddr("[2001:db8:85a3::1]:443"))
	assert.Equal(t, "10.0.0.0", AnonymizeRemoteAddr("10.0.0.9"))
	assert.Equal(t, "unknown", AnonymizeRemoteAddr(""))
}
