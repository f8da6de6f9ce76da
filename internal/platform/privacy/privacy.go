// Package privacy keeps personal data out of logs, traces and metrics.
package privacy

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net"
)

// HashCitizenID returns a short SHA-256 prefix of a citizen ID so log lines
// and spans can be correlated without recording the ID itself.
func HashCitizenID(id string) string {
	if id == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(id))
	return hex.EncodeToString(hash[:8])
}

// AnonymizeIP truncates an IP address to its network prefix.
//
// IPv4 keeps the /24 ("192.168.1.47" -> "192.168.1.0"); IPv6 keeps the /48
// ("2001:db8:85a3::8a2e:370:7334" -> "2001:0db8:85a3::").
// Returns "unknown" for empty input and "invalid" for unparseable input.
func AnonymizeIP(ip string) string {
	if ip == "" || ip == "unknown" {
		return "unknown"
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "invalid"
	}

	if v4 := parsed.To4(); v4 != nil {
		return fmt.Sprintf("%d.%d.%d.0", v4[0], v4[1], v4[2])
	}

	return fmt.Sprintf("%02x%02x:%02x%02x:%02x%02x::",
		parsed[0], parsed[1],
		parsed[2], parsed[3],
		parsed[4], parsed[5])
}

// AnonymizeRemoteAddr strips the port from an http.Request.RemoteAddr and anonymizes the host.
func AnonymizeRemoteAddr(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	return AnonymizeIP(host)
}
