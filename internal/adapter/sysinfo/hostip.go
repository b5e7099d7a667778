package sysinfo

import "net"

const fallbackHostIP = "127.0.0.1"

// DetectHostIP returns the IP address this host is reachable on from the
// local network. It opens a UDP socket towards a public resolver, which
// routes no packets but makes the kernel pick the outbound interface.
// Falls back to loopback when the host has no route at all.
func DetectHostIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return fallbackHostIP
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || addr.IP == nil {
		return fallbackHostIP
	}
	return addr.IP.String()
}
