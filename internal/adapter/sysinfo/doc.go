// Package sysinfo samples host-level metrics: CPU load and temperature,
// memory, mounted disks and the host's reachable IP address. Samples are
// cached for a short TTL because every dashboard refresh asks for them.
package sysinfo
