/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package discovery

import (
	"net/netip"
	"strings"
)

// Host is one line of scan output.
type Host struct {
	IP  string
	MAC string
}

// ParseScanOutput parses newline-separated "address<TAB>hardware-address"
// records. Blank lines and lines that do not start with an IP address, such
// as the arp-scan banner and summary, are skipped. Order and duplicates are kept.
func ParseScanOutput(output string) []Host {
	var hosts []Host

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, "\t")

		ip := strings.TrimSpace(parts[0])
		if _, err := netip.ParseAddr(ip); err != nil {
			continue
		}

		host := Host{IP: ip}
		if len(parts) > 1 {
			host.MAC = strings.TrimSpace(parts[1])
		}

		hosts = append(hosts, host)
	}

	return hosts
}

// NormalizeMAC normalizes a MAC address for consistent formatting
func NormalizeMAC(mac string) string {
	return strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(mac, ":", ""), "-", ""))
}

func filterByMAC(hosts []Host, mac string) []Host {
	want := NormalizeMAC(mac)

	filtered := make([]Host, 0, len(hosts))

	for _, h := range hosts {
		if NormalizeMAC(h.MAC) == want {
			filtered = append(filtered, h)
		}
	}

	return filtered
}
