package domain

import "strings"

// DefaultIPFSGateway serves ipfs:// content over HTTPS
const DefaultIPFSGateway = "https://cloudflare-ipfs.com/ipfs"

// IPFSToHTTP converts an ipfs:// CID reference into a gateway URL.
// URLs that already use https pass through; empty input stays empty.
// With isJSON the metadata document inside the CID directory is addressed.
func IPFSToHTTP(gateway, url string, isJSON bool) string {
	if url == "" {
		return url
	}
	if strings.Contains(url, "https://") {
		return url
	}
	if gateway == "" {
		gateway = DefaultIPFSGateway
	}
	cid := strings.ReplaceAll(url, "ipfs://", "")
	if isJSON {
		return strings.TrimRight(gateway, "/") + "/" + cid + "/metadata.json"
	}
	return strings.TrimRight(gateway, "/") + "/" + cid
}
