package config

import (
	"os"
	"strings"
)

const defaultEmailDomains = "go.minnstate.edu,minnstate.edu"

// AllowedEmailDomains returns the set of email domains accepted at
// registration, lowercased. Configured via ALLOWED_EMAIL_DOMAINS as a
// comma-separated list; campus domains are the default.
func AllowedEmailDomains() map[string]bool {
	raw := os.Getenv("ALLOWED_EMAIL_DOMAINS")
	if strings.TrimSpace(raw) == "" {
		raw = defaultEmailDomains
	}

	domains := make(map[string]bool)
	for _, d := range strings.Split(raw, ",") {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			domains[d] = true
		}
	}
	return domains
}

// UploadPath returns the directory item photos are stored under.
func UploadPath() string {
	if p := os.Getenv("UPLOAD_PATH"); p != "" {
		return p
	}
	return "./uploads"
}
