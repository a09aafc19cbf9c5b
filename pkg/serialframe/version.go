package serialframe

import (
	"github.com/bft-labs/serialframe/pkg/framing"
	"github.com/bft-labs/serialframe/pkg/log"
)

// Version is the current version of the serialframe module.
const Version = "1.0.0"

// MinCompatibleVersion is the minimum version of this module that remains
// API-compatible with the current release.
const MinCompatibleVersion = "1.0.0"

// ModuleVersions returns the current version of every sub-module.
func ModuleVersions() map[string]string {
	return map[string]string{
		"serialframe": Version,
		"framing":     framing.Version,
		"log":         log.Version,
	}
}

// CompatibilityMatrix returns the minimum compatible version of every
// sub-module. A consumer pinning an older sub-module below its entry here
// cannot be used with this release.
func CompatibilityMatrix() map[string]string {
	return map[string]string{
		"serialframe": MinCompatibleVersion,
		"framing":     framing.MinCompatibleVersion,
		"log":         log.MinCompatibleVersion,
	}
}
