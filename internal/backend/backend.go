// Package backend describes the two proxy engines this tool can install.
package backend

import (
	"fmt"
	"strings"
)

type Kind string

const (
	Xray    Kind = "xray"
	SingBox Kind = "sing-box"
)

// Parse validates a user-supplied proxy type.
func Parse(s string) (Kind, error) {
	switch Kind(s) {
	case Xray:
		return Xray, nil
	case SingBox:
		return SingBox, nil
	default:
		return "", fmt.Errorf("invalid proxy type %q (want %q or %q)", s, Xray, SingBox)
	}
}

// Repo returns the GitHub owner/repo publishing the backend's releases.
func (k Kind) Repo() string {
	switch k {
	case Xray:
		return "XTLS/Xray-core"
	case SingBox:
		return "SagerNet/sing-box"
	}
	return ""
}

// BinaryName is the executable name inside a release archive, and the
// name the binary keeps inside the install directory.
func (k Kind) BinaryName() string {
	switch k {
	case Xray:
		return "xray"
	case SingBox:
		return "sing-box"
	}
	return ""
}

// ArchiveExt is the release archive format, which differs per backend.
func (k Kind) ArchiveExt() string {
	if k == Xray {
		return ".zip"
	}
	return ".tar.gz"
}

// MatchAsset reports whether a release asset name is the Linux build for
// the given backend-specific architecture tag.
func (k Kind) MatchAsset(name, archTag string) bool {
	switch k {
	case Xray:
		return name == fmt.Sprintf("Xray-linux-%s.zip", archTag)
	case SingBox:
		return strings.HasPrefix(name, "sing-box-") &&
			strings.HasSuffix(name, fmt.Sprintf("linux-%s.tar.gz", archTag))
	}
	return false
}
