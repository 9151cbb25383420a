// Package release resolves, downloads, and unpacks the latest backend
// build from its GitHub releases.
package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fscarmen2/LightProxy/internal/backend"
	"github.com/fscarmen2/LightProxy/internal/logger"
)

var ErrNoAsset = errors.New("no matching release asset")

const userAgent = "lightproxy-installer"

// apiBase is a var so tests can point it at a local server.
var apiBase = "https://api.github.com"

// Asset is one downloadable file attached to a release.
type Asset struct {
	Name string `json:"name"`
	URL  string `json:"browser_download_url"`
}

// Release is the subset of the GitHub release API response we act on.
type Release struct {
	Tag    string  `json:"tag_name"`
	Assets []Asset `json:"assets"`
}

// Latest fetches the backend's newest release metadata.
func Latest(ctx context.Context, client *http.Client, kind backend.Kind) (Release, error) {
	if client == nil {
		client = http.DefaultClient
	}
	url := fmt.Sprintf("%s/repos/%s/releases/latest", apiBase, kind.Repo())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Release{}, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := client.Do(req)
	if err != nil {
		return Release{}, fmt.Errorf("fetch release metadata: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Release{}, fmt.Errorf("fetch release metadata: status %d: %s", resp.StatusCode, body)
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return Release{}, fmt.Errorf("decode release metadata: %w", err)
	}
	return rel, nil
}

// SelectAsset filters the typed asset list with the backend's naming
// convention for one architecture tag.
func SelectAsset(rel Release, kind backend.Kind, archTag string) (Asset, error) {
	for _, a := range rel.Assets {
		if kind.MatchAsset(a.Name, archTag) {
			return a, nil
		}
	}
	return Asset{}, fmt.Errorf("%w: %s %s in release %s", ErrNoAsset, kind, archTag, rel.Tag)
}

// Install downloads the asset with the given fetch tool, extracts it
// with the backend's archive tool, and places the single executable at
// binaryPath with mode 0755. Temporary files are removed on every path.
func Install(ctx context.Context, kind backend.Kind, asset Asset, fetchTool, binaryPath string) error {
	tmpDir, err := os.MkdirTemp("", "lightproxy-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	archive := filepath.Join(tmpDir, asset.Name)
	logger.Info("Downloading %s...", asset.Name)
	if err := download(ctx, fetchTool, asset.URL, archive); err != nil {
		return err
	}

	extractDir := filepath.Join(tmpDir, "extract")
	if err := os.MkdirAll(extractDir, 0755); err != nil {
		return err
	}
	if err := extract(ctx, kind, archive, extractDir); err != nil {
		return err
	}

	src, err := findBinary(extractDir, kind.BinaryName())
	if err != nil {
		return err
	}
	if err := moveFile(src, binaryPath); err != nil {
		return err
	}
	return os.Chmod(binaryPath, 0755)
}

func download(ctx context.Context, fetchTool, url, dest string) error {
	var cmd *exec.Cmd
	switch fetchTool {
	case "wget":
		cmd = exec.CommandContext(ctx, "wget", "-qO", dest, url)
	default:
		cmd = exec.CommandContext(ctx, "curl", "-fsSL", "-o", dest, url)
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("download %s: %v: %s", url, err, out)
	}
	return nil
}

func extract(ctx context.Context, kind backend.Kind, archive, dir string) error {
	var cmd *exec.Cmd
	if kind.ArchiveExt() == ".zip" {
		cmd = exec.CommandContext(ctx, "unzip", "-o", archive, "-d", dir)
	} else {
		cmd = exec.CommandContext(ctx, "tar", "-xzf", archive, "-C", dir)
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("extract %s: %v: %s", filepath.Base(archive), err, out)
	}
	return nil
}

// findBinary walks the extracted tree for the named executable; release
// archives nest it differently per backend.
func findBinary(root, name string) (string, error) {
	var found string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == name {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", fmt.Errorf("%w: executable %q not found in archive", ErrNoAsset, name)
	}
	return found, nil
}

// moveFile copies across filesystems since the temp dir and install dir
// may not share one.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
