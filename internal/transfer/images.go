package transfer

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

//go:generate mockgen -destination=mock/mock_resolver.go -package=transfermock github.com/KirkDiggler/rpg-charsheet/internal/transfer ImageResolver

const (
	defaultFetchTimeout  = 15 * time.Second
	defaultMaxImageBytes = 5 << 20
)

// ImageResolver turns an image reference into self-contained data
type ImageResolver interface {
	// Resolve returns ref as a data URL. Data URLs and empty references are
	// returned unchanged.
	Resolve(ctx context.Context, ref string) (string, error)
}

// InlinerConfig contains configuration for the image inliner
type InlinerConfig struct {
	// HTTPClient fetches http(s) references; defaults to a client with a 15s timeout
	HTTPClient *http.Client
	// AssetDir is the only directory local images are read from; defaults to the
	// working directory
	AssetDir string
	// MaxBytes rejects larger images; defaults to 5 MiB
	MaxBytes int64
}

// Inliner resolves data URLs, http(s) URLs and local files into data URLs
type Inliner struct {
	client   *http.Client
	assetDir string
	maxBytes int64
}

// NewInliner creates an image inliner
func NewInliner(cfg *InlinerConfig) *Inliner {
	if cfg == nil {
		cfg = &InlinerConfig{}
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxImageBytes
	}

	return &Inliner{
		client:   client,
		assetDir: cfg.AssetDir,
		maxBytes: maxBytes,
	}
}

// IsInlined reports whether ref is already embedded image data
func IsInlined(ref string) bool {
	return strings.HasPrefix(ref, "data:")
}

// Resolve implements ImageResolver
func (i *Inliner) Resolve(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || IsInlined(ref) {
		return ref, nil
	}

	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return i.fetch(ctx, ref)
	}
	return i.readFile(ref)
}

func (i *Inliner) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid image URL")
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeUnavailable, "failed to fetch image")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Newf(errors.CodeUnavailable, "image fetch returned status %d", resp.StatusCode).
			WithMeta("url", url)
	}

	data, err := i.readLimited(resp.Body)
	if err != nil {
		return "", err
	}

	contentType, typeErr := imageType(resp.Header.Get("Content-Type"), data)
	if typeErr != nil {
		return "", typeErr.WithMeta("url", url)
	}
	return dataURL(contentType, data), nil
}

// readFile inlines a file under the asset directory. Absolute references and
// references that leave the directory are rejected.
func (i *Inliner) readFile(ref string) (string, error) {
	name := filepath.Clean(filepath.FromSlash(ref))
	if !filepath.IsLocal(name) {
		return "", errors.InvalidArgumentf("image path %q is outside the asset directory", ref)
	}

	dir := i.assetDir
	if dir == "" {
		dir = "."
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeNotFound, "failed to open asset directory").WithMeta("dir", dir)
	}
	defer root.Close()

	f, err := root.Open(name)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeNotFound, "failed to open image").WithMeta("path", ref)
	}
	defer f.Close()

	data, err := i.readLimited(f)
	if err != nil {
		return "", err
	}

	contentType, typeErr := imageType(mime.TypeByExtension(strings.ToLower(filepath.Ext(name))), data)
	if typeErr != nil {
		return "", typeErr.WithMeta("path", ref)
	}
	return dataURL(contentType, data), nil
}

// imageType returns the declared media type when it is an image, otherwise
// the sniffed one. Anything that is not an image is rejected.
func imageType(declared string, data []byte) (string, *errors.Error) {
	if mediaType, _, err := mime.ParseMediaType(declared); err == nil && strings.HasPrefix(mediaType, "image/") {
		return mediaType, nil
	}
	sniffed, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	if !strings.HasPrefix(sniffed, "image/") {
		return "", errors.InvalidArgumentf("reference is %s, not an image", sniffed)
	}
	return sniffed, nil
}

func (i *Inliner) readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, i.maxBytes+1))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read image")
	}
	if int64(len(data)) > i.maxBytes {
		return nil, errors.ResourceExhaustedf("image exceeds %d bytes", i.maxBytes)
	}
	return data, nil
}

func dataURL(contentType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}
