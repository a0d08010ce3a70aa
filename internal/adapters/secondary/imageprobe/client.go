package imageprobe

import (
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp"

	"portfolio-gallery-service/internal/config"
	ports "portfolio-gallery-service/internal/core/ports/output"
)

const defaultMaxBytes = 10 << 20

type prober struct {
	client    *http.Client
	mediaRoot string
	urlPrefix string
	maxBytes  int64
}

// NewProber creates an ImageProber that fetches remote URIs over HTTP and
// reads everything else from the media root.
func NewProber(probeCfg *config.ProbeConfig, mediaCfg *config.MediaConfig) ports.ImageProber {
	timeout := probeCfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	maxBytes := probeCfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}

	return &prober{
		client: &http.Client{
			Timeout: timeout,
		},
		mediaRoot: mediaCfg.Root,
		urlPrefix: strings.TrimSuffix(mediaCfg.URLPrefix, "/"),
		maxBytes:  maxBytes,
	}
}

func (p *prober) Probe(ctx context.Context, uri string) bool {
	if uri == "" {
		return false
	}
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		return p.probeRemote(ctx, uri)
	}
	return p.probeLocal(uri)
}

func (p *prober) probeRemote(ctx context.Context, uri string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		log.WithError(err).WithField("uri", uri).Debug("invalid media uri")
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		log.WithError(err).WithField("uri", uri).Debug("media fetch failed")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.WithFields(log.Fields{
			"uri":    uri,
			"status": resp.StatusCode,
		}).Debug("media fetch returned non-2xx")
		return false
	}
	return p.decodes(uri, resp.Body)
}

func (p *prober) probeLocal(uri string) bool {
	path, ok := p.resolve(uri)
	if !ok {
		log.WithField("uri", uri).Debug("media path outside media root")
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).WithField("uri", uri).Debug("media file unreadable")
		return false
	}
	defer f.Close()
	return p.decodes(uri, f)
}

// resolve maps a media URI such as /media/paintings/a.jpg onto the media
// root. URIs outside the URL prefix and paths escaping the root are
// rejected.
func (p *prober) resolve(uri string) (string, bool) {
	rel := uri
	if p.urlPrefix != "" {
		if uri != p.urlPrefix && !strings.HasPrefix(uri, p.urlPrefix+"/") {
			return "", false
		}
		rel = strings.TrimPrefix(rel, p.urlPrefix)
	}
	rel = strings.TrimPrefix(filepath.FromSlash(rel), string(filepath.Separator))
	if rel == "" || !filepath.IsLocal(rel) {
		return "", false
	}
	return filepath.Join(p.mediaRoot, rel), true
}

func (p *prober) decodes(uri string, r io.Reader) bool {
	_, format, err := image.DecodeConfig(io.LimitReader(r, p.maxBytes))
	if err != nil {
		log.WithError(err).WithField("uri", uri).Debug("media is not a decodable image")
		return false
	}
	log.WithFields(log.Fields{"uri": uri, "format": format}).Trace("media probed")
	return true
}
