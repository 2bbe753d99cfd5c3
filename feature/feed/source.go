package feed

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Source supplies the compressed vendor feed archive.
type Source interface {
	// Fetch returns the raw zip archive.
	Fetch(ctx context.Context) ([]byte, error)
}

// NewSource builds the source selected by the configuration.
func NewSource(cfg Config) (Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Kind {
	case SourceHTTP:
		return NewHTTPSource(cfg), nil
	case SourceObject:
		return NewObjectSource(cfg)
	default:
		return nil, fmt.Errorf("feed: unknown source kind %q", cfg.Kind)
	}
}

// HTTPSource downloads the archive from the vendor's site.
type HTTPSource struct {
	url        string
	httpClient *http.Client
}

// NewHTTPSource creates an HTTP source with transport-level timeouts from
// the configuration.
func NewHTTPSource(cfg Config) *HTTPSource {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &HTTPSource{
		url:        cfg.URL,
		httpClient: &http.Client{Transport: transport},
	}
}

// Fetch downloads the archive.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("feed: build download request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed: download archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed: download archive from %s: unexpected status %s", s.url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("feed: read archive body: %w", err)
	}
	return data, nil
}

// ObjectGetter is the narrow slice of the MinIO client the object source
// needs. Kept as an interface so tests can substitute a fake.
type ObjectGetter interface {
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
}

// ObjectSource reads the archive from an S3-compatible bucket, for
// installations that mirror the vendor feed into object storage.
type ObjectSource struct {
	client ObjectGetter
	bucket string
	object string
}

// NewObjectSource creates an object source backed by a MinIO client.
func NewObjectSource(cfg Config) (*ObjectSource, error) {
	// MinIO expects the endpoint without a scheme.
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("feed: create storage client: %w", err)
	}

	return &ObjectSource{
		client: &minioGetter{client: minioClient},
		bucket: cfg.Bucket,
		object: cfg.Object,
	}, nil
}

// NewObjectSourceWithClient creates an object source over an existing
// getter. Used by tests.
func NewObjectSourceWithClient(client ObjectGetter, bucket, object string) *ObjectSource {
	return &ObjectSource{client: client, bucket: bucket, object: object}
}

// Fetch reads the mirrored archive object.
func (s *ObjectSource) Fetch(ctx context.Context) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("feed: get archive object %s/%s: %w", s.bucket, s.object, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("feed: read archive object %s/%s: %w", s.bucket, s.object, err)
	}
	return data, nil
}

// minioGetter narrows *minio.Client to the ObjectGetter interface.
type minioGetter struct {
	client *minio.Client
}

func (g *minioGetter) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return g.client.GetObject(ctx, bucketName, objectName, opts)
}
