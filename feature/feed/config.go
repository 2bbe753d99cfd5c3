package feed

import "fmt"

// Source kinds accepted by Config.Kind.
const (
	SourceHTTP   = "http"
	SourceObject = "s3"
)

// Config holds configuration for the vendor inventory feed.
type Config struct {
	// Kind selects how the archive is fetched (http or s3).
	Kind string `mapstructure:"kind" default:"http"`

	// URL is the address of the zip-compressed vendor workbook (http kind).
	URL string `mapstructure:"url" default:"https://timeworld.ru/upload/files/ostatki.zip"`

	// Endpoint is the S3-compatible storage endpoint (s3 kind).
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for the s3 kind.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for the s3 kind.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use TLS for the s3 kind.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the bucket holding the mirrored archive (s3 kind).
	Bucket string `mapstructure:"bucket" default:"feeds"`
	// Object is the archive object name (s3 kind).
	Object string `mapstructure:"object" default:"ostatki.zip"`

	// Sheet is the worksheet to parse; empty selects the first sheet.
	Sheet string `mapstructure:"sheet" default:""`

	// HeaderRow is the zero-based index of the column header line. The
	// vendor workbook carries 17 preamble rows before the header.
	HeaderRow int `mapstructure:"header_row" default:"17"`

	// CodeColumn, QuantityColumn and PriceColumn name the header cells the
	// parser maps onto the reconciliation row fields.
	CodeColumn     string `mapstructure:"code_column" default:"Код"`
	QuantityColumn string `mapstructure:"quantity_column" default:"Количество"`
	PriceColumn    string `mapstructure:"price_column" default:"Цена"`

	// TimeoutSeconds bounds the archive download.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}

// Validate checks that the configured source kind is usable.
func (c Config) Validate() error {
	switch c.Kind {
	case SourceHTTP:
		if c.URL == "" {
			return fmt.Errorf("feed: url is required for the http source")
		}
	case SourceObject:
		if c.Bucket == "" || c.Object == "" {
			return fmt.Errorf("feed: bucket and object are required for the s3 source")
		}
	default:
		return fmt.Errorf("feed: unknown source kind %q", c.Kind)
	}
	return nil
}
