package isstracker

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

// S3Config points the client at an S3 or MinIO bucket.
type S3Config struct {
	Bucket    string
	Prefix    string
	Region    string // default us-east-1
	Endpoint  string // custom endpoint, e.g. http://localhost:9000 for MinIO
	PathStyle bool
}

type clientConfig struct {
	dir          string
	s3           *S3Config
	epochFile    string
	sightingFile string

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithDir reads documents from a local directory. Defaults to the working directory.
func WithDir(dir string) Option {
	return optionFunc(func(c *clientConfig) {
		c.dir = dir
	})
}

// WithFiles overrides the document names.
// Defaults: ISS.OEM_J2K_EPH.xml and XMLsightingData_citiesINT05.xml.
func WithFiles(epochFile, sightingFile string) Option {
	return optionFunc(func(c *clientConfig) {
		c.epochFile = epochFile
		c.sightingFile = sightingFile
	})
}

// WithS3 reads documents from a bucket instead of the local filesystem.
// Credentials come from the default AWS chain.
func WithS3(cfg S3Config) Option {
	return optionFunc(func(c *clientConfig) {
		c.s3 = &cfg
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
