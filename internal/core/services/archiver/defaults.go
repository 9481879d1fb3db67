package archiver

import (
	"strings"

	"github.com/zipdesk/zipdesk/internal/core/domain"
)

const (
	DefaultExtension  = ".zip"
	DefaultNamePrefix = "Archive_"
)

func prepareDefaults(opts *domain.Options) *domain.Options {
	if opts == nil {
		return domain.DefaultOptions()
	}

	if strings.TrimSpace(opts.Extension) == "" {
		opts.Extension = DefaultExtension
	}

	if !strings.HasPrefix(opts.Extension, ".") {
		opts.Extension = "." + opts.Extension
	}

	if strings.TrimSpace(opts.NamePrefix) == "" {
		opts.NamePrefix = DefaultNamePrefix
	}

	return opts
}
