// Package media configures the Cloudinary SDK for media storage.
package media

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Uploader holds the configured Cloudinary handle. Route collaborators use it
// for asset uploads; the bootstrap only configures it.
type Uploader struct {
	cld *cloudinary.Cloudinary
}

// Setup configures the Cloudinary SDK with secure URLs. Credentials are
// optional: without a cloud name the uploader is disabled and the server
// boots without media storage.
func Setup(cloudName, apiKey, apiSecret string) (*Uploader, error) {
	if cloudName == "" {
		return &Uploader{}, nil
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to configure Cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	return &Uploader{cld: cld}, nil
}

// Enabled reports whether media storage credentials were provided.
func (u *Uploader) Enabled() bool {
	return u.cld != nil
}

// CloudName returns the configured cloud name, or "" when disabled.
func (u *Uploader) CloudName() string {
	if u.cld == nil {
		return ""
	}
	return u.cld.Config.Cloud.CloudName
}

// SDK exposes the underlying handle for route collaborators.
func (u *Uploader) SDK() *cloudinary.Cloudinary {
	return u.cld
}
