package media

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Kind selects the upload folder and transformation applied by the host
type Kind string

const (
	KindProfilePicture Kind = "profile-picture"
	KindLifestyleImage Kind = "lifestyle-image"
)

const (
	profilePictureFolder = "luyona/profile-pictures"
	lifestyleImageFolder = "luyona/lifestyle-images"

	// Face-centered square crop for profile pictures, fixed-aspect crop
	// for lifestyle shots.
	profilePictureTransformation = "c_fill,g_face,h_400,w_400/q_auto"
	lifestyleImageTransformation = "c_fill,h_600,w_800/q_auto"
)

// UploadParams describes one upload to the media host
type UploadParams struct {
	Folder         string
	PublicID       string
	Transformation string
	ContentType    string
}

// Result is the hosted location of an uploaded image
type Result struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Store relays image blobs to a cloud media host. It keeps no local state;
// the returned URL is written into the profile by the caller.
type Store interface {
	Upload(ctx context.Context, file io.Reader, params UploadParams) (*Result, error)
}

// ParamsFor builds the deterministic object key and host-side transformation
// for an upload of the given kind.
func ParamsFor(kind Kind, userID uuid.UUID, now time.Time) UploadParams {
	ts := now.UnixMilli()
	switch kind {
	case KindLifestyleImage:
		return UploadParams{
			Folder:         lifestyleImageFolder,
			PublicID:       fmt.Sprintf("user_%s_lifestyle_%d", userID, ts),
			Transformation: lifestyleImageTransformation,
		}
	default:
		return UploadParams{
			Folder:         profilePictureFolder,
			PublicID:       fmt.Sprintf("user_%s_%d", userID, ts),
			Transformation: profilePictureTransformation,
		}
	}
}
