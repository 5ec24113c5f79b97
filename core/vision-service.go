package core

import "context"

// VisionService answers a user question, optionally grounded on a
// base64-encoded image. An empty imageBase64 means a text-only request.
type VisionService interface {
	Ask(ctx context.Context, question string, imageBase64 string) (string, error)
}
