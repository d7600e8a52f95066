// Package confirm asks an external judge whether a photographed shelf holds
// the item the shopper was sent to.
//
// The routing core treats a Confirmer as an opaque oracle: given an image and
// an item name it answers found or not, with optional guidance text. Vision
// talks to any OpenAI-compatible chat-completions endpoint that accepts image
// parts; Static and Func serve tests and offline runs.
//
// Errors are classified with sentinels (ErrInvalidInput, ErrRateLimited,
// ErrResponseInvalid, ErrUnavailable) so callers can degrade to local
// "scan failed" guidance without inspecting messages.
package confirm
