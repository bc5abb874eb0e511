package cachekey

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/websnap/screenshots-ms-go/internal/model"
)

// Derive turns the render inputs into a stable, collision-resistant object
// key: each field is length-prefixed into a canonical string, which is then
// SHA-256 hashed and hex encoded. Length prefixing means a URL containing
// any delimiter can never collide with a different tuple. The caller's
// idempotency token is deliberately not an input: the same page on the same
// viewport always maps to the same artifact.
func Derive(url string, vp model.Viewport, fullPage bool) string {
	canonical := canonicalString(
		url,
		strconv.Itoa(vp.Width),
		strconv.Itoa(vp.Height),
		strconv.FormatFloat(vp.Scale, 'g', -1, 64),
		strconv.FormatBool(fullPage),
	)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

func canonicalString(fields ...string) string {
	var out []byte
	for _, f := range fields {
		out = append(out, fmt.Sprintf("%d:%s", len(f), f)...)
	}
	return string(out)
}
