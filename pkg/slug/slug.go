package slug

import "strings"

// Make converts free text to a URL-safe slug: lower-case letters and
// digits kept, every other run of characters collapsed to a single
// hyphen, no leading or trailing hyphen.
//
// Pure and deterministic; an input with no letters or digits produces
// "". Callers must treat an empty result as "no slug", never as a
// valid unique key. Collision detection is not this function's job.
//
//	Make("IIT Delhi - B.Tech")  // "iit-delhi-b-tech"
//	Make("Harvard University")  // "harvard-university"
func Make(text string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		} else {
			pending = true
		}
	}
	return b.String()
}
