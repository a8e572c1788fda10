// Package markdown renders untrusted markdown for preview.
//
// Two surfaces are produced from one source: HTML (goldmark, then a
// bluemonday policy) and terminal output (glamour, fed with a source whose
// raw HTML has already gone through the same policy). Unsafe markup is
// dropped silently; Result.Sanitized records that it happened.
package markdown
