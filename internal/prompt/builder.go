// ABOUTME: Pure prompt construction from templates, context, and query
// ABOUTME: Selects the context or fallback template; no I/O, deterministic
package prompt

import "strings"

// Builder merges assembled context with the user query into a
// generation request. Build has no side effects and is deterministic
// given its inputs and the configured templates.
type Builder struct {
	templates Templates
}

// NewBuilder creates a Builder with the given templates.
func NewBuilder(templates Templates) *Builder {
	return &Builder{templates: templates}
}

// Build returns the system instruction and user prompt for a query.
// When assembledContext is non-empty the context template is
// interpolated; otherwise the fallback template is used and the raw
// query is appended so the model still attempts a general answer.
func (b *Builder) Build(query, assembledContext string) (system, user string) {
	system = b.templates.System

	if assembledContext == "" {
		user = b.templates.Fallback + "\n\nUser question: " + query
		return system, user
	}

	user = strings.ReplaceAll(b.templates.Context, contextPlaceholder, assembledContext)
	user = strings.ReplaceAll(user, questionPlaceholder, query)
	return system, user
}
