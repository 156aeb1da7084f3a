// ABOUTME: Prompt templates for the tourism assistant, kept as data
// ABOUTME: Defaults mirror production wording; any template can be overridden
package prompt

// Template placeholders substituted by Build.
const (
	contextPlaceholder  = "{context}"
	questionPlaceholder = "{question}"
)

// DefaultSystemPrompt describes the assistant persona, domain, and
// behavioral guidelines sent with every generation request.
const DefaultSystemPrompt = `You are Yatri, an expert AI tourism assistant specializing in Indian travel destinations.
You help travelers discover amazing places, plan trips, and provide detailed information about destinations across India.

Your knowledge is based on comprehensive tourism data from Indian destinations including places in Himachal Pradesh,
Uttarakhand, Jammu & Kashmir, Ladakh, and many other incredible locations.

Guidelines:
- Provide helpful, accurate, and engaging travel advice
- Include practical information like budget, activities, and traveler suitability
- Be enthusiastic about Indian tourism while being honest about challenges
- If you don't have specific information, say so and provide general guidance
- Always prioritize traveler safety and responsible tourism`

// DefaultContextTemplate is used when retrieval produced context.
const DefaultContextTemplate = `Based on the following tourism information about Indian destinations:

{context}

Please answer the user's question: {question}

Provide a helpful and detailed response including specific recommendations, practical tips, and relevant details from the provided context.`

// DefaultFallbackPrompt is used when no retrieved document passed the
// relevance threshold. The assistant still answers from general
// knowledge and discloses the gap.
const DefaultFallbackPrompt = `I don't have specific information about that particular query in my current database. However, as a tourism assistant for India, I can provide some general guidance about travel in India.`

// Templates bundles the three prompt templates used by the pipeline.
type Templates struct {
	System   string
	Context  string
	Fallback string
}

// Defaults returns the built-in templates.
func Defaults() Templates {
	return Templates{
		System:   DefaultSystemPrompt,
		Context:  DefaultContextTemplate,
		Fallback: DefaultFallbackPrompt,
	}
}

// WithOverrides returns a copy of t with non-empty override strings
// applied. Empty overrides keep the existing template.
func (t Templates) WithOverrides(system, context, fallback string) Templates {
	if system != "" {
		t.System = system
	}
	if context != "" {
		t.Context = context
	}
	if fallback != "" {
		t.Fallback = fallback
	}
	return t
}
