// ABOUTME: Context assembler renders ranked context items into one text block
// ABOUTME: Caps output at the configured chunk budget; empty input renders empty
package rag

import (
	"fmt"
	"strings"

	"github.com/KaranJoshi1208/shivYatra/internal/models"
)

// metadataPlaceholder substitutes for metadata fields missing on a
// stored document.
const metadataPlaceholder = "unknown"

// Assembler formats retrieved documents into the context block fed to
// the prompt builder.
type Assembler struct {
	maxChunks int
}

// NewAssembler creates an Assembler that keeps at most maxChunks items.
func NewAssembler(maxChunks int) *Assembler {
	return &Assembler{maxChunks: maxChunks}
}

// Assemble renders the first maxChunks items as structured blocks.
// Items beyond the cap are dropped even when above the relevance
// threshold. An empty input produces an empty string, which the prompt
// builder treats as "no context".
func (a *Assembler) Assemble(items []models.ContextItem) string {
	if len(items) == 0 {
		return ""
	}
	if len(items) > a.maxChunks {
		items = items[:a.maxChunks]
	}

	blocks := make([]string, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, fmt.Sprintf(
			"📍 **%s, %s**\n🏷️ Category: %s → %s\n💰 Budget: %s\n📝 %s\n---",
			metaOr(item.Metadata, "city"),
			metaOr(item.Metadata, "state"),
			metaOr(item.Metadata, "category"),
			metaOr(item.Metadata, "subcategory"),
			metaOr(item.Metadata, "price_range"),
			item.Content,
		))
	}

	return strings.Join(blocks, "\n")
}

// metaOr returns the metadata value for key, or the placeholder when
// the field is missing or empty.
func metaOr(metadata map[string]string, key string) string {
	if v, ok := metadata[key]; ok && v != "" {
		return v
	}
	return metadataPlaceholder
}
