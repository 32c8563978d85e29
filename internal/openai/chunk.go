// File: internal/openai/chunk.go
package openai

import "strings"

const (
	longTranscriptThreshold = 2500
	longChunkWidth          = 1200
	shortChunkWidth         = 2000
)

// ChunkTranscript splits a transcript into word-wrapped chunks sized for
// one chat-completion request each. Long transcripts get smaller chunks
// so each request leaves room for the completion.
func ChunkTranscript(transcript string) []string {
	width := shortChunkWidth
	if len(transcript) >= longTranscriptThreshold {
		width = longChunkWidth
	}
	return wrap(transcript, width)
}

// wrap greedily packs whitespace-separated words into lines of at most
// width characters. Words longer than width are split.
func wrap(text string, width int) []string {
	var chunks []string
	var b strings.Builder

	flush := func() {
		if b.Len() > 0 {
			chunks = append(chunks, b.String())
			b.Reset()
		}
	}

	for _, word := range strings.Fields(text) {
		for len(word) > width {
			flush()
			chunks = append(chunks, word[:width])
			word = word[width:]
		}
		if word == "" {
			continue
		}
		if b.Len() > 0 && b.Len()+1+len(word) > width {
			flush()
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}
	flush()

	return chunks
}
