package llm

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// EncodingCL100kBase is the tokenizer encoding used for token budgets.
// It matches GPT-4 / GPT-3.5-turbo tokenization.
const EncodingCL100kBase = "cl100k_base"

var (
	tokenizerOnce sync.Once
	tokenizer     *tiktoken.Tiktoken
	tokenizerErr  error
)

func getTokenizer() (*tiktoken.Tiktoken, error) {
	tokenizerOnce.Do(func() {
		tokenizer, tokenizerErr = tiktoken.GetEncoding(EncodingCL100kBase)
		if tokenizerErr != nil {
			tokenizerErr = fmt.Errorf("failed to load %s encoding: %w", EncodingCL100kBase, tokenizerErr)
		}
	})
	return tokenizer, tokenizerErr
}

// CountTokens returns the number of tokens in text.
func CountTokens(text string) (int, error) {
	tk, err := getTokenizer()
	if err != nil {
		return 0, err
	}
	return len(tk.Encode(text, nil, nil)), nil
}

// TruncateTokens truncates text to at most maxTokens tokens.
// If the tokenizer cannot be loaded, the text is returned unchanged so a
// tokenizer outage never blocks generation.
func TruncateTokens(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return text
	}
	tk, err := getTokenizer()
	if err != nil {
		return text
	}
	tokens := tk.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text
	}
	return tk.Decode(tokens[:maxTokens])
}
