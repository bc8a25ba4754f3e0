package utils

import (
	"github.com/pkoukk/tiktoken-go"
)

// NumTokens estimates the token count of text. Gemini uses its own tokenizer,
// so this is only an approximation for logging.
func NumTokens(text string) (int, error) {
	tkm, err := tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
	if err != nil {
		return 0, err
	}

	return len(tkm.Encode(text, nil, nil)), nil
}
