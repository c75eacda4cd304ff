package billing

import (
	"context"
	"strings"

	"github.com/gstbillpro/gst-billing-api/internal/application/dto"
	"github.com/gstbillpro/gst-billing-api/pkg/logger"
)

// TransliterateUseCase wraps the Hinglish input helper: a just-typed English
// word goes out, its Hindi spelling comes back. Any failure falls back to the
// original word plus a trailing space, so the form keeps flowing and the user
// never sees an error. No retry is attempted.
type TransliterateUseCase struct {
	lookup Transliterator
	log    *logger.Logger
}

// NewTransliterateUseCase builds the use case.
func NewTransliterateUseCase(lookup Transliterator, log *logger.Logger) *TransliterateUseCase {
	return &TransliterateUseCase{lookup: lookup, log: log}
}

// Transliterate resolves one word. Seq is echoed back untouched; clients use
// it to discard replies that arrive after further typing.
func (uc *TransliterateUseCase) Transliterate(ctx context.Context, in dto.TransliterationRequest) dto.TransliterationResponse {
	word := strings.TrimSpace(in.Word)
	resp := dto.TransliterationResponse{Input: word, Seq: in.Seq}
	if word == "" {
		resp.Output = " "
		return resp
	}

	out, err := uc.lookup.Transliterate(ctx, word)
	if err != nil || strings.TrimSpace(out) == "" {
		if err != nil {
			uc.log.Warn().Err(err).Str("word", word).Msg("transliteration lookup failed, falling back to input")
		}
		resp.Output = word + " "
		return resp
	}
	resp.Output = out + " "
	return resp
}
