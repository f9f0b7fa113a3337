package domain

import "context"

// QuizGenerator produces the raw quiz payload for a transcript.
// Implementations build the fixed prompt, invoke their provider and map
// transport-level failures; they perform no output validation, which is
// the assembler's job.
type QuizGenerator interface {
	Generate(ctx context.Context, transcript string) (string, error)
}
