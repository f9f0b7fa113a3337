// Package quizgen turns a video transcript into raw quiz text using an
// LLM. Two backends are supported: the Gemini API and a local ollama
// server. Both return the model's raw text; parsing and validation of
// that text live in the service layer.
package quizgen

import (
	"fmt"
	"strings"
)

const promptTemplate = `You are given the transcript of a video. Based on it, generate a quiz in JSON format with the following structure:

{
  "title": "Quiz title",
  "description": "Short description of the quiz topic",
  "questions": [
    {
      "question_title": "Question text",
      "question_options": ["Option A", "Option B", "Option C", "Option D"],
      "answer": "Option B"
    }
  ]
}

Requirements:
- Generate exactly 10 questions.
- Each question must have exactly 4 distinct options.
- The "answer" value must be one of the entries in "question_options".
- Base every question strictly on the transcript content.
- Respond with the JSON object only, without markdown code fences or any other text.

Transcript:
%s`

// BuildPrompt renders the quiz generation prompt for the given
// transcript.
func BuildPrompt(transcript string) string {
	return fmt.Sprintf(promptTemplate, strings.TrimSpace(transcript))
}
