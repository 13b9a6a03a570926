// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API.
//
// It is the alternative to the default Ollama provider, selected with
// llm.provider=gemini. The prompt is sent as a single user turn through the
// google.golang.org/genai client; the text parts of the first candidate form the
// reply. Safety blocks, empty candidates and transport failures are translated
// into the sentinel errors of the generation package.
package gemini
