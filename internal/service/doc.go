// Package service provides the application-level operation of the cloze API:
// turning a flashcard into a model-generated sentence with the front-side word
// blanked out.
package service
