// Package domain contains the core entities of the cloze service.
//
// The only entity is Flashcard, the transient word pair a client submits.
// Nothing in this package is persisted or shared across requests.
package domain
