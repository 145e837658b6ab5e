// Package models defines core data structures for go-panlasa
package models

// Recipe represents a single recipe in the collection
type Recipe struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}
