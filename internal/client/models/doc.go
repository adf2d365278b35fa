// Package models holds the JSON DTOs exchanged with the inventory backend.
package models
