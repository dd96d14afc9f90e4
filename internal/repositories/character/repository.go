// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/aldenmoor/levelforge/internal/repositories/character Repository

import (
	"context"

	"github.com/aldenmoor/levelforge/internal/entities/character"
)

// Repository defines the interface for character persistence. Characters
// are keyed by name.
type Repository interface {
	// Create stores a new character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a character with the same name exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by name
	// Returns errors.InvalidArgument for empty names
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update overwrites an existing character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a character by name
	// Returns errors.InvalidArgument for empty names
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves every stored character. A row that fails to decode
	// is skipped with a warning rather than aborting the batch.
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	CharacterData *character.Data
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	CharacterData *character.Data
}

// GetInput defines the input for getting a character
type GetInput struct {
	Name string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	CharacterData *character.Data
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	CharacterData *character.Data
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	CharacterData *character.Data
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	Name string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListInput defines the input for listing characters
type ListInput struct{}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []*character.Data
}
