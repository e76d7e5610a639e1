package handlers

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/apperr"
)

// parseObjectID validates the opaque 24-char hex id before it reaches the
// store, so a malformed id surfaces as a client error rather than a 500.
func parseObjectID(hexID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return primitive.NilObjectID, apperr.Clone(apperr.ErrValidation, "invalid document id")
	}
	return id, nil
}
