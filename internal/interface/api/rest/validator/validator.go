package validator

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"community-media-api/internal/domain/media"
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateEntityRef(entityType, entityID string) (media.EntityRef, error) {
	t := media.EntityType(strings.TrimSpace(entityType))
	if !t.Valid() {
		return media.EntityRef{}, errors.New("unknown entity_type")
	}

	id := strings.TrimSpace(entityID)
	if id == "" {
		return media.EntityRef{}, errors.New("entity_id is required")
	}

	return media.EntityRef{Type: t, ID: id}, nil
}

// ValidateSortOrder parses an optional form field; empty means 0.
func ValidateSortOrder(s string) (int, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.New("sort_order must be a non-negative integer")
	}
	return n, nil
}
