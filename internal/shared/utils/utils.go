package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParseStringToUUID returns uuid.Nil for empty or malformed input.
func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(s)
	if err != nil || s == "" {
		return uuid.Nil
	}
	return uid
}

// PathID reads the ":id" route parameter. ok is false when it is not a
// well-formed identifier.
func PathID(c *gin.Context) (uuid.UUID, bool) {
	id := ParseStringToUUID(c.Param("id"))
	return id, id != uuid.Nil
}
