package controllers

import (
	"github.com/pocketledger/backend/internal/objectid"
)

type URIID struct {
	ID objectid.ObjectID `uri:"id" binding:"required" format:"ObjectID"` // ID of the resource
}
