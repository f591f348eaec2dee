package objectid

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ObjectID is the identifier for all resources.
//
// It wraps bson.ObjectID so that it can be used in gin URI bindings and as a
// gorm column. Binding rejects anything that is not a 24 character hex
// string, which means malformed IDs fail before any database access happens.
type ObjectID struct {
	bson.ObjectID
}

var Nil ObjectID

var ErrInvalid = errors.New("the specified resource ID is not a valid ID")

// New returns a new unique ObjectID.
func New() ObjectID {
	return ObjectID{bson.NewObjectID()}
}

// FromHex parses a 24 character hex string into an ObjectID.
func FromHex(s string) (ObjectID, error) {
	parsed, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return Nil, ErrInvalid
	}

	return ObjectID{parsed}, nil
}

// UnmarshalParam implements the binding.BindUnmarshaler interface
// for gin URI and query bindings.
func (id *ObjectID) UnmarshalParam(p string) error {
	if p == "" {
		*id = Nil
		return nil
	}

	parsed, err := FromHex(p)
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}

// Value implements the driver.Valuer interface. IDs are stored as their hex
// representation.
func (id ObjectID) Value() (driver.Value, error) {
	return id.Hex(), nil
}

// Scan implements the sql.Scanner interface.
func (id *ObjectID) Scan(value any) error {
	switch v := value.(type) {
	case string:
		return id.UnmarshalParam(v)
	case []byte:
		return id.UnmarshalParam(string(v))
	case nil:
		*id = Nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into an ObjectID", value)
	}
}

// GormDataType defines the column type used by gorm.
func (ObjectID) GormDataType() string {
	return "varchar(24)"
}
