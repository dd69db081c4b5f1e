package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/signet-labs/signet"
	"github.com/signet-labs/signet/errors"
)

// SeqID is a constant to use to get a default ID sequence
const SeqID = "id"

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket is a generic holder that stores data as well
// as references to sequences.
//
// This is a generic building block that should generally
// be embedded in a type-safe wrapper to ensure all data
// is the same type.
// Bucket is a prefixed subspace of the DB
// proto defines the default Model, all elements of this type
type Bucket struct {
	name   string
	prefix []byte
	proto  Model
}

// NewBucket creates a bucket to store data
func NewBucket(name string, proto Model) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket: %s", name))
	}

	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of the bucket
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// Get one element stored under given key. Returns (nil, nil) if the key
// does not exist, mirroring the behavior of read accessors that prefer a
// default over an error on lookups.
func (b Bucket) Get(db signet.ReadOnlyKVStore, key []byte) (Object, error) {
	bz, err := db.Get(b.DBKey(key))
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, nil
	}
	return b.Parse(key, bz)
}

// Parse takes a key and value data (weakly typed bytes)
// and will return a strongly typed Object
func (b Bucket) Parse(key, value []byte) (Object, error) {
	val := reflect.New(reflect.TypeOf(b.proto).Elem()).Interface().(Model)
	if err := val.Unmarshal(value); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", b.name)
	}
	return NewSimpleObj(key, val), nil
}

// Save will write the object to the bucket, after validating it.
func (b Bucket) Save(db signet.KVStore, obj Object) error {
	if err := obj.Validate(); err != nil {
		return errors.Wrapf(err, "saving %s", b.name)
	}

	bz, err := obj.Value().Marshal()
	if err != nil {
		return err
	}
	return db.Set(b.DBKey(obj.Key()), bz)
}

// Delete removes an object stored under given key. It is a noop when the
// key does not exist.
func (b Bucket) Delete(db signet.KVStore, key []byte) error {
	return db.Delete(b.DBKey(key))
}

// Sequence returns a Sequence by name, scoped to this bucket
func (b Bucket) Sequence(name string) Sequence {
	return NewSequence(b.name, name)
}
